// Package ledger derives the dashboard's financial overview from raw
// transaction records. Summarize is pure: it never fails, and dirty data
// (missing or non-numeric amounts) contributes zero instead of erroring, so
// the overview always renders.
package ledger

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/artistycode/studio-api/models"
)

// Window is an inclusive date range. The zero Window means the last year.
type Window struct {
	From time.Time
	To   time.Time
}

// DefaultWindow covers one year ago through today.
func DefaultWindow() Window {
	now := time.Now()
	return Window{From: now.AddDate(-1, 0, 0), To: now}
}

func (w Window) contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

// Summary holds the four headline totals plus parallel monthly series aligned
// to MonthLabels. Income is the bucket-exclusion form: every category other
// than Spend and Reserve counts toward income by its amount. Due sums
// due_amount across all categories.
type Summary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalSpend   float64 `json:"total_spend"`
	TotalReserve float64 `json:"total_reserve"`
	TotalDue     float64 `json:"total_due"`

	MonthLabels    []string  `json:"month_labels"`
	IncomeByMonth  []float64 `json:"income_by_month"`
	SpendByMonth   []float64 `json:"spend_by_month"`
	ReserveByMonth []float64 `json:"reserve_by_month"`
	DueByMonth     []float64 `json:"due_by_month"`
}

type bucket struct {
	year    int
	month   time.Month
	income  float64
	spend   float64
	reserve float64
	due     float64
}

// Summarize filters transactions to the window and accumulates totals and a
// chronologically ordered monthly series.
func Summarize(transactions []models.Transaction, window Window) Summary {
	if window.From.IsZero() && window.To.IsZero() {
		window = DefaultWindow()
	} else if window.To.IsZero() {
		window.To = time.Now()
	}

	var summary Summary
	buckets := make(map[int]*bucket)

	for _, tx := range transactions {
		if !window.contains(tx.Date) {
			continue
		}

		amount := parseAmount(tx.Amount)
		due := parseAmount(tx.DueAmount)

		key := tx.Date.Year()*12 + int(tx.Date.Month()) - 1
		b, ok := buckets[key]
		if !ok {
			b = &bucket{year: tx.Date.Year(), month: tx.Date.Month()}
			buckets[key] = b
		}

		switch tx.Category {
		case models.CategorySpend:
			summary.TotalSpend += amount
			b.spend += amount
		case models.CategoryReserve:
			summary.TotalReserve += amount
			b.reserve += amount
		default:
			summary.TotalIncome += amount
			b.income += amount
		}

		summary.TotalDue += due
		b.due += due
	}

	keys := make([]int, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for _, k := range keys {
		b := buckets[k]
		summary.MonthLabels = append(summary.MonthLabels, monthLabel(b.year, b.month))
		summary.IncomeByMonth = append(summary.IncomeByMonth, b.income)
		summary.SpendByMonth = append(summary.SpendByMonth, b.spend)
		summary.ReserveByMonth = append(summary.ReserveByMonth, b.reserve)
		summary.DueByMonth = append(summary.DueByMonth, b.due)
	}

	return summary
}

func monthLabel(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

// parseAmount reads a decimal string; missing, empty or malformed values
// contribute zero.
func parseAmount(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
