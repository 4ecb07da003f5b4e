package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/artistycode/studio-api/models"
)

func tx(date time.Time, category, amount, due string) models.Transaction {
	return models.Transaction{Date: date, Category: category, Amount: amount, DueAmount: due}
}

func TestSummarizeBuckets(t *testing.T) {
	now := time.Now()
	transactions := []models.Transaction{
		tx(now, "Sale", "100", ""),
		tx(now, "Spend", "40", ""),
		tx(now, "Reserve", "20", "5"),
	}

	s := Summarize(transactions, Window{})

	assert.Equal(t, 100.0, s.TotalIncome)
	assert.Equal(t, 40.0, s.TotalSpend)
	assert.Equal(t, 20.0, s.TotalReserve)
	assert.Equal(t, 5.0, s.TotalDue)
}

func TestUnknownCategoriesCountAsIncome(t *testing.T) {
	now := time.Now()
	transactions := []models.Transaction{
		tx(now, "Donation", "10", ""),
		tx(now, "Client Work", "15", "3"),
		tx(now, "spend", "99", ""), // categories are exact; lowercase is not Spend
	}

	s := Summarize(transactions, Window{})

	assert.Equal(t, 124.0, s.TotalIncome)
	assert.Equal(t, 0.0, s.TotalSpend)
	assert.Equal(t, 3.0, s.TotalDue)
}

func TestMalformedAmountsDegradeToZero(t *testing.T) {
	now := time.Now()
	transactions := []models.Transaction{
		tx(now, "Sale", "abc", ""),
		tx(now, "Sale", "", "xyz"),
		tx(now, "Spend", " 12.50 ", ""),
	}

	s := Summarize(transactions, Window{})

	assert.Equal(t, 0.0, s.TotalIncome)
	assert.Equal(t, 12.5, s.TotalSpend)
	assert.Equal(t, 0.0, s.TotalDue)
}

func TestEmptyInput(t *testing.T) {
	s := Summarize(nil, Window{})

	assert.Zero(t, s.TotalIncome)
	assert.Zero(t, s.TotalSpend)
	assert.Zero(t, s.TotalReserve)
	assert.Zero(t, s.TotalDue)
	assert.Empty(t, s.MonthLabels)
	assert.Empty(t, s.IncomeByMonth)
}

func TestWindowIsInclusive(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		tx(from, "Sale", "1", ""),
		tx(to, "Sale", "2", ""),
		tx(from.AddDate(0, 0, -1), "Sale", "4", ""),
		tx(to.AddDate(0, 0, 1), "Sale", "8", ""),
	}

	s := Summarize(transactions, Window{From: from, To: to})

	assert.Equal(t, 3.0, s.TotalIncome)
}

func TestMonthlySeriesIsChronological(t *testing.T) {
	jan := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	dec := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)

	// deliberately out of order
	transactions := []models.Transaction{
		tx(mar, "Sale", "30", ""),
		tx(dec, "Sale", "10", "1"),
		tx(jan, "Spend", "20", ""),
		tx(mar, "Reserve", "5", ""),
	}

	window := Window{From: dec.AddDate(0, -1, 0), To: mar.AddDate(0, 1, 0)}
	s := Summarize(transactions, window)

	assert.Equal(t, []string{"Dec 2024", "Jan 2025", "Mar 2025"}, s.MonthLabels)
	assert.Equal(t, []float64{10, 0, 30}, s.IncomeByMonth)
	assert.Equal(t, []float64{0, 20, 0}, s.SpendByMonth)
	assert.Equal(t, []float64{0, 0, 5}, s.ReserveByMonth)
	assert.Equal(t, []float64{1, 0, 0}, s.DueByMonth)
}

func TestDueCountedIndependentOfCategory(t *testing.T) {
	now := time.Now()
	transactions := []models.Transaction{
		tx(now, "Sale", "100", "25"),
		tx(now, "Spend", "40", "10"),
	}

	s := Summarize(transactions, Window{})

	// the Sale's amount still fully counts as income even with a due amount
	assert.Equal(t, 100.0, s.TotalIncome)
	assert.Equal(t, 35.0, s.TotalDue)
}
