package models

import "time"

// Transaction categories with dedicated ledger buckets. Any other category
// label counts toward income.
const (
	CategorySpend   = "Spend"
	CategoryReserve = "Reserve"
)

// Transaction is a bookkeeping record. Amounts are decimal strings as entered
// by staff; the ledger parses them defensively.
type Transaction struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Project   string    `json:"project"`
	Category  string    `json:"category"`
	Amount    string    `json:"amount"`
	DueAmount string    `json:"due_amount,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

type TransactionRequest struct {
	Date      time.Time `json:"date" binding:"required"`
	Project   string    `json:"project" binding:"required"`
	Category  string    `json:"category" binding:"required"`
	Amount    string    `json:"amount" binding:"required"`
	DueAmount string    `json:"due_amount"`
	Notes     string    `json:"notes"`
}
