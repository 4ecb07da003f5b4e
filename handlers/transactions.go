package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/artistycode/studio-api/ledger"
	"github.com/artistycode/studio-api/models"
	"github.com/artistycode/studio-api/services"
	"github.com/artistycode/studio-api/tabular"
)

// TransactionHandler is the admin-only bookkeeping surface: the transaction
// table plus the aggregated overview that feeds the dashboard cards and chart.
type TransactionHandler struct {
	Service *services.TransactionService
}

var transactionColumns = []tabular.Column[models.Transaction]{
	{Key: "project", Label: "Project", Searchable: true, Sortable: true, Value: func(t models.Transaction) string { return t.Project }},
	{Key: "category", Label: "Category", Searchable: true, Sortable: true, Value: func(t models.Transaction) string { return t.Category }},
	{Key: "amount", Label: "Amount", Sortable: true, Numeric: true, Value: func(t models.Transaction) string { return t.Amount }},
	{Key: "due_amount", Label: "Due", Sortable: true, Numeric: true, Value: func(t models.Transaction) string { return t.DueAmount }},
	{Key: "date", Label: "Date", Sortable: true, Value: func(t models.Transaction) string { return t.Date.Format(time.RFC3339) }},
}

func transactionID(t models.Transaction) string { return t.ID }

func (h *TransactionHandler) List(c *gin.Context) {
	transactions, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load transactions"})
		return
	}
	renderBrowser(c, transactions, transactionID, transactionColumns)
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var req models.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}
	c.JSON(http.StatusCreated, transaction)
}

func (h *TransactionHandler) Update(c *gin.Context) {
	var req models.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Service.Update(c.Request.Context(), c.Param("id"), req)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction updated successfully"})
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	transactions, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load transactions"})
		return
	}
	deleteViaBrowser(c, transactions, transactionID, transactionColumns, h.Service.Delete, "Transaction")
}

// Overview aggregates the ledger over an optional from/to window; without
// parameters the window is the trailing year.
func (h *TransactionHandler) Overview(c *gin.Context) {
	window := ledger.Window{}

	if from := c.Query("from"); from != "" {
		t, err := parseDate(from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date"})
			return
		}
		window.From = t
	}
	if to := c.Query("to"); to != "" {
		t, err := parseDate(to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date"})
			return
		}
		window.To = t
	}

	transactions, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load transactions"})
		return
	}

	c.JSON(http.StatusOK, ledger.Summarize(transactions, window))
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
