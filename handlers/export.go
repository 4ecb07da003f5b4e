package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/artistycode/studio-api/services"
)

// ExportHandler streams dashboard collections as CSV downloads.
type ExportHandler struct {
	Orders        *services.OrderService
	Registrations *services.RegistrationService
	Transactions  *services.TransactionService
}

func sendCSV(c *gin.Context, name string, buf *bytes.Buffer) {
	filename := name + "-" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (h *ExportHandler) ExportOrders(c *gin.Context) {
	orders, err := h.Orders.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	var buf bytes.Buffer
	if err := services.WriteOrdersCSV(&buf, orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export orders"})
		return
	}
	sendCSV(c, "orders", &buf)
}

func (h *ExportHandler) ExportRegistrations(c *gin.Context) {
	registrations, err := h.Registrations.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load registrations"})
		return
	}

	var buf bytes.Buffer
	if err := services.WriteRegistrationsCSV(&buf, registrations); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export registrations"})
		return
	}
	sendCSV(c, "registrations", &buf)
}

func (h *ExportHandler) ExportTransactions(c *gin.Context) {
	transactions, err := h.Transactions.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load transactions"})
		return
	}

	var buf bytes.Buffer
	if err := services.WriteTransactionsCSV(&buf, transactions); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export transactions"})
		return
	}
	sendCSV(c, "transactions", &buf)
}
