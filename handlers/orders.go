package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/artistycode/studio-api/models"
	"github.com/artistycode/studio-api/services"
	"github.com/artistycode/studio-api/tabular"
	"github.com/artistycode/studio-api/utils"
)

// OrderHandler is the dashboard side of orders: listing, delivery status and
// removal. Checkout itself lives on the public routes.
type OrderHandler struct {
	Service *services.OrderService
	Email   *services.EmailService
}

var orderColumns = []tabular.Column[models.OrderItem]{
	{Key: "resource", Label: "Resource", Searchable: true, Sortable: true, Value: func(o models.OrderItem) string { return o.ResourceTitle }},
	{Key: "buyer_name", Label: "Buyer", Searchable: true, Sortable: true, Value: func(o models.OrderItem) string { return o.BuyerName }},
	{Key: "buyer_email", Label: "Email", Searchable: true, Sortable: true, Value: func(o models.OrderItem) string { return o.BuyerEmail }},
	{Key: "price", Label: "Price", Sortable: true, Numeric: true, Value: func(o models.OrderItem) string { return o.Price }},
	{Key: "created_at", Label: "Placed", Sortable: true, Value: func(o models.OrderItem) string { return o.CreatedAt.Format(time.RFC3339) }},
}

func orderID(o models.OrderItem) string { return o.ID }

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	renderBrowser(c, orders, orderID, orderColumns)
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateStatus flips the delivered flag and mails the buyer about the change.
// The mutation stands even when the email fails; the response carries an
// emailed flag for the toast.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	err := h.Service.UpdateDelivered(c.Request.Context(), id, req.Delivered)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	status := "Pending"
	url := ""
	if req.Delivered {
		status = "Delivered"
	}

	order, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"message": "Order updated successfully", "emailed": false})
		return
	}
	if req.Delivered {
		url = order.URL
	}

	emailErr := h.Email.SendOrderStatusUpdate(order.BuyerEmail, id, status, url)
	if emailErr != nil {
		utils.SafeLog("[Order] Status email failed for %s: %v", id, emailErr)
	}
	utils.LogOrderAction("Status "+status, id, order.BuyerEmail)

	c.JSON(http.StatusOK, gin.H{"message": "Order updated successfully", "emailed": emailErr == nil})
}

func (h *OrderHandler) Delete(c *gin.Context) {
	orders, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	deleteViaBrowser(c, orders, orderID, orderColumns, h.Service.Delete, "Order")
}
