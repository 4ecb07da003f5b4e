package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/artistycode/studio-api/models"
	"github.com/artistycode/studio-api/services"
	"github.com/artistycode/studio-api/utils"
)

// CheckoutHandler covers the public side of orders: placing one and looking up
// your own orders by email.
type CheckoutHandler struct {
	Orders *services.OrderService
	Email  *services.EmailService
	WS     *WSHandler
}

func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Orders.Create(c.Request.Context(), req)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	utils.LogOrderAction("Placed", order.ID, order.BuyerEmail)
	h.WS.Broadcast("order", order.ID)

	// The order stands whether or not the notice reaches the studio inbox.
	go func(id string) {
		item, err := h.Orders.GetByID(context.Background(), id)
		if err != nil {
			return
		}
		if err := h.Email.SendOrderNotice(*item); err != nil {
			utils.SafeLog("[Order] Notice email failed for %s: %v", id, err)
		}
	}(order.ID)

	c.JSON(http.StatusCreated, order)
}

// MyOrders pages through the orders placed with a given email address.
func (h *CheckoutHandler) MyOrders(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	page, _ := strconv.Atoi(c.Query("page"))

	orders, totalPages, err := h.Orders.GetByEmail(c.Request.Context(), email, limit, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	if orders == nil {
		orders = []models.OrderItem{}
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":      orders,
		"total_pages": totalPages,
	})
}
