package models

import "time"

// Order is a checkout record for one resource.
type Order struct {
	ID          string    `json:"id"`
	Price       string    `json:"price"`
	IsFree      bool      `json:"is_free"`
	BuyerName   string    `json:"buyer_name"`
	BuyerEmail  string    `json:"buyer_email"`
	BuyerNumber string    `json:"buyer_number"`
	Note        string    `json:"note,omitempty"`
	URL         string    `json:"url"`
	Delivered   bool      `json:"delivered"`
	ResourceID  string    `json:"resource_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrderItem is the dashboard listing shape: an order joined with the title of
// the resource it was placed for.
type OrderItem struct {
	Order
	ResourceTitle string `json:"resource_title"`
}

type CreateOrderRequest struct {
	ResourceID  string `json:"resource_id" binding:"required"`
	BuyerName   string `json:"buyer_name" binding:"required"`
	BuyerEmail  string `json:"buyer_email" binding:"required,email"`
	BuyerNumber string `json:"buyer_number" binding:"required"`
	Note        string `json:"note"`
}

type UpdateOrderStatusRequest struct {
	Delivered bool `json:"delivered"`
}
