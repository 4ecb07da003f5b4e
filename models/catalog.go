package models

import "time"

// Project is a portfolio entry on the public projects page.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Stack       string    `json:"stack"`
	Image       string    `json:"image"`
	URL         string    `json:"url,omitempty"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Stack       string `json:"stack"`
	Image       string `json:"image" binding:"required,url"`
	URL         string `json:"url"`
	Category    string `json:"category" binding:"required"`
}

// Resource is a downloadable item sold (or given away) through checkout.
// Price is kept as a decimal string; it is display data, not arithmetic data,
// everywhere except the ledger.
type Resource struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Stack       string    `json:"stack"`
	Image       string    `json:"image"`
	URL         string    `json:"url,omitempty"`
	File        string    `json:"file"`
	Price       string    `json:"price"`
	IsFree      bool      `json:"is_free"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	CreatedAt   time.Time `json:"created_at"`
}

type ResourceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Stack       string `json:"stack"`
	Image       string `json:"image" binding:"required,url"`
	URL         string `json:"url"`
	File        string `json:"file" binding:"required,url"`
	Price       string `json:"price" binding:"required"`
	IsFree      bool   `json:"is_free"`
	Category    string `json:"category" binding:"required"`
	Author      string `json:"author" binding:"required"`
}

// Review is a testimonial; only verified reviews are shown publicly.
type Review struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Quote    string `json:"quote"`
	Image    string `json:"image"`
	Verified bool   `json:"verified"`
}

type ReviewRequest struct {
	Name     string `json:"name" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Quote    string `json:"quote" binding:"required"`
	Image    string `json:"image" binding:"required,url"`
	Verified bool   `json:"verified"`
}
