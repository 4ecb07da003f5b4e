package models

import "time"

// Banner is a rotating hero image on the public home page.
type Banner struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

type BannerRequest struct {
	Title string `json:"title" binding:"required"`
	Image string `json:"image" binding:"required,url"`
}

// Event is a community event announced on the site.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	ImageURL    string    `json:"image_url"`
	URL         string    `json:"url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type EventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	ImageURL    string `json:"image_url" binding:"required,url"`
	URL         string `json:"url"`
}

// Notice is a single line shown on the public notice board.
type Notice struct {
	ID     string `json:"id"`
	Notice string `json:"notice"`
}

type NoticeRequest struct {
	Notice string `json:"notice" binding:"required"`
}
