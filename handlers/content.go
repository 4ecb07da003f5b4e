package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/artistycode/studio-api/models"
	"github.com/artistycode/studio-api/services"
	"github.com/artistycode/studio-api/tabular"
)

// ContentHandler is the moderator surface for site content: banners, notices
// and events.
type ContentHandler struct {
	Banners *services.BannerService
	Notices *services.NoticeService
	Events  *services.EventService
}

var bannerColumns = []tabular.Column[models.Banner]{
	{Key: "title", Label: "Title", Searchable: true, Sortable: true, Value: func(b models.Banner) string { return b.Title }},
	{Key: "image", Label: "Image", Value: func(b models.Banner) string { return b.Image }},
}

var noticeColumns = []tabular.Column[models.Notice]{
	{Key: "notice", Label: "Notice", Searchable: true, Sortable: true, Value: func(n models.Notice) string { return n.Notice }},
}

var eventColumns = []tabular.Column[models.Event]{
	{Key: "title", Label: "Title", Searchable: true, Sortable: true, Value: func(e models.Event) string { return e.Title }},
	{Key: "location", Label: "Location", Searchable: true, Sortable: true, Value: func(e models.Event) string { return e.Location }},
	{Key: "created_at", Label: "Created", Sortable: true, Value: func(e models.Event) string { return e.CreatedAt.Format(time.RFC3339) }},
}

func (h *ContentHandler) ListBanners(c *gin.Context) {
	banners, err := h.Banners.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load banners"})
		return
	}
	renderBrowser(c, banners, func(b models.Banner) string { return b.ID }, bannerColumns)
}

func (h *ContentHandler) CreateBanner(c *gin.Context) {
	var req models.BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	banner, err := h.Banners.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create banner"})
		return
	}
	c.JSON(http.StatusCreated, banner)
}

func (h *ContentHandler) UpdateBanner(c *gin.Context) {
	var req models.BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Banners.Update(c.Request.Context(), c.Param("id"), req)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update banner"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Banner updated successfully"})
}

func (h *ContentHandler) DeleteBanner(c *gin.Context) {
	banners, err := h.Banners.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load banners"})
		return
	}
	deleteViaBrowser(c, banners, func(b models.Banner) string { return b.ID }, bannerColumns, h.Banners.Delete, "Banner")
}

func (h *ContentHandler) ListNotices(c *gin.Context) {
	notices, err := h.Notices.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notices"})
		return
	}
	renderBrowser(c, notices, func(n models.Notice) string { return n.ID }, noticeColumns)
}

func (h *ContentHandler) CreateNotice(c *gin.Context) {
	var req models.NoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notice, err := h.Notices.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create notice"})
		return
	}
	c.JSON(http.StatusCreated, notice)
}

func (h *ContentHandler) UpdateNotice(c *gin.Context) {
	var req models.NoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Notices.Update(c.Request.Context(), c.Param("id"), req)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notice not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notice"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notice updated successfully"})
}

func (h *ContentHandler) DeleteNotice(c *gin.Context) {
	notices, err := h.Notices.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notices"})
		return
	}
	deleteViaBrowser(c, notices, func(n models.Notice) string { return n.ID }, noticeColumns, h.Notices.Delete, "Notice")
}

func (h *ContentHandler) ListEvents(c *gin.Context) {
	events, err := h.Events.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}
	renderBrowser(c, events, func(e models.Event) string { return e.ID }, eventColumns)
}

func (h *ContentHandler) CreateEvent(c *gin.Context) {
	var req models.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.Events.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *ContentHandler) UpdateEvent(c *gin.Context) {
	var req models.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Events.Update(c.Request.Context(), c.Param("id"), req)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully"})
}

func (h *ContentHandler) DeleteEvent(c *gin.Context) {
	events, err := h.Events.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}
	deleteViaBrowser(c, events, func(e models.Event) string { return e.ID }, eventColumns, h.Events.Delete, "Event")
}
