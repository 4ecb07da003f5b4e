package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artistycode/studio-api/services"
)

// PublicHandler serves the read-only content endpoints backing the marketing
// site: hero banners, portfolio, resources, testimonials, notices and events.
type PublicHandler struct {
	Banners   *services.BannerService
	Projects  *services.ProjectService
	Resources *services.ResourceService
	Reviews   *services.ReviewService
	Notices   *services.NoticeService
	Events    *services.EventService
}

func (h *PublicHandler) GetBanners(c *gin.Context) {
	banners, err := h.Banners.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load banners"})
		return
	}
	c.JSON(http.StatusOK, banners)
}

func (h *PublicHandler) GetProjects(c *gin.Context) {
	projects, err := h.Projects.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *PublicHandler) GetProject(c *gin.Context) {
	project, err := h.Projects.GetByID(c.Request.Context(), c.Param("id"))
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *PublicHandler) GetResources(c *gin.Context) {
	resources, err := h.Resources.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load resources"})
		return
	}
	c.JSON(http.StatusOK, resources)
}

func (h *PublicHandler) GetResource(c *gin.Context) {
	resource, err := h.Resources.GetByID(c.Request.Context(), c.Param("id"))
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load resource"})
		return
	}
	c.JSON(http.StatusOK, resource)
}

// GetReviews only ever exposes verified testimonials publicly.
func (h *PublicHandler) GetReviews(c *gin.Context) {
	reviews, err := h.Reviews.GetVerified(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *PublicHandler) GetNotices(c *gin.Context) {
	notices, err := h.Notices.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notices"})
		return
	}
	c.JSON(http.StatusOK, notices)
}

func (h *PublicHandler) GetEvents(c *gin.Context) {
	events, err := h.Events.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}
	c.JSON(http.StatusOK, events)
}
