package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artistycode/studio-api/models"
	"github.com/artistycode/studio-api/services"
	"github.com/artistycode/studio-api/tabular"
)

// CatalogHandler is the moderator surface for the portfolio and shop:
// projects, resources and testimonials.
type CatalogHandler struct {
	Projects  *services.ProjectService
	Resources *services.ResourceService
	Reviews   *services.ReviewService
}

var projectColumns = []tabular.Column[models.Project]{
	{Key: "title", Label: "Title", Searchable: true, Sortable: true, Value: func(p models.Project) string { return p.Title }},
	{Key: "stack", Label: "Stack", Searchable: true, Sortable: true, Value: func(p models.Project) string { return p.Stack }},
	{Key: "category", Label: "Category", Searchable: true, Sortable: true, Value: func(p models.Project) string { return p.Category }},
}

var resourceColumns = []tabular.Column[models.Resource]{
	{Key: "title", Label: "Title", Searchable: true, Sortable: true, Value: func(r models.Resource) string { return r.Title }},
	{Key: "author", Label: "Author", Searchable: true, Sortable: true, Value: func(r models.Resource) string { return r.Author }},
	{Key: "category", Label: "Category", Searchable: true, Sortable: true, Value: func(r models.Resource) string { return r.Category }},
	{Key: "price", Label: "Price", Sortable: true, Numeric: true, Value: func(r models.Resource) string { return r.Price }},
}

var reviewColumns = []tabular.Column[models.Review]{
	{Key: "name", Label: "Name", Searchable: true, Sortable: true, Value: func(r models.Review) string { return r.Name }},
	{Key: "title", Label: "Title", Searchable: true, Sortable: true, Value: func(r models.Review) string { return r.Title }},
	{Key: "quote", Label: "Quote", Searchable: true, Value: func(r models.Review) string { return r.Quote }},
}

func (h *CatalogHandler) ListProjects(c *gin.Context) {
	projects, err := h.Projects.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}
	renderBrowser(c, projects, func(p models.Project) string { return p.ID }, projectColumns)
}

func (h *CatalogHandler) CreateProject(c *gin.Context) {
	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.Projects.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *CatalogHandler) UpdateProject(c *gin.Context) {
	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Projects.Update(c.Request.Context(), c.Param("id"), req)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project updated successfully"})
}

func (h *CatalogHandler) DeleteProject(c *gin.Context) {
	projects, err := h.Projects.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}
	deleteViaBrowser(c, projects, func(p models.Project) string { return p.ID }, projectColumns, h.Projects.Delete, "Project")
}

func (h *CatalogHandler) ListResources(c *gin.Context) {
	resources, err := h.Resources.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load resources"})
		return
	}
	renderBrowser(c, resources, func(r models.Resource) string { return r.ID }, resourceColumns)
}

func (h *CatalogHandler) CreateResource(c *gin.Context) {
	var req models.ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resource, err := h.Resources.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create resource"})
		return
	}
	c.JSON(http.StatusCreated, resource)
}

func (h *CatalogHandler) UpdateResource(c *gin.Context) {
	var req models.ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Resources.Update(c.Request.Context(), c.Param("id"), req)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update resource"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resource updated successfully"})
}

func (h *CatalogHandler) DeleteResource(c *gin.Context) {
	resources, err := h.Resources.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load resources"})
		return
	}
	deleteViaBrowser(c, resources, func(r models.Resource) string { return r.ID }, resourceColumns, h.Resources.Delete, "Resource")
}

// ListReviews shows all testimonials, verified or not; the public endpoint
// filters to verified ones.
func (h *CatalogHandler) ListReviews(c *gin.Context) {
	reviews, err := h.Reviews.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}
	renderBrowser(c, reviews, func(r models.Review) string { return r.ID }, reviewColumns)
}

func (h *CatalogHandler) CreateReview(c *gin.Context) {
	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.Reviews.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *CatalogHandler) UpdateReview(c *gin.Context) {
	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Reviews.Update(c.Request.Context(), c.Param("id"), req)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully"})
}

func (h *CatalogHandler) DeleteReview(c *gin.Context) {
	reviews, err := h.Reviews.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}
	deleteViaBrowser(c, reviews, func(r models.Review) string { return r.ID }, reviewColumns, h.Reviews.Delete, "Review")
}
