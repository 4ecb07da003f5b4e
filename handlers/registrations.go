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

// RegistrationHandler covers volunteer sign-ups: the public submission
// endpoint plus the moderator review queue.
type RegistrationHandler struct {
	Service *services.RegistrationService
	WS      *WSHandler
}

var registrationColumns = []tabular.Column[models.Registration]{
	{Key: "first_name", Label: "First Name", Searchable: true, Sortable: true, Value: func(r models.Registration) string { return r.FirstName }},
	{Key: "last_name", Label: "Last Name", Searchable: true, Sortable: true, Value: func(r models.Registration) string { return r.LastName }},
	{Key: "email", Label: "Email", Searchable: true, Sortable: true, Value: func(r models.Registration) string { return r.Email }},
	{Key: "status", Label: "Status", Sortable: true, Value: func(r models.Registration) string { return r.Status }},
	{Key: "date", Label: "Date", Sortable: true, Value: func(r models.Registration) string { return r.Date.Format(time.RFC3339) }},
}

func registrationID(r models.Registration) string { return r.ID }

// Submit is the public sign-up endpoint.
func (h *RegistrationHandler) Submit(c *gin.Context) {
	var req models.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	registration, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit registration"})
		return
	}

	h.WS.Broadcast("registration", registration.ID)
	c.JSON(http.StatusCreated, registration)
}

func (h *RegistrationHandler) List(c *gin.Context) {
	registrations, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load registrations"})
		return
	}
	renderBrowser(c, registrations, registrationID, registrationColumns)
}

// Get returns one registration with the signature decrypted for review.
func (h *RegistrationHandler) Get(c *gin.Context) {
	registration, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load registration"})
		return
	}
	c.JSON(http.StatusOK, registration)
}

func (h *RegistrationHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateRegistrationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update registration"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registration updated successfully"})
}

func (h *RegistrationHandler) Delete(c *gin.Context) {
	registrations, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load registrations"})
		return
	}
	deleteViaBrowser(c, registrations, registrationID, registrationColumns, h.Service.Delete, "Registration")
}
