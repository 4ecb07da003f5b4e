package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/artistycode/studio-api/models"
	"github.com/artistycode/studio-api/services"
	"github.com/artistycode/studio-api/utils"
)

// ContactHandler takes public contact form submissions. There is no database
// record for these; the submission is a pair of emails.
type ContactHandler struct {
	Email    *services.EmailService
	WS       *WSHandler
	validate *validator.Validate
}

func NewContactHandler(email *services.EmailService, ws *WSHandler) *ContactHandler {
	return &ContactHandler{
		Email:    email,
		WS:       ws,
		validate: validator.New(),
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fieldErr := range err.(validator.ValidationErrors) {
			fields[fieldErr.Field()] = fieldErr.Tag()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fields})
		return
	}

	// The submission either reaches the inbox or it doesn't; there is nothing
	// to roll back, so the outcome is reported as a flag for the toast.
	err := h.Email.SendContactNotice(req)
	utils.LogContactAction(req.Email, err == nil)

	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send message", "emailed": false})
		return
	}

	h.WS.Broadcast("contact", req.Email)
	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully", "emailed": true})
}
