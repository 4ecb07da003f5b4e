package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/artistycode/studio-api/middleware"
	"github.com/artistycode/studio-api/models"
	"github.com/artistycode/studio-api/services"
	"github.com/artistycode/studio-api/tabular"
)

// StaffHandler is the admin-only staff management surface. Admins and
// moderators are listed as two separate tables sharing the same columns.
type StaffHandler struct {
	Service *services.StaffService
}

var staffColumns = []tabular.Column[models.Staff]{
	{Key: "name", Label: "Name", Searchable: true, Sortable: true, Value: func(s models.Staff) string { return s.Name }},
	{Key: "email", Label: "Email", Searchable: true, Sortable: true, Value: func(s models.Staff) string { return s.Email }},
	{Key: "role", Label: "Role", Sortable: true, Value: func(s models.Staff) string { return s.Role }},
}

func staffID(s models.Staff) string { return s.ID }

func (h *StaffHandler) list(c *gin.Context, role string) {
	staff, err := h.Service.GetByRole(c.Request.Context(), role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load staff"})
		return
	}
	renderBrowser(c, staff, staffID, staffColumns)
}

func (h *StaffHandler) ListAdmins(c *gin.Context) {
	h.list(c, models.RoleAdmin)
}

func (h *StaffHandler) ListModerators(c *gin.Context) {
	h.list(c, models.RoleModerator)
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req models.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	staff, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff account"})
		return
	}

	c.JSON(http.StatusCreated, staff)
}

func (h *StaffHandler) Update(c *gin.Context) {
	var req models.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Service.Update(c.Request.Context(), c.Param("id"), req)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff account not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update staff account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff account updated successfully"})
}

// Delete removes another staff account through the table's confirmation flow.
// An admin cannot delete their own account while signed in with it.
func (h *StaffHandler) Delete(c *gin.Context) {
	if c.Param("id") == middleware.GetStaffID(c) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot delete your own account"})
		return
	}

	// The armed row must belong to either table, so both roles are loaded.
	admins, err := h.Service.GetByRole(c.Request.Context(), models.RoleAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load staff"})
		return
	}
	moderators, err := h.Service.GetByRole(c.Request.Context(), models.RoleModerator)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load staff"})
		return
	}

	deleteViaBrowser(c, append(admins, moderators...), staffID, staffColumns, h.Service.Delete, "Staff account")
}
