package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/artistycode/studio-api/middleware"
	"github.com/artistycode/studio-api/models"
	"github.com/artistycode/studio-api/utils"
)

// AccountHandler covers the signed-in staff member's own account: profile,
// password and two-factor settings.
type AccountHandler struct {
	DB *sql.DB
}

func (h *AccountHandler) Me(c *gin.Context) {
	staffID := middleware.GetStaffID(c)

	var staff models.Staff
	err := h.DB.QueryRow(`
		SELECT id, name, email, role, totp_enabled, created_at, updated_at
		FROM staff
		WHERE id = $1
	`, staffID).Scan(&staff.ID, &staff.Name, &staff.Email, &staff.Role, &staff.TOTPEnabled, &staff.CreatedAt, &staff.UpdatedAt)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, staff)
}

func (h *AccountHandler) ChangePassword(c *gin.Context) {
	staffID := middleware.GetStaffID(c)

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var passwordHash string
	err := h.DB.QueryRow(`SELECT password_hash FROM staff WHERE id = $1`, staffID).Scan(&passwordHash)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !utils.CheckPassword(req.CurrentPassword, passwordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
		return
	}

	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	// Changing the password invalidates every other session.
	err = utils.WithTransaction(h.DB, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`UPDATE staff SET password_hash = $1, updated_at = $2 WHERE id = $3`, newHash, time.Now(), staffID); err != nil {
			return err
		}
		_, err := tx.Exec(`DELETE FROM sessions WHERE staff_id = $1`, staffID)
		return err
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// SetupTOTP generates a secret and provisioning URL. The secret stays disabled
// until the first code is verified.
func (h *AccountHandler) SetupTOTP(c *gin.Context) {
	staffID := middleware.GetStaffID(c)

	var email string
	var enabled bool
	err := h.DB.QueryRow(`SELECT email, totp_enabled FROM staff WHERE id = $1`, staffID).Scan(&email, &enabled)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if enabled {
		c.JSON(http.StatusConflict, gin.H{"error": "2FA is already enabled"})
		return
	}

	secret, url, err := utils.GenerateTOTPSecret(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate 2FA secret"})
		return
	}

	if _, err := h.DB.Exec(`UPDATE staff SET totp_secret = $1, updated_at = $2 WHERE id = $3`, secret, time.Now(), staffID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store 2FA secret"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"secret":  secret,
		"otp_url": url,
	})
}

func (h *AccountHandler) VerifyTOTP(c *gin.Context) {
	staffID := middleware.GetStaffID(c)

	var req models.VerifyTOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var secret sql.NullString
	err := h.DB.QueryRow(`SELECT totp_secret FROM staff WHERE id = $1`, staffID).Scan(&secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if !secret.Valid || secret.String == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "2FA setup has not been started"})
		return
	}

	valid, err := utils.VerifyTOTP(secret.String, req.Code)
	if err != nil || !valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid 2FA code"})
		return
	}

	if _, err := h.DB.Exec(`UPDATE staff SET totp_enabled = TRUE, updated_at = $1 WHERE id = $2`, time.Now(), staffID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enable 2FA"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "2FA enabled successfully"})
}

func (h *AccountHandler) DisableTOTP(c *gin.Context) {
	staffID := middleware.GetStaffID(c)

	var req models.DisableTOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var passwordHash string
	var secret sql.NullString
	err := h.DB.QueryRow(`SELECT password_hash, totp_secret FROM staff WHERE id = $1`, staffID).Scan(&passwordHash, &secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !utils.CheckPassword(req.Password, passwordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	if secret.Valid {
		valid, err := utils.VerifyTOTP(secret.String, req.Code)
		if err != nil || !valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid 2FA code"})
			return
		}
	}

	if _, err := h.DB.Exec(`UPDATE staff SET totp_enabled = FALSE, totp_secret = NULL, updated_at = $1 WHERE id = $2`, time.Now(), staffID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disable 2FA"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "2FA disabled successfully"})
}
