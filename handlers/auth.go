package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/artistycode/studio-api/models"
	"github.com/artistycode/studio-api/utils"
)

const refreshTokenTTL = 7 * 24 * time.Hour

type AuthHandler struct {
	DB *sql.DB
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var staff models.Staff
	var passwordHash string
	var totpSecret sql.NullString

	err := h.DB.QueryRow(`
		SELECT id, name, email, password_hash, role, totp_secret, totp_enabled, created_at, updated_at
		FROM staff
		WHERE email = $1
	`, req.Email).Scan(&staff.ID, &staff.Name, &staff.Email, &passwordHash, &staff.Role, &totpSecret, &staff.TOTPEnabled, &staff.CreatedAt, &staff.UpdatedAt)

	if err == sql.ErrNoRows {
		utils.LogAuthAction("Login", req.Email, false)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !utils.CheckPassword(req.Password, passwordHash) {
		utils.LogAuthAction("Login", req.Email, false)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if staff.TOTPEnabled {
		if req.TOTPCode == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "2FA code required", "requires_2fa": true})
			return
		}

		if totpSecret.Valid {
			valid, err := utils.VerifyTOTP(totpSecret.String, req.TOTPCode)
			if err != nil || !valid {
				utils.LogAuthAction("Login", req.Email, false)
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid 2FA code"})
				return
			}
		}
	}

	accessToken, err := utils.GenerateAccessToken(staff.ID, staff.Email, staff.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate refresh token"})
		return
	}

	_, err = h.DB.Exec(`
		INSERT INTO sessions (staff_id, refresh_token, expires_at)
		VALUES ($1, $2, $3)
	`, staff.ID, refreshToken, time.Now().Add(refreshTokenTTL))

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	utils.LogAuthAction("Login", staff.Email, true)

	c.JSON(http.StatusOK, models.AuthResponse{
		Staff:        staff,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh trades a stored refresh token for a fresh access token. The refresh
// token itself is rotated on every use.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var staff models.Staff
	var sessionID string
	var expiresAt time.Time

	err := h.DB.QueryRow(`
		SELECT s.id, s.expires_at, st.id, st.name, st.email, st.role, st.totp_enabled, st.created_at, st.updated_at
		FROM sessions s
		JOIN staff st ON s.staff_id = st.id
		WHERE s.refresh_token = $1
	`, req.RefreshToken).Scan(&sessionID, &expiresAt, &staff.ID, &staff.Name, &staff.Email, &staff.Role, &staff.TOTPEnabled, &staff.CreatedAt, &staff.UpdatedAt)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if time.Now().After(expiresAt) {
		h.DB.Exec(`DELETE FROM sessions WHERE id = $1`, sessionID)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token expired"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(staff.ID, staff.Email, staff.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate refresh token"})
		return
	}

	_, err = h.DB.Exec(`
		UPDATE sessions SET refresh_token = $1, expires_at = $2 WHERE id = $3
	`, refreshToken, time.Now().Add(refreshTokenTTL), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update session"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Staff:        staff,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.DB.Exec(`DELETE FROM sessions WHERE refresh_token = $1`, req.RefreshToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
