package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/artistycode/studio-api/models"
	"github.com/artistycode/studio-api/utils"
)

const (
	ContextStaffID    = "staff_id"
	ContextStaffEmail = "staff_email"
	ContextStaffRole  = "staff_role"
)

// AuthMiddleware verifies the Bearer token and stores the staff claims on the
// request context. Authorization itself happens in the role gates below.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		claims, err := utils.ParseAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextStaffID, claims.StaffID)
		c.Set(ContextStaffEmail, claims.Email)
		c.Set(ContextStaffRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin gates staff management and financial records.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetStaffRole(c) != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireModerator gates content management. Admins pass as well.
func RequireModerator() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetStaffRole(c)
		if role != models.RoleAdmin && role != models.RoleModerator {
			c.JSON(http.StatusForbidden, gin.H{"error": "Moderator access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetStaffID(c *gin.Context) string {
	return c.GetString(ContextStaffID)
}

func GetStaffRole(c *gin.Context) string {
	return c.GetString(ContextStaffRole)
}
