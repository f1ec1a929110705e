package middleware

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/services"

	"github.com/gin-gonic/gin"
)

const AdminUserKey = "admin_user"

// AdminAuth guards the operator surface. It accepts either a Bearer token
// issued by the login endpoint or direct Basic credentials, so the admin UI
// can use whichever it has at hand.
func AdminAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Accès non autorisé"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Accès non autorisé"})
			return
		}

		switch parts[0] {
		case "Bearer":
			username, err := authService.ValidateToken(parts[1])
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Accès non autorisé"})
				return
			}
			c.Set(AdminUserKey, username)
		case "Basic":
			decoded, err := base64.StdEncoding.DecodeString(parts[1])
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Accès non autorisé"})
				return
			}
			username, password, found := strings.Cut(string(decoded), ":")
			if !found || authService.VerifyCredentials(username, password) != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Accès non autorisé"})
				return
			}
			c.Set(AdminUserKey, username)
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Accès non autorisé"})
			return
		}

		c.Next()
	}
}
