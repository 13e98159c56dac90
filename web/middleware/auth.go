package middleware

import (
	"encoding/base64"
	"net/http"
	"strings"

	"census-api/logger"
	"census-api/web/entity"
	"census-api/web/service"

	"github.com/gin-gonic/gin"
)

const adminContextKey = "admin"

// BasicAuth guards a route group with HTTP Basic authentication against the
// stored admin credential. On success the resolved identity is attached to
// the request context under "admin".
func BasicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Basic ") {
			abortUnauthorized(c, "Missing or invalid Authorization header (Basic Auth required).")
			return
		}

		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
		if err != nil {
			abortUnauthorized(c, "Invalid Basic Auth format.")
			return
		}
		login, password, found := strings.Cut(string(decoded), ":")
		if !found || login == "" || password == "" {
			abortUnauthorized(c, "Invalid Basic Auth format.")
			return
		}

		adminService := service.AdminService{}
		admin, err := adminService.CheckAdmin(login, password)
		if err != nil {
			// Storage failure, not an auth failure. Never leaks the cause.
			logger.Error("admin lookup failed:", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, entity.ErrorResponse{
				Error:   entity.ErrorServer,
				Message: "Could not verify credentials.",
			})
			return
		}
		if admin == nil {
			abortUnauthorized(c, "Invalid admin credentials.")
			return
		}

		c.Set(adminContextKey, entity.AdminIdentity{Id: admin.Id, Login: admin.Login})
		c.Next()
	}
}

// GetAdmin returns the identity attached by BasicAuth, if any.
func GetAdmin(c *gin.Context) (entity.AdminIdentity, bool) {
	value, exists := c.Get(adminContextKey)
	if !exists {
		return entity.AdminIdentity{}, false
	}
	admin, ok := value.(entity.AdminIdentity)
	return admin, ok
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, entity.ErrorResponse{
		Error:   entity.ErrorUnauthorized,
		Message: message,
	})
}
