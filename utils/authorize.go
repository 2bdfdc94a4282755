// utils/authorize.go
package utils

import (
	"net/http"
	"strings"

	"pngbilling-backend/config"

	"github.com/gin-gonic/gin"
)

// ResourceFromPath extracts the resource segment from an API path, e.g.
// "/api/meter-readings/123" yields "meter-readings".
func ResourceFromPath(path string) string {
	trimmed := strings.TrimPrefix(path, "/api/")
	if trimmed == path {
		return ""
	}
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		trimmed = trimmed[:i]
	}
	return trimmed
}

// RequireAccess gates a route on "entity:action", resolving the entity from
// the request path's resource segment. AuthMiddleware must have run first so
// the role claim is in context.
func RequireAccess(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			RespondWithError(c, http.StatusUnauthorized, "Role not found in context")
			return
		}

		resource := ResourceFromPath(c.Request.URL.Path)
		if resource == "" {
			RespondWithError(c, http.StatusForbidden, "Unknown resource")
			return
		}
		entity := ConvertRouteToEntity(resource)

		if !HasPermission(config.PermissionsForRole(role), entity+":"+action) {
			RespondWithError(c, http.StatusForbidden, "insufficient permissions")
			return
		}

		c.Next()
	}
}
