package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"content-indexer/internal/auth"
)

// PermissionIndexAdmin guards the build/mapping endpoints.
const PermissionIndexAdmin = "index:admin"

type AuthMiddleware struct {
	authClient *auth.Client
}

func NewAuthMiddleware(authClient *auth.Client) *AuthMiddleware {
	return &AuthMiddleware{authClient: authClient}
}

// RequireServiceAuth validates the bearer service token and the required
// permission.
func (m *AuthMiddleware) RequireServiceAuth(permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header required")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := m.authClient.ValidateServiceToken(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			if permission != "" && !claims.HasPermission(permission) {
				return echo.NewHTTPError(http.StatusForbidden, "Missing permission")
			}

			return next(c)
		}
	}
}
