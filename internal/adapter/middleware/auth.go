package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// The identity provider sits in front of this service; it authenticates the
// caller and forwards the principal in trusted headers. We only parse them.
const (
	HeaderUserID   = "Ax-User-Id"
	HeaderUserRole = "Ax-User-Role"

	principalContextKey = "auth.principal"
)

type Principal struct {
	UserID string
	Role   string
}

func (p Principal) IsAdmin() bool { return p.Role == "admin" }

// Identity extracts the forwarded principal into the request context.
// Requests without a valid Ax-User-Id are rejected.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
			if userID == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + HeaderUserID})
			}
			if !reHex32.MatchString(userID) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid " + HeaderUserID})
			}

			role := strings.ToLower(strings.TrimSpace(c.Request().Header.Get(HeaderUserRole)))
			switch role {
			case "admin":
			default:
				role = "user"
			}

			c.Set(principalContextKey, Principal{UserID: userID, Role: role})
			return next(c)
		}
	}
}

// AdminOnly guards administrative routes. Must run after Identity.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok || !p.IsAdmin() {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin access required"})
			}
			return next(c)
		}
	}
}

func PrincipalFrom(c echo.Context) (Principal, bool) {
	p, ok := c.Get(principalContextKey).(Principal)
	return p, ok
}
