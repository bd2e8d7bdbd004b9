package middleware

// identity.go carries the advisory staff identity.  A session token names the
// staff member and their role so kitchen orders can be stamped with the
// waiter and clients can open on their role's screen.  Identity is never
// enforced: a missing or invalid token simply leaves the request anonymous.

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Identity returns middleware that parses an optional Bearer session token
// and stores the staff name and role in the request context under "staff"
// and "role".  Requests without a valid token proceed untouched.
func Identity(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return next(c)
			}
			raw := strings.TrimPrefix(auth, "Bearer ")
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return next(c)
			}
			if claims, ok := tok.Claims.(jwt.MapClaims); ok {
				if v, ok := claims["staff"].(string); ok && v != "" {
					c.Set("staff", v)
				}
				if v, ok := claims["role"].(string); ok && v != "" {
					c.Set("role", v)
				}
			}
			return next(c)
		}
	}
}

// StaffName extracts the advisory staff name from context, empty for
// anonymous requests.
func StaffName(c echo.Context) string {
	if v, ok := c.Get("staff").(string); ok {
		return v
	}
	return ""
}

// StaffRole extracts the advisory role from context, empty when unknown.
func StaffRole(c echo.Context) string {
	if v, ok := c.Get("role").(string); ok {
		return v
	}
	return ""
}
