package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/utils"
)

// SessionHandler issues the advisory staff tokens.  Tokens identify who is
// working the floor; no endpoint requires one.
type SessionHandler struct {
	Secret string
	TTLMin int
}

// NewSessionHandler constructs a SessionHandler from the configured signing
// secret and TTL.
func NewSessionHandler(secret string, ttlMin int) *SessionHandler {
	return &SessionHandler{Secret: secret, TTLMin: ttlMin}
}

// Create handles POST /v1/session.  The body names the staff member and an
// optional role (camarero by default).  It returns the signed token and its
// expiry.
func (h *SessionHandler) Create(c echo.Context) error {
	var body struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}
	if body.Role == "" {
		body.Role = "camarero"
	}
	tok, err := utils.NewStaffToken(h.Secret, body.Name, body.Role, h.TTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not sign token"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"token":      tok.Token,
		"expires_at": tok.Exp.Format(time.RFC3339),
		"name":       body.Name,
		"role":       body.Role,
	})
}
