package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-ops/internal/utils"
)

func runIdentity(t *testing.T, secret, authHeader string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	called := false
	err := Identity(secret)(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	require.NoError(t, err)
	require.True(t, called, "identity must never block a request")
	return c
}

func TestIdentity(t *testing.T) {
	const secret = "test-secret"

	t.Run("valid token stamps staff and role", func(t *testing.T) {
		tok, err := utils.NewStaffToken(secret, "Ana", "camarero", 60)
		require.NoError(t, err)

		c := runIdentity(t, secret, "Bearer "+tok.Token)
		assert.Equal(t, "Ana", StaffName(c))
		assert.Equal(t, "camarero", StaffRole(c))
	})

	t.Run("missing token proceeds anonymous", func(t *testing.T) {
		c := runIdentity(t, secret, "")
		assert.Empty(t, StaffName(c))
		assert.Empty(t, StaffRole(c))
	})

	t.Run("token signed with another secret proceeds anonymous", func(t *testing.T) {
		tok, err := utils.NewStaffToken("other-secret", "Ana", "camarero", 60)
		require.NoError(t, err)

		c := runIdentity(t, secret, "Bearer "+tok.Token)
		assert.Empty(t, StaffName(c))
	})

	t.Run("garbage token proceeds anonymous", func(t *testing.T) {
		c := runIdentity(t, secret, "Bearer not.a.jwt")
		assert.Empty(t, StaffName(c))
	})
}
