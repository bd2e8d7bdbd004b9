// Package handler contains the echo HTTP handlers.  Handlers are a thin
// dispatch shell: each staff action builds one engine Action, dispatches it
// through the store, and returns the relevant slice of the fresh snapshot.
// Domain "failures" (insufficient stock, unavailable table) are not HTTP
// errors; they come back as 200 responses whose state carries the advisory
// notification the engine minted.  4xx is reserved for malformed requests.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/store"
)

// OpsHandler groups the dependencies every route needs: the single-writer
// store holding the restaurant state.
type OpsHandler struct {
	Store *store.Store
}

// NewOpsHandler constructs an OpsHandler.  The store must be non-nil.
func NewOpsHandler(st *store.Store) *OpsHandler {
	if st == nil {
		panic("nil store passed to NewOpsHandler")
	}
	return &OpsHandler{Store: st}
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}

func unavailable(c echo.Context) error {
	return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "state unavailable"})
}
