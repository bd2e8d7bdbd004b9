package handler

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/engine"
	q "github.com/iliyamo/restaurant-ops/internal/queue"
	queuepub "github.com/iliyamo/restaurant-ops/internal/service"
)

// CreateReservation handles POST /v1/reservations.  When the modal is in
// edit mode the same payload edits the reservation named there instead of
// creating one.  A reservation.created event is published for new bookings;
// publish failures are logged and never fail the request.
func (h *OpsHandler) CreateReservation(c echo.Context) error {
	var draft engine.ReservationDraft
	if err := c.Bind(&draft); err != nil {
		return badRequest(c, "invalid request body")
	}
	if draft.Name == "" || draft.Time == "" {
		return badRequest(c, "name and time are required")
	}
	if draft.Guests <= 0 {
		return badRequest(c, "guests must be positive")
	}
	prev, err := h.Store.Snapshot(c.Request().Context())
	if err != nil {
		return unavailable(c)
	}
	s, err := h.Store.Dispatch(c.Request().Context(), engine.AddReservation{Draft: draft})
	if err != nil {
		return unavailable(c)
	}
	if s.Counters.Reservation > prev.Counters.Reservation && len(s.Reservations) > 0 {
		r := s.Reservations[len(s.Reservations)-1]
		event := q.ReservationCreatedEvent{
			ReservationID: r.ID,
			Name:          r.Name,
			Time:          r.Time,
			Guests:        r.Guests,
			TableID:       r.Table,
			Type:          r.Type,
			Status:        string(r.Status),
			CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		}
		if err := queuepub.PublishReservationCreated(c.Request().Context(), event); err != nil {
			log.Printf("reservation-publisher: %v", err)
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"reservations":  s.Reservations,
		"tables":        s.Tables,
		"notifications": s.Notifications,
		"ui":            s.UI,
	})
}

// AssignReservationTable handles POST /v1/reservations/:id/table with a
// {"table_id": n} body.  An unavailable table keeps the previous binding and
// answers with the advisory the engine minted.
func (h *OpsHandler) AssignReservationTable(c echo.Context) error {
	var body struct {
		TableID int `json:"table_id"`
	}
	if err := c.Bind(&body); err != nil || body.TableID == 0 {
		return badRequest(c, "table_id is required")
	}
	s, err := h.Store.Dispatch(c.Request().Context(), engine.AssignReservationTable{
		ReservationID: c.Param("id"),
		TableID:       body.TableID,
	})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"reservations":  s.Reservations,
		"tables":        s.Tables,
		"notifications": s.Notifications,
	})
}

// StartReservationService handles POST /v1/reservations/:id/start and seats
// the party.
func (h *OpsHandler) StartReservationService(c echo.Context) error {
	s, err := h.Store.Dispatch(c.Request().Context(), engine.StartReservationService{ReservationID: c.Param("id")})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"reservations": s.Reservations,
		"tables":       s.Tables,
		"service":      s.Service,
	})
}

// FinishReservationService handles POST /v1/reservations/:id/finish.
func (h *OpsHandler) FinishReservationService(c echo.Context) error {
	s, err := h.Store.Dispatch(c.Request().Context(), engine.FinishReservationService{ReservationID: c.Param("id")})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"reservations": s.Reservations,
		"tables":       s.Tables,
	})
}

// OpenReservationModal handles POST /v1/reservations/modal with an optional
// {"editing_id": "rsv-001"} body to open the form in edit mode.
func (h *OpsHandler) OpenReservationModal(c echo.Context) error {
	var body struct {
		EditingID string `json:"editing_id"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	s, err := h.Store.Dispatch(c.Request().Context(), engine.OpenReservationModal{EditingID: body.EditingID})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{"ui": s.UI})
}

// CloseReservationModal handles DELETE /v1/reservations/modal.
func (h *OpsHandler) CloseReservationModal(c echo.Context) error {
	s, err := h.Store.Dispatch(c.Request().Context(), engine.CloseReservationModal{})
	if err != nil {
		return unavailable(c)
	}
	return c.JSON(http.StatusOK, echo.Map{"ui": s.UI})
}

// parseTableID is shared by the table routes.
func parseTableID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid table id")
	}
	return id, nil
}
