package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventease/platform-api/internal/core/domain"
	"github.com/eventease/platform-api/internal/core/ports"
)

// EventHandler exposes the event catalog and the grouped bookings listing.
type EventHandler struct {
	events ports.EventService
}

func NewEventHandler(events ports.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// CreateEvent persists a new event and returns the created row.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      createEventRequest  true  "Event details"
// @Success      200   {object}  eventListResponse
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /api/events [post]
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.events.Create(c.Request().Context(), ports.CreateEventInput{
		Name:        req.EventName,
		TypeID:      req.EventTypeID,
		Description: req.EventDesc,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		OrganizerID: req.OrganizerID,
		VendorID:    req.VendorID,
		CustomerID:  req.CustomerID,
		Status:      req.EventStatus,
		IsPackage:   req.IsPackage,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, eventListResponse{Success: true, Data: []domain.Event{*event}})
}

// ListEvents returns the event catalog projection.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Success      200  {object}  eventListResponse
// @Failure      500  {object}  map[string]any
// @Router       /api/events [get]
func (h *EventHandler) ListEvents(c echo.Context) error {
	events, err := h.events.List(c.Request().Context())
	if err != nil {
		return err
	}
	if events == nil {
		events = []domain.Event{}
	}
	return c.JSON(http.StatusOK, eventListResponse{Success: true, Data: events})
}

// ListBookings returns booking rows grouped by lifecycle status.
//
// @Summary      List bookings grouped by status
// @Tags         events
// @Produce      json
// @Success      200  {object}  bookingsResponse
// @Failure      500  {object}  map[string]any
// @Router       /api/bookings [get]
func (h *EventHandler) ListBookings(c echo.Context) error {
	grouped, err := h.events.Bookings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookingsResponse{Success: true, Data: grouped})
}
