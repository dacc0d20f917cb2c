package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/eventease/platform-api/internal/core/domain"
	"github.com/eventease/platform-api/internal/core/ports"
)

// EventService exposes the event catalog and the grouped bookings listing.
// The bookings projection is cached read-side and invalidated on writes.
type EventService struct {
	repo   ports.EventRepository
	cache  ports.BookingCache
	logger zerolog.Logger
}

var _ ports.EventService = (*EventService)(nil)

func NewEventService(repo ports.EventRepository, cache ports.BookingCache, logger zerolog.Logger) *EventService {
	return &EventService{repo: repo, cache: cache, logger: logger}
}

func (s *EventService) Create(ctx context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	if in.Name == "" || in.TypeID == 0 || in.StartDate == "" || in.EndDate == "" ||
		in.StartTime == "" || in.EndTime == "" || in.Location == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Status != nil && !domain.ValidBookingStatus(domain.EventStatus(*in.Status)) {
		return nil, domain.ErrInvalidInput
	}

	e := &domain.Event{
		Name:        in.Name,
		TypeID:      in.TypeID,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Location:    in.Location,
		OrganizerID: in.OrganizerID,
		VendorID:    in.VendorID,
		CustomerID:  in.CustomerID,
		Status:      in.Status,
		IsPackage:   in.IsPackage,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	s.logger.Info().Int64("event_id", e.ID).Str("event_name", e.Name).Msg("event created")
	return e, nil
}

func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.repo.List(ctx)
}

// Bookings returns booking rows grouped by status. Every status in
// domain.BookingStatuses is present as a key, even when empty, so clients can
// render fixed columns.
func (s *EventService) Bookings(ctx context.Context) (map[string][]ports.BookingView, error) {
	if s.cache != nil {
		if grouped, ok := s.cache.Get(ctx); ok {
			return grouped, nil
		}
	}

	events, err := s.repo.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]ports.BookingView, len(domain.BookingStatuses))
	for _, st := range domain.BookingStatuses {
		grouped[string(st)] = []ports.BookingView{}
	}
	for i := range events {
		e := &events[i]
		if e.Status == nil || !domain.ValidBookingStatus(domain.EventStatus(*e.Status)) {
			continue
		}
		grouped[*e.Status] = append(grouped[*e.Status], bookingView(e))
	}

	if s.cache != nil {
		s.cache.Set(ctx, grouped)
	}
	return grouped, nil
}

// bookingView shapes a single event row for display: "Mon DD" date, weekday
// name, and 12-hour clock times derived from the start/end timestamps.
func bookingView(e *domain.Event) ports.BookingView {
	v := ports.BookingView{
		ID:          e.ID,
		Title:       e.Name,
		TypeID:      e.TypeID,
		VenueID:     e.VenueID,
		OrganizerID: e.OrganizerID,
		Attire:      e.Attire,
		Budget:      e.Budget,
		LikingScore: e.LikingScore,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Date:        "Unknown",
		Day:         "Unknown",
	}
	if e.Status != nil {
		v.Status = *e.Status
	}
	if e.TypeName != nil {
		v.EventType = *e.TypeName
	}
	if e.Description != nil {
		v.EventDesc = *e.Description
	}
	if e.Services != nil {
		v.Services = *e.Services
	}
	if e.CustomerID != nil {
		v.Customer = fmt.Sprintf("Customer %s", *e.CustomerID)
	}
	if e.VenueID != nil {
		v.Location = fmt.Sprintf("Location %s", *e.VenueID)
	}
	if e.Guests != nil {
		v.Guests = fmt.Sprintf("%d Guests", *e.Guests)
	}
	if e.StartDateTime != nil {
		v.Date = e.StartDateTime.Format("Jan 02")
		v.Day = e.StartDateTime.Format("Monday")
		v.StartTime = e.StartDateTime.Format("03:04 PM")
	}
	if e.EndDateTime != nil {
		v.EndTime = e.EndDateTime.Format("03:04 PM")
	}
	return v
}
