package ports

import (
	"context"

	"github.com/eventease/platform-api/internal/core/domain"
)

// CreateEventInput is the validated payload for event creation.
type CreateEventInput struct {
	Name        string
	TypeID      int
	Description *string
	StartDate   string
	EndDate     string
	StartTime   string
	EndTime     string
	Location    string
	OrganizerID *string
	VendorID    *string
	CustomerID  *string
	Status      *string
	IsPackage   bool
}

// BookingView is a single booking row shaped for display: formatted date,
// weekday, and 12-hour start/end times derived from the event timestamps.
type BookingView struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Status      string   `json:"event_status"`
	TypeID      int      `json:"event_type_id"`
	EventType   string   `json:"eventType"`
	EventDesc   string   `json:"eventDesc"`
	VenueID     *string  `json:"venue_id"`
	OrganizerID *string  `json:"organizer_id"`
	Customer    string   `json:"customer"`
	Location    string   `json:"location"`
	Guests      string   `json:"guests"`
	Attire      *string  `json:"attire"`
	Budget      *float64 `json:"budget"`
	LikingScore *float64 `json:"liking_score"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Date        string   `json:"date"`
	Day         string   `json:"day"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
	Services    string   `json:"services"`
}

// EventService exposes the event catalog and the grouped bookings listing.
type EventService interface {
	Create(ctx context.Context, in CreateEventInput) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)

	// Bookings groups booking rows by status in domain.BookingStatuses order.
	// Every status key is present in the result, empty or not.
	Bookings(ctx context.Context) (map[string][]BookingView, error)
}
