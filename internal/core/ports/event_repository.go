package ports

import (
	"context"

	"github.com/eventease/platform-api/internal/core/domain"
)

// EventRepository persists and reads platform events.
type EventRepository interface {
	// Create inserts a new event and fills in the generated id.
	Create(ctx context.Context, e *domain.Event) error

	// List returns the catalog projection of all events.
	List(ctx context.Context) ([]domain.Event, error)

	// ListBookings returns events in the booking lifecycle states, joined to
	// their event type, ordered by start timestamp descending.
	ListBookings(ctx context.Context) ([]domain.Event, error)
}
