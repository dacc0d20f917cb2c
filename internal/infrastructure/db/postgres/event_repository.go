package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventease/platform-api/internal/core/domain"
	"github.com/eventease/platform-api/internal/core/ports"
)

// EventRepository reads and writes the events table.
type EventRepository struct {
	pool *pgxpool.Pool
}

var _ ports.EventRepository = (*EventRepository)(nil)

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// Create inserts an event. The combined start/end timestamps are derived from
// the date and time-of-day columns so booking ordering works without callers
// supplying them separately.
func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	const q = `INSERT INTO events
		(event_name, event_type_id, event_desc, start_date, end_date, start_time, end_time,
		 location, organizer_id, vendor_id, customer_id, event_status, ispackage,
		 start_datetime, end_datetime)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $4::date + $6::time, $5::date + $7::time)
		RETURNING event_id`
	err := r.pool.QueryRow(ctx, q,
		e.Name, e.TypeID, e.Description, e.StartDate, e.EndDate, e.StartTime, e.EndTime,
		e.Location, e.OrganizerID, e.VendorID, e.CustomerID, e.Status, e.IsPackage,
	).Scan(&e.ID)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	const q = `
		SELECT event_id, event_name, event_type_id, event_desc,
		       start_date, end_date, start_time, end_time, location,
		       organizer_id, vendor_id, customer_id, event_status, COALESCE(ispackage, false)
		FROM events
		ORDER BY event_id`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(
			&e.ID, &e.Name, &e.TypeID, &e.Description,
			&e.StartDate, &e.EndDate, &e.StartTime, &e.EndTime, &e.Location,
			&e.OrganizerID, &e.VendorID, &e.CustomerID, &e.Status, &e.IsPackage,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) ListBookings(ctx context.Context) ([]domain.Event, error) {
	const q = `
		SELECT e.event_id, e.event_name, e.event_type_id, et.event_type_name, e.event_desc,
		       e.start_date, e.end_date, e.start_time, e.end_time,
		       e.start_datetime, e.end_datetime, e.location,
		       e.venue_id, e.organizer_id, e.vendor_id, e.customer_id,
		       e.event_status, COALESCE(e.ispackage, false),
		       e.guests, e.attire, e.budget, e.liking_score, e.revenue, e.services
		FROM events e
		LEFT JOIN event_type et ON e.event_type_id = et.event_type_id
		WHERE e.event_status = ANY($1)
		ORDER BY e.start_datetime DESC`

	statuses := make([]string, len(domain.BookingStatuses))
	for i, s := range domain.BookingStatuses {
		statuses[i] = string(s)
	}

	rows, err := r.pool.Query(ctx, q, statuses)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(
			&e.ID, &e.Name, &e.TypeID, &e.TypeName, &e.Description,
			&e.StartDate, &e.EndDate, &e.StartTime, &e.EndTime,
			&e.StartDateTime, &e.EndDateTime, &e.Location,
			&e.VenueID, &e.OrganizerID, &e.VendorID, &e.CustomerID,
			&e.Status, &e.IsPackage,
			&e.Guests, &e.Attire, &e.Budget, &e.LikingScore, &e.Revenue, &e.Services,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return events, nil
}
