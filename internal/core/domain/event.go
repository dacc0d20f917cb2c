package domain

import "time"

// EventStatus is the booking lifecycle state of an event.
type EventStatus string

const (
	StatusPending  EventStatus = "Pending"
	StatusUpcoming EventStatus = "Upcoming"
	StatusPast     EventStatus = "Past"
	StatusRejected EventStatus = "Rejected"
	StatusDraft    EventStatus = "Draft"
)

// BookingStatuses is the fixed grouping order for the bookings listing.
var BookingStatuses = []EventStatus{
	StatusPending,
	StatusUpcoming,
	StatusPast,
	StatusRejected,
	StatusDraft,
}

// ValidBookingStatus reports whether s is one of the listed booking states.
func ValidBookingStatus(s EventStatus) bool {
	for _, v := range BookingStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Event is a platform event as stored in the events table. Date-only and
// time-of-day columns are kept as strings; the combined timestamps drive
// booking ordering and display formatting.
type Event struct {
	ID            int64      `json:"event_id"`
	Name          string     `json:"event_name"`
	TypeID        int        `json:"event_type_id"`
	TypeName      *string    `json:"event_type,omitempty"`
	Description   *string    `json:"event_desc,omitempty"`
	StartDate     string     `json:"start_date"`
	EndDate       string     `json:"end_date"`
	StartTime     string     `json:"start_time"`
	EndTime       string     `json:"end_time"`
	StartDateTime *time.Time `json:"start_datetime,omitempty"`
	EndDateTime   *time.Time `json:"end_datetime,omitempty"`
	Location      string     `json:"event_location"`
	VenueID       *string    `json:"venue_id,omitempty"`
	OrganizerID   *string    `json:"organizer_id,omitempty"`
	VendorID      *string    `json:"vendor_id,omitempty"`
	CustomerID    *string    `json:"customer_id,omitempty"`
	Status        *string    `json:"event_status"`
	IsPackage     bool       `json:"ispackage"`
	Guests        *int       `json:"guests,omitempty"`
	Attire        *string    `json:"attire,omitempty"`
	Budget        *float64   `json:"budget,omitempty"`
	LikingScore   *float64   `json:"liking_score,omitempty"`
	Revenue       *float64   `json:"revenue,omitempty"`
	Services      *string    `json:"services,omitempty"`
}
