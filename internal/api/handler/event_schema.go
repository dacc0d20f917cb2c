package handler

import "github.com/eventease/platform-api/internal/core/domain"

type createEventRequest struct {
	EventName   string  `json:"event_name"    validate:"required"`
	EventTypeID int     `json:"event_type_id" validate:"required,gt=0"`
	EventDesc   *string `json:"event_desc"`
	StartDate   string  `json:"start_date"    validate:"required"`
	EndDate     string  `json:"end_date"      validate:"required"`
	StartTime   string  `json:"start_time"    validate:"required"`
	EndTime     string  `json:"end_time"      validate:"required"`
	Location    string  `json:"event_location" validate:"required"`
	OrganizerID *string `json:"organizer_id"`
	VendorID    *string `json:"vendor_id"`
	CustomerID  *string `json:"customer_id"`
	EventStatus *string `json:"event_status"  validate:"omitempty,oneof=Pending Upcoming Past Rejected Draft"`
	IsPackage   bool    `json:"ispackage"`
}

// eventListResponse wraps event rows in the platform's success envelope.
type eventListResponse struct {
	Success bool           `json:"success"`
	Data    []domain.Event `json:"data"`
}

type bookingsResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}
