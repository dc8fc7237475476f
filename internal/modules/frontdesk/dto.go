package frontdesk

import (
	"frontdesk/internal/domain"
	"frontdesk/internal/modules/lifecycle"
)

// BookingView is a booking plus the actions the desk may take on it today.
type BookingView struct {
	domain.Booking
	AllowedActions []lifecycle.Action `json:"allowed_actions"`
}

type BoardResponse struct {
	Snapshot
	View  View             `json:"view,omitempty"`
	Query string           `json:"query,omitempty"`
	Rows  []domain.Booking `json:"rows,omitempty"`
}
