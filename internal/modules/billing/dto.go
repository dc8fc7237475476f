package billing

import (
	"github.com/shopspring/decimal"

	"frontdesk/internal/domain"
)

type PaymentRequest struct {
	NewCumulativeAdvance *decimal.Decimal     `json:"new_cumulative_advance" binding:"required"`
	Method               domain.PaymentMethod `json:"method" validate:"omitempty,payment_method"`
}

type DashboardQuery struct {
	Query  string
	Status domain.PaymentStatus
}

type Dashboard struct {
	Summary Summary          `json:"summary"`
	Rows    []domain.Booking `json:"rows"`
}

type PaymentResponse struct {
	BookingID     int64                `json:"booking_id"`
	Advance       decimal.Decimal      `json:"advance"`
	Balance       decimal.Decimal      `json:"balance"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
	Method        domain.PaymentMethod `json:"method"`
}
