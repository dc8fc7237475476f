package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"frontdesk/internal/domain"
)

// BookingStore is the persistence side of the ledger.
type BookingStore interface {
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	// UpdatePayment stores the new cumulative advance and returns the stored record.
	UpdatePayment(ctx context.Context, bookingID int64, advance decimal.Decimal, method domain.PaymentMethod) (*domain.Booking, error)
}

// Merger receives records confirmed by the store (the front-desk board).
type Merger interface {
	Merge(b domain.Booking)
}
