package frontdesk

import (
	"context"

	"frontdesk/internal/domain"
)

type BookingLister interface {
	ListBookings(ctx context.Context) ([]domain.Booking, error)
}

type BookingStore interface {
	BookingLister
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	// UpdateStatus writes to only while the stored status is still from and
	// returns the stored record.
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (*domain.Booking, error)
}
