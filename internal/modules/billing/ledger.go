package billing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"frontdesk/internal/domain"
)

// PaymentUpdate carries the new cumulative amount received for a booking.
// It replaces the previous advance; it is not added to it.
type PaymentUpdate struct {
	BookingID            int64
	NewCumulativeAdvance decimal.Decimal
	Method               domain.PaymentMethod
}

// DerivePaymentStatus tags a booking by how much of amount has been received.
func DerivePaymentStatus(amount, advance decimal.Decimal) domain.PaymentStatus {
	switch {
	case !advance.IsPositive():
		return domain.PaymentPending
	case advance.GreaterThanOrEqual(amount):
		return domain.PaymentPaid
	default:
		return domain.PaymentPartial
	}
}

// Settle is the only place Balance and PaymentStatus are computed.
func Settle(b domain.Booking) domain.Booking {
	b.Balance = b.Amount.Sub(b.Advance)
	b.PaymentStatus = DerivePaymentStatus(b.Amount, b.Advance)
	return b
}

// ApplyPayment returns b with the new cumulative advance and re-derived
// balance and status. Out-of-range values are rejected and b is returned
// unchanged.
func ApplyPayment(b domain.Booking, u PaymentUpdate) (domain.Booking, error) {
	if u.NewCumulativeAdvance.IsNegative() || u.NewCumulativeAdvance.GreaterThan(b.Amount) {
		return b, fmt.Errorf("%w: %s is outside [0, %s]", ErrInvalidPaymentAmount, u.NewCumulativeAdvance, b.Amount)
	}
	if u.Method != "" && !u.Method.Valid() {
		return b, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, u.Method)
	}

	out := b
	out.Advance = u.NewCumulativeAdvance
	if u.Method != "" {
		out.PaymentMethod = u.Method
	}
	return Settle(out), nil
}

type Summary struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalCollected   decimal.Decimal `json:"total_collected"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	PaidCount        int             `json:"paid_count"`
	PartialCount     int             `json:"partial_count"`
	PendingCount     int             `json:"pending_count"`
	Bookings         int             `json:"bookings"`
}

// Summarize reduces a collection to dashboard totals over settled bookings.
func Summarize(bookings []domain.Booking) Summary {
	s := Summary{
		TotalRevenue:     decimal.Zero,
		TotalCollected:   decimal.Zero,
		TotalOutstanding: decimal.Zero,
	}
	for _, b := range bookings {
		b = Settle(b)
		s.TotalRevenue = s.TotalRevenue.Add(b.Amount)
		s.TotalCollected = s.TotalCollected.Add(b.Advance)
		s.TotalOutstanding = s.TotalOutstanding.Add(b.Balance)
		switch b.PaymentStatus {
		case domain.PaymentPaid:
			s.PaidCount++
		case domain.PaymentPartial:
			s.PartialCount++
		default:
			s.PendingCount++
		}
		s.Bookings++
	}
	return s
}
