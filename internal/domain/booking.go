package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidStatus = errors.New("invalid booking status")

type BookingStatus string

const (
	BookingPending    BookingStatus = "Pending"
	BookingConfirmed  BookingStatus = "Confirmed"
	BookingCheckedIn  BookingStatus = "Checked-in"
	BookingCheckedOut BookingStatus = "Checked-out"
	BookingCancelled  BookingStatus = "Cancelled"
)

var bookingStatuses = []BookingStatus{
	BookingPending,
	BookingConfirmed,
	BookingCheckedIn,
	BookingCheckedOut,
	BookingCancelled,
}

func BookingStatuses() []BookingStatus {
	return append([]BookingStatus(nil), bookingStatuses...)
}

func (s BookingStatus) Valid() bool {
	for _, v := range bookingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no further lifecycle action applies.
func (s BookingStatus) Terminal() bool {
	return s == BookingCheckedOut || s == BookingCancelled
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	st := BookingStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

func (s *BookingStatus) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*s = ""
		return nil
	}
	st, err := ParseBookingStatus(string(b))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPartial PaymentStatus = "Partial"
	PaymentPending PaymentStatus = "Pending"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentPaid || s == PaymentPartial || s == PaymentPending
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	st := PaymentStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown payment status %q", s)
	}
	return st, nil
}

func (s *PaymentStatus) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*s = ""
		return nil
	}
	st, err := ParsePaymentStatus(string(b))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// PaymentMethod is recorded for audit only; it never affects amounts.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "Cash"
	PaymentCard         PaymentMethod = "Card"
	PaymentUPI          PaymentMethod = "UPI"
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
	PaymentOnline       PaymentMethod = "Online"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI, PaymentBankTransfer, PaymentOnline:
		return true
	}
	return false
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown payment method %q", s)
	}
	return m, nil
}

// UnmarshalText accepts an empty value as "no method recorded".
func (m *PaymentMethod) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*m = ""
		return nil
	}
	v, err := ParsePaymentMethod(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Booking is a guest stay. Balance and PaymentStatus are derived from Amount
// and Advance by billing.Settle and are never written on their own.
type Booking struct {
	ID            int64           `json:"id"`
	RoomID        int64           `json:"room_id"`
	RoomNumber    string          `json:"room_number"`
	GuestName     string          `json:"guest_name"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	CheckInDate   Date            `json:"check_in_date"`
	CheckOutDate  Date            `json:"check_out_date"`
	Status        BookingStatus   `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	Advance       decimal.Decimal `json:"advance"`
	Balance       decimal.Decimal `json:"balance"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	PaymentMethod PaymentMethod   `json:"payment_method,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Nights returns the number of nights between check-in and check-out.
func (b Booking) Nights() int {
	if b.CheckInDate.IsZero() || b.CheckOutDate.IsZero() {
		return 0
	}
	n := b.CheckInDate.DaysUntil(b.CheckOutDate)
	if n < 0 {
		return 0
	}
	return n
}
