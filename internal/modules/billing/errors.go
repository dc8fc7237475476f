package billing

import "errors"

var (
	ErrInvalidPaymentAmount = errors.New("invalid_payment_amount")
	ErrInvalidPaymentMethod = errors.New("invalid_payment_method")
	ErrBookingNotFound      = errors.New("booking not found")
)
