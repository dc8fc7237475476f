package frontdesk

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrUnknownView     = errors.New("unknown board view")
)
