package lifecycle

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid_status_transition")
	// ErrCheckInNotDue is a usage error: check-in requested before the arrival date.
	ErrCheckInNotDue = errors.New("check_in_not_due")
	ErrUnknownAction = errors.New("unknown_action")
)
