package lifecycle

import (
	"fmt"

	"frontdesk/internal/domain"
)

// Action is a front-desk request to move a booking along its lifecycle.
type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionCheckIn  Action = "check_in"
	ActionCheckOut Action = "check_out"
	ActionCancel   Action = "cancel"
)

var actions = []Action{ActionConfirm, ActionCheckIn, ActionCheckOut, ActionCancel}

func (a Action) Valid() bool {
	for _, v := range actions {
		if a == v {
			return true
		}
	}
	return false
}

type transition struct {
	from   domain.BookingStatus
	action Action
}

var table = map[transition]domain.BookingStatus{
	{domain.BookingPending, ActionConfirm}: domain.BookingConfirmed,

	{domain.BookingPending, ActionCheckIn}:   domain.BookingCheckedIn,
	{domain.BookingConfirmed, ActionCheckIn}: domain.BookingCheckedIn,

	{domain.BookingCheckedIn, ActionCheckOut}: domain.BookingCheckedOut,

	{domain.BookingPending, ActionCancel}:   domain.BookingCancelled,
	{domain.BookingConfirmed, ActionCancel}: domain.BookingCancelled,
	{domain.BookingCheckedIn, ActionCancel}: domain.BookingCancelled,
}

// Next returns the status reached by applying action to from.
func Next(from domain.BookingStatus, action Action) (domain.BookingStatus, error) {
	if !action.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	to, ok := table[transition{from: from, action: action}]
	if !ok {
		return "", fmt.Errorf("%w: cannot %s a booking in status %q", ErrInvalidTransition, action, from)
	}
	return to, nil
}

// Apply validates action against b on the given calendar day and returns the
// updated copy. Only Status changes; money fields are left alone. b itself
// is never modified.
func Apply(b domain.Booking, action Action, today domain.Date) (domain.Booking, error) {
	to, err := Next(b.Status, action)
	if err != nil {
		return b, err
	}
	if action == ActionCheckIn && b.CheckInDate.After(today) {
		return b, fmt.Errorf("%w: booking %d arrives on %s, today is %s", ErrCheckInNotDue, b.ID, b.CheckInDate, today)
	}

	out := b
	out.Status = to
	return out, nil
}

// AllowedActions lists what the console may offer for b today.
func AllowedActions(b domain.Booking, today domain.Date) []Action {
	out := make([]Action, 0, len(actions))
	for _, a := range actions {
		if _, err := Apply(b, a, today); err == nil {
			out = append(out, a)
		}
	}
	return out
}
