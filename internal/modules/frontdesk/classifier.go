package frontdesk

import (
	"strconv"
	"strings"

	"frontdesk/internal/domain"
)

type View string

const (
	ViewArrivals   View = "arrivals"
	ViewDepartures View = "departures"
	ViewInHouse    View = "in-house"
)

func ParseView(s string) (View, error) {
	switch v := View(strings.ToLower(strings.TrimSpace(s))); v {
	case ViewArrivals, ViewDepartures, ViewInHouse:
		return v, nil
	}
	return "", ErrUnknownView
}

// Counts backs the "pending X of Y" tiles on the console.
type Counts struct {
	CheckInsToday     int `json:"check_ins_today"`
	CheckOutsToday    int `json:"check_outs_today"`
	PendingArrivals   int `json:"pending_arrivals"`
	PendingDepartures int `json:"pending_departures"`
	CurrentlyOccupied int `json:"currently_occupied"`
}

type Buckets struct {
	Arrivals   []domain.Booking `json:"arrivals"`
	Departures []domain.Booking `json:"departures"`
	InHouse    []domain.Booking `json:"in_house"`
	Counts     Counts           `json:"counts"`
}

// Classify splits bookings into the three front-desk views. Dates are
// compared as calendar days; the result depends only on the arguments.
func Classify(bookings []domain.Booking, today domain.Date) Buckets {
	out := Buckets{
		Arrivals:   []domain.Booking{},
		Departures: []domain.Booking{},
		InHouse:    []domain.Booking{},
	}

	for _, b := range bookings {
		arrivingToday := b.CheckInDate.Equal(today)
		leavingToday := b.CheckOutDate.Equal(today)

		if arrivingToday {
			out.Counts.CheckInsToday++
			if b.Status == domain.BookingPending || b.Status == domain.BookingConfirmed {
				out.Arrivals = append(out.Arrivals, b)
			}
		}
		if leavingToday {
			out.Counts.CheckOutsToday++
		}
		if b.Status == domain.BookingCheckedIn {
			out.InHouse = append(out.InHouse, b)
			if leavingToday {
				out.Departures = append(out.Departures, b)
			}
		}
	}

	out.Counts.PendingArrivals = len(out.Arrivals)
	out.Counts.PendingDepartures = len(out.Departures)
	out.Counts.CurrentlyOccupied = len(out.InHouse)
	return out
}

// View returns one bucket by name.
func (b Buckets) View(v View) []domain.Booking {
	switch v {
	case ViewArrivals:
		return b.Arrivals
	case ViewDepartures:
		return b.Departures
	case ViewInHouse:
		return b.InHouse
	}
	return nil
}

// Filter narrows every bucket by q. Counts are left as classified.
func (b Buckets) Filter(q string) Buckets {
	if strings.TrimSpace(q) == "" {
		return b
	}
	b.Arrivals = Search(b.Arrivals, q)
	b.Departures = Search(b.Departures, q)
	b.InHouse = Search(b.InHouse, q)
	return b
}

// Search returns the bookings whose guest name, phone, email, room number or
// id contains q, ignoring case. An empty query returns bookings as given.
func Search(bookings []domain.Booking, q string) []domain.Booking {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return bookings
	}
	id := strings.TrimPrefix(q, "#")

	out := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if matches(b, q, id) {
			out = append(out, b)
		}
	}
	return out
}

func matches(b domain.Booking, q, id string) bool {
	for _, field := range []string{b.GuestName, b.Phone, b.Email, b.RoomNumber} {
		if field != "" && strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return id != "" && strings.Contains(strconv.FormatInt(b.ID, 10), id)
}
