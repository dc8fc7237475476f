package billing

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"frontdesk/internal/domain"
	"frontdesk/internal/modules/frontdesk"
)

type Service struct {
	store     BookingStore
	board     Merger
	hotelName string
	log       *zap.Logger
}

// NewService builds the ledger service. board may be nil.
func NewService(store BookingStore, board Merger, hotelName string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if hotelName == "" {
		hotelName = "Front Desk"
	}
	return &Service{store: store, board: board, hotelName: hotelName, log: log}
}

// RecordPayment replaces the cumulative advance of a booking and returns the
// stored record with balance and payment status re-derived.
func (s *Service) RecordPayment(ctx context.Context, u PaymentUpdate) (*domain.Booking, error) {
	current, err := s.getBooking(ctx, u.BookingID)
	if err != nil {
		return nil, err
	}

	next, err := ApplyPayment(*current, u)
	if err != nil {
		s.log.Info("payment rejected",
			zap.Int64("booking_id", u.BookingID),
			zap.String("advance", u.NewCumulativeAdvance.String()),
			zap.Error(err),
		)
		return nil, err
	}

	stored, err := s.store.UpdatePayment(ctx, next.ID, next.Advance, next.PaymentMethod)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if s.board != nil {
		s.board.Merge(*stored)
	}

	s.log.Info("payment recorded",
		zap.Int64("booking_id", stored.ID),
		zap.String("advance", stored.Advance.String()),
		zap.String("balance", stored.Balance.String()),
		zap.String("payment_status", string(stored.PaymentStatus)),
	)
	return stored, nil
}

// Dashboard returns totals over every booking and the rows matching q.
// Filters narrow the rows only; the totals always cover the whole ledger.
func (s *Service) Dashboard(ctx context.Context, q DashboardQuery) (*Dashboard, error) {
	bookings, err := s.store.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	settled := make([]domain.Booking, len(bookings))
	for i, b := range bookings {
		settled[i] = Settle(b)
	}

	rows := frontdesk.Search(settled, q.Query)
	if q.Status != "" {
		filtered := rows[:0:0]
		for _, b := range rows {
			if b.PaymentStatus == q.Status {
				filtered = append(filtered, b)
			}
		}
		rows = filtered
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CheckInDate.After(rows[j].CheckInDate)
	})

	return &Dashboard{Summary: Summarize(settled), Rows: rows}, nil
}

// Folio renders a PDF statement for one booking.
func (s *Service) Folio(ctx context.Context, bookingID int64) ([]byte, string, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	return buildFolioPDF(s.hotelName, Settle(*b))
}

func (s *Service) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}
