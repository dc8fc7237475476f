package frontdesk

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"frontdesk/internal/domain"
	"frontdesk/internal/modules/lifecycle"
)

type Service struct {
	store BookingStore
	board *Board
	today func() domain.Date
	log   *zap.Logger
}

func NewService(store BookingStore, board *Board, today func() domain.Date, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, board: board, today: today, log: log}
}

func (s *Service) CheckIn(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.transition(ctx, id, lifecycle.ActionCheckIn)
}

func (s *Service) CheckOut(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.transition(ctx, id, lifecycle.ActionCheckOut)
}

func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.transition(ctx, id, lifecycle.ActionCancel)
}

func (s *Service) Confirm(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.transition(ctx, id, lifecycle.ActionConfirm)
}

// transition validates the action against the stored record, persists the
// new status and merges the confirmed record into the board. Nothing is
// merged when either step fails.
func (s *Service) transition(ctx context.Context, id int64, action lifecycle.Action) (*domain.Booking, error) {
	current, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := lifecycle.Apply(*current, action, s.today())
	if err != nil {
		s.log.Info("transition rejected",
			zap.Int64("booking_id", id),
			zap.String("action", string(action)),
			zap.String("status", string(current.Status)),
			zap.Error(err),
		)
		return nil, err
	}

	stored, err := s.store.UpdateStatus(ctx, id, current.Status, next.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		if errors.Is(err, lifecycle.ErrInvalidTransition) {
			s.log.Info("transition lost to a concurrent change",
				zap.Int64("booking_id", id),
				zap.String("action", string(action)),
				zap.Error(err),
			)
			return nil, err
		}
		s.log.Error("persist status failed", zap.Int64("booking_id", id), zap.Error(err))
		return nil, err
	}

	if s.board != nil {
		s.board.Merge(*stored)
	}

	s.log.Info("booking status changed",
		zap.Int64("booking_id", id),
		zap.String("from", string(current.Status)),
		zap.String("to", string(stored.Status)),
	)
	return stored, nil
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*BookingView, error) {
	b, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	return &BookingView{Booking: *b, AllowedActions: lifecycle.AllowedActions(*b, s.today())}, nil
}

func (s *Service) ListBookings(ctx context.Context, q string) ([]domain.Booking, error) {
	bookings, err := s.store.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	return Search(bookings, q), nil
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
