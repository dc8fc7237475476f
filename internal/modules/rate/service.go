package rate

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"frontdesk/internal/domain"
)

type Service struct {
	rooms RoomRepository
	log   *zap.Logger
}

func NewService(rooms RoomRepository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{rooms: rooms, log: log}
}

// Preview recomputes the final price for a form that may be half filled.
func (s *Service) Preview(in RateInput) PriceBreakdown {
	return Breakdown(NewConfiguration(in))
}

func (s *Service) CreateRoom(ctx context.Context, req RoomRequest) (*RoomResponse, error) {
	room := domain.Room{IsActive: true}
	if err := applyRequest(&room, req); err != nil {
		return nil, err
	}
	breakdown := priceRoom(&room, req.RateInput)

	if err := s.rooms.Create(ctx, &room); err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrRoomNumberTaken
		}
		return nil, err
	}

	s.log.Info("room created",
		zap.Int64("room_id", room.ID),
		zap.String("number", room.Number),
		zap.String("final_rate", room.FinalRate.String()),
	)
	return &RoomResponse{Room: room, Breakdown: breakdown}, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req RoomRequest) (*RoomResponse, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyRequest(room, req); err != nil {
		return nil, err
	}
	breakdown := priceRoom(room, req.RateInput)

	if err := s.rooms.Update(ctx, room); err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrRoomNumberTaken
		}
		return nil, err
	}

	s.log.Info("room rate updated",
		zap.Int64("room_id", room.ID),
		zap.String("final_rate", room.FinalRate.String()),
	)
	return &RoomResponse{Room: *room, Breakdown: breakdown}, nil
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) ListRooms(ctx context.Context, activeOnly bool) ([]domain.Room, error) {
	return s.rooms.List(ctx, activeOnly)
}

func applyRequest(room *domain.Room, req RoomRequest) error {
	number := strings.TrimSpace(req.Number)
	name := strings.TrimSpace(req.Name)
	if number == "" || name == "" {
		return ErrValidation
	}

	kind := req.Kind
	if kind == "" {
		kind = domain.RoomKindRoom
	}
	if !kind.Valid() {
		return ErrValidation
	}

	room.Number = number
	room.Name = name
	room.Kind = kind
	room.RoomType = strings.TrimSpace(req.RoomType)
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}
	return nil
}

// priceRoom stores the coerced raw fields and the computed final rate side by side.
func priceRoom(room *domain.Room, in RateInput) PriceBreakdown {
	cfg := NewConfiguration(in)
	b := Breakdown(cfg)

	room.BaseRate = cfg.BaseRate
	room.DiscountPercent = cfg.DiscountPercent
	room.AddOnCharge = cfg.AddOnCharge
	room.TaxPercent = cfg.TaxPercent
	room.ExtraChargesEnabled = cfg.ExtraChargesEnabled
	room.FinalRate = b.FinalRate
	return b
}

func isUniqueConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique failed")
}
