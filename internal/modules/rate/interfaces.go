package rate

import (
	"context"

	"frontdesk/internal/domain"
)

// RoomRepository persists rooms and venues together with their rate fields.
type RoomRepository interface {
	Create(ctx context.Context, r *domain.Room) error
	Update(ctx context.Context, r *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Room, error)
}
