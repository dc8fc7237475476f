package rate

import "frontdesk/internal/domain"

type RoomRequest struct {
	Number   string          `json:"number" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	Kind     domain.RoomKind `json:"kind" validate:"omitempty,room_kind"`
	RoomType string          `json:"room_type"`
	IsActive *bool           `json:"is_active"`
	RateInput
}

type RoomResponse struct {
	Room      domain.Room    `json:"room"`
	Breakdown PriceBreakdown `json:"breakdown"`
}
