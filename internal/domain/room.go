package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomKind decides how FinalRate turns into a stay amount.
type RoomKind string

const (
	RoomKindRoom  RoomKind = "room"  // charged per night
	RoomKindVenue RoomKind = "venue" // charged once per booking
)

func (k RoomKind) Valid() bool {
	return k == RoomKindRoom || k == RoomKindVenue
}

type Room struct {
	ID                  int64           `json:"id"`
	Number              string          `json:"number"`
	Name                string          `json:"name"`
	Kind                RoomKind        `json:"kind"`
	RoomType            string          `json:"room_type,omitempty"`
	BaseRate            decimal.Decimal `json:"base_rate"`
	DiscountPercent     decimal.Decimal `json:"discount_percent"`
	AddOnCharge         decimal.Decimal `json:"add_on_charge"`
	TaxPercent          decimal.Decimal `json:"tax_percent"`
	ExtraChargesEnabled bool            `json:"extra_charges_enabled"`
	FinalRate           decimal.Decimal `json:"final_rate"`
	IsActive            bool            `json:"is_active"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}
