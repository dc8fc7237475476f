package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"frontdesk/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID                  int64           `gorm:"column:id;primaryKey"`
	Number              string          `gorm:"column:number;size:32;not null;uniqueIndex"`
	Name                string          `gorm:"column:name;size:255;not null"`
	Kind                string          `gorm:"column:kind;size:16;not null"`
	RoomType            string          `gorm:"column:room_type;size:64"`
	BaseRate            decimal.Decimal `gorm:"column:base_rate;type:numeric(12,2);not null"`
	DiscountPercent     decimal.Decimal `gorm:"column:discount_percent;type:numeric(5,2);not null"`
	AddOnCharge         decimal.Decimal `gorm:"column:add_on_charge;type:numeric(12,2);not null"`
	TaxPercent          decimal.Decimal `gorm:"column:tax_percent;type:numeric(5,2);not null"`
	ExtraChargesEnabled bool            `gorm:"column:extra_charges_enabled;not null"`
	FinalRate           decimal.Decimal `gorm:"column:final_rate;type:numeric(12,2);not null"`
	IsActive            bool            `gorm:"column:is_active;not null"`
	CreatedAt           time.Time       `gorm:"column:created_at"`
	UpdatedAt           time.Time       `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:                  m.ID,
		Number:              m.Number,
		Name:                m.Name,
		Kind:                domain.RoomKind(m.Kind),
		RoomType:            m.RoomType,
		BaseRate:            m.BaseRate,
		DiscountPercent:     m.DiscountPercent,
		AddOnCharge:         m.AddOnCharge,
		TaxPercent:          m.TaxPercent,
		ExtraChargesEnabled: m.ExtraChargesEnabled,
		FinalRate:           m.FinalRate,
		IsActive:            m.IsActive,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	return roomModel{
		ID:                  r.ID,
		Number:              r.Number,
		Name:                r.Name,
		Kind:                string(r.Kind),
		RoomType:            r.RoomType,
		BaseRate:            r.BaseRate,
		DiscountPercent:     r.DiscountPercent,
		AddOnCharge:         r.AddOnCharge,
		TaxPercent:          r.TaxPercent,
		ExtraChargesEnabled: r.ExtraChargesEnabled,
		FinalRate:           r.FinalRate,
		IsActive:            r.IsActive,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return mapDuplicateError(err)
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	m.UpdatedAt = time.Now().UTC()
	// Select("*") writes zero values such as a cleared discount or is_active=false
	tx := r.db.WithContext(ctx).Model(&roomModel{ID: room.ID}).Select("*").Omit("id", "created_at").Updates(&m)
	if tx.Error != nil {
		return mapDuplicateError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	room.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	var m roomModel
	if err := r.db.WithContext(ctx).Where("number = ?", number).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) List(ctx context.Context, activeOnly bool) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Model(&roomModel{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var models []roomModel
	if err := q.Order("number ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Room, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

// mapDuplicateError turns a unique violation on rooms.number into gorm.ErrDuplicatedKey.
func mapDuplicateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return gorm.ErrDuplicatedKey
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return gorm.ErrDuplicatedKey
	}
	return err
}
