package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"frontdesk/internal/domain"
	"frontdesk/internal/modules/billing"
	"frontdesk/internal/modules/lifecycle"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// bookingModel stores amount and advance only; balance and payment status
// are derived on read.
type bookingModel struct {
	ID            int64           `gorm:"column:id;primaryKey"`
	RoomID        int64           `gorm:"column:room_id;not null;index"`
	Room          *roomModel      `gorm:"foreignKey:RoomID"`
	GuestName     string          `gorm:"column:guest_name;size:255;not null"`
	Phone         string          `gorm:"column:phone;size:32"`
	Email         string          `gorm:"column:email;size:255"`
	CheckInDate   domain.Date     `gorm:"column:check_in_date;type:date;not null;index"`
	CheckOutDate  domain.Date     `gorm:"column:check_out_date;type:date;not null;index"`
	Status        string          `gorm:"column:status;size:16;not null;index"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null;check:chk_bookings_amount,amount >= 0"`
	Advance       decimal.Decimal `gorm:"column:advance;type:numeric(12,2);not null;check:chk_bookings_advance,advance >= 0 AND advance <= amount"`
	PaymentMethod string          `gorm:"column:payment_method;size:32"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

// Migrate creates or updates the rooms and bookings tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&roomModel{}, &bookingModel{})
}

func toDomainBooking(m bookingModel) *domain.Booking {
	b := domain.Booking{
		ID:            m.ID,
		RoomID:        m.RoomID,
		GuestName:     m.GuestName,
		Phone:         m.Phone,
		Email:         m.Email,
		CheckInDate:   m.CheckInDate,
		CheckOutDate:  m.CheckOutDate,
		Status:        domain.BookingStatus(m.Status),
		Amount:        m.Amount,
		Advance:       m.Advance,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Room != nil {
		b.RoomNumber = m.Room.Number
	}
	b = billing.Settle(b)
	return &b
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:            b.ID,
		RoomID:        b.RoomID,
		GuestName:     b.GuestName,
		Phone:         b.Phone,
		Email:         b.Email,
		CheckInDate:   b.CheckInDate,
		CheckOutDate:  b.CheckOutDate,
		Status:        string(b.Status),
		Amount:        b.Amount,
		Advance:       b.Advance,
		PaymentMethod: string(b.PaymentMethod),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.Status == "" {
		b.Status = domain.BookingPending
	}
	m := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return mapConstraintError(err)
	}
	stored, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return err
	}
	*b = *stored
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).Preload("Room").First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

// ListBookings returns the full collection, newest arrival first.
func (r *BookingRepository) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var models []bookingModel
	err := r.db.WithContext(ctx).
		Preload("Room").
		Order("check_in_date DESC").
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// UpdateStatus moves a booking from one status to another. The write only
// lands while the row still holds from; a booking changed by another request
// in the meantime yields lifecycle.ErrInvalidTransition.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (*domain.Booking, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("update status: %w", domain.ErrInvalidStatus)
	}

	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": time.Now().UTC(),
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: booking %d is %s, expected %s", lifecycle.ErrInvalidTransition, id, current.Status, from)
	}
	return r.GetByID(ctx, id)
}

// UpdatePayment stores a new cumulative advance. The row is locked and the
// cap re-checked so concurrent writers cannot push advance past amount.
func (r *BookingRepository) UpdatePayment(ctx context.Context, id int64, advance decimal.Decimal, method domain.PaymentMethod) (*domain.Booking, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m bookingModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id).Error; err != nil {
			return err
		}
		if advance.IsNegative() || advance.GreaterThan(m.Amount) {
			return fmt.Errorf("%w: %s is outside [0, %s]", billing.ErrInvalidPaymentAmount, advance, m.Amount)
		}

		updates := map[string]any{
			"advance":    advance,
			"updated_at": time.Now().UTC(),
		}
		if method != "" {
			updates["payment_method"] = string(method)
		}
		if err := tx.Model(&bookingModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return mapConstraintError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// mapConstraintError turns a check violation on amount/advance into the
// ledger's payment error.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23514" {
		return fmt.Errorf("%w: %s", billing.ErrInvalidPaymentAmount, pgErr.ConstraintName)
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) || strings.Contains(strings.ToLower(err.Error()), "check constraint failed") {
		return fmt.Errorf("%w: %v", billing.ErrInvalidPaymentAmount, err)
	}
	return err
}
