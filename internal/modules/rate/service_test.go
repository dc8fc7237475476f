package rate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"frontdesk/internal/domain"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, r *domain.Room) error {
	args := m.Called(ctx, r)
	if r != nil {
		r.ID = 77 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRoomRepository) Update(ctx context.Context, r *domain.Room) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) List(ctx context.Context, activeOnly bool) ([]domain.Room, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func TestService_CreateRoom_StoresRawFieldsAndFinalRate(t *testing.T) {
	repo := new(MockRoomRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Room")).Return(nil)

	svc := NewService(repo, nil)
	out, err := svc.CreateRoom(context.Background(), RoomRequest{
		Number: " 204 ",
		Name:   "Deluxe King",
		RateInput: RateInput{
			BaseRate:            "2000",
			DiscountPercent:     "10",
			AddOnCharge:         "500",
			TaxPercent:          "18",
			ExtraChargesEnabled: true,
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(77), out.Room.ID)
	assert.Equal(t, "204", out.Room.Number)
	assert.Equal(t, domain.RoomKindRoom, out.Room.Kind)
	assert.True(t, out.Room.IsActive)
	assert.True(t, d("2000").Equal(out.Room.BaseRate))
	assert.True(t, d("18").Equal(out.Room.TaxPercent))
	assert.True(t, d("2624").Equal(out.Room.FinalRate))
	repo.AssertExpectations(t)
}

func TestService_CreateRoom_Validation(t *testing.T) {
	repo := new(MockRoomRepository)
	svc := NewService(repo, nil)

	_, err := svc.CreateRoom(context.Background(), RoomRequest{Number: "101", Name: "  "})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateRoom(context.Background(), RoomRequest{Number: "101", Name: "Hall", Kind: "ballroom"})
	assert.ErrorIs(t, err, ErrValidation)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateRoom_DuplicateNumber(t *testing.T) {
	repo := new(MockRoomRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	svc := NewService(repo, nil)
	_, err := svc.CreateRoom(context.Background(), RoomRequest{Number: "101", Name: "Standard"})
	assert.ErrorIs(t, err, ErrRoomNumberTaken)
}

func TestService_UpdateRoom_RecomputesFinalRate(t *testing.T) {
	repo := new(MockRoomRepository)
	existing := &domain.Room{
		ID:        5,
		Number:    "301",
		Name:      "Garden Suite",
		Kind:      domain.RoomKindRoom,
		BaseRate:  d("4000"),
		FinalRate: d("4000"),
		IsActive:  true,
	}
	repo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	inactive := false
	svc := NewService(repo, nil)
	out, err := svc.UpdateRoom(context.Background(), 5, RoomRequest{
		Number:   "301",
		Name:     "Garden Suite",
		IsActive: &inactive,
		RateInput: RateInput{
			BaseRate:            "4000",
			DiscountPercent:     "25",
			TaxPercent:          "12",
			ExtraChargesEnabled: true,
		},
	})

	assert.NoError(t, err)
	// 4000 - 25% = 3000; + 12% tax = 3360
	assert.True(t, d("3360").Equal(out.Room.FinalRate))
	assert.False(t, out.Room.IsActive)
	repo.AssertExpectations(t)
}

func TestService_UpdateRoom_NotFound(t *testing.T) {
	repo := new(MockRoomRepository)
	repo.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo, nil)
	_, err := svc.UpdateRoom(context.Background(), 9, RoomRequest{Number: "1", Name: "x"})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_Preview(t *testing.T) {
	svc := NewService(new(MockRoomRepository), nil)

	b := svc.Preview(RateInput{BaseRate: "1000", TaxPercent: "oops", AddOnCharge: "250", ExtraChargesEnabled: true})
	assert.True(t, d("1250").Equal(b.FinalRate))

	b = svc.Preview(RateInput{BaseRate: "1000", AddOnCharge: "250"})
	assert.True(t, d("1000").Equal(b.FinalRate))
	assert.False(t, b.ExtraChargesActive)
}
