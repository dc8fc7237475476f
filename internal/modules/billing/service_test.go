package billing

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"frontdesk/internal/domain"
)

type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingStore) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingStore) UpdatePayment(ctx context.Context, id int64, advance decimal.Decimal, method domain.PaymentMethod) (*domain.Booking, error) {
	args := m.Called(ctx, id, advance, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockMerger struct {
	mock.Mock
}

func (m *MockMerger) Merge(b domain.Booking) {
	m.Called(b)
}

func decimalEq(want string) any {
	return mock.MatchedBy(func(v decimal.Decimal) bool { return v.Equal(d(want)) })
}

func TestService_RecordPayment(t *testing.T) {
	store := new(MockBookingStore)
	board := new(MockMerger)

	current := bookingWith(7, "5000", "0")
	stored := bookingWith(7, "5000", "2000")
	stored.PaymentMethod = domain.PaymentCard

	store.On("GetByID", mock.Anything, int64(7)).Return(&current, nil)
	store.On("UpdatePayment", mock.Anything, int64(7), decimalEq("2000"), domain.PaymentCard).Return(&stored, nil)
	board.On("Merge", stored).Return()

	svc := NewService(store, board, "", nil)
	out, err := svc.RecordPayment(context.Background(), PaymentUpdate{
		BookingID:            7,
		NewCumulativeAdvance: d("2000"),
		Method:               domain.PaymentCard,
	})

	require.NoError(t, err)
	assert.True(t, d("3000").Equal(out.Balance))
	assert.Equal(t, domain.PaymentPartial, out.PaymentStatus)
	store.AssertExpectations(t)
	board.AssertExpectations(t)
}

func TestService_RecordPayment_OverAmountNotStored(t *testing.T) {
	store := new(MockBookingStore)
	current := bookingWith(7, "5000", "1000")
	store.On("GetByID", mock.Anything, int64(7)).Return(&current, nil)

	svc := NewService(store, nil, "", nil)
	_, err := svc.RecordPayment(context.Background(), PaymentUpdate{BookingID: 7, NewCumulativeAdvance: d("6000")})

	assert.ErrorIs(t, err, ErrInvalidPaymentAmount)
	store.AssertNotCalled(t, "UpdatePayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_RecordPayment_NotFound(t *testing.T) {
	store := new(MockBookingStore)
	store.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(store, nil, "", nil)
	_, err := svc.RecordPayment(context.Background(), PaymentUpdate{BookingID: 404, NewCumulativeAdvance: d("1")})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_RecordPayment_StoreRejection(t *testing.T) {
	store := new(MockBookingStore)
	board := new(MockMerger)
	current := bookingWith(7, "5000", "0")
	store.On("GetByID", mock.Anything, int64(7)).Return(&current, nil)
	store.On("UpdatePayment", mock.Anything, int64(7), mock.Anything, mock.Anything).Return(nil, ErrInvalidPaymentAmount)

	svc := NewService(store, board, "", nil)
	_, err := svc.RecordPayment(context.Background(), PaymentUpdate{BookingID: 7, NewCumulativeAdvance: d("100")})

	assert.ErrorIs(t, err, ErrInvalidPaymentAmount)
	board.AssertNotCalled(t, "Merge", mock.Anything)
}

func dashboardFixture() []domain.Booking {
	a := bookingWith(1, "1000", "1000")
	a.GuestName = "Asha Rao"
	a.RoomNumber = "101"
	a.CheckInDate = domain.NewDate(2026, 10, 10)

	b := bookingWith(2, "2000", "500")
	b.GuestName = "Bilal Khan"
	b.RoomNumber = "102"
	b.CheckInDate = domain.NewDate(2026, 10, 12)

	c := bookingWith(3, "3000", "0")
	c.GuestName = "Carmen Diaz"
	c.RoomNumber = "201"
	c.Phone = "+91 98450 11111"
	c.CheckInDate = domain.NewDate(2026, 10, 14)
	return []domain.Booking{a, b, c}
}

func TestService_Dashboard_TotalsIgnoreFilters(t *testing.T) {
	store := new(MockBookingStore)
	store.On("ListBookings", mock.Anything).Return(dashboardFixture(), nil)
	svc := NewService(store, nil, "", nil)

	all, err := svc.Dashboard(context.Background(), DashboardQuery{})
	require.NoError(t, err)
	require.Len(t, all.Rows, 3)
	assert.Equal(t, int64(3), all.Rows[0].ID, "newest check-in first")

	filtered, err := svc.Dashboard(context.Background(), DashboardQuery{Query: "bilal"})
	require.NoError(t, err)
	require.Len(t, filtered.Rows, 1)
	assert.Equal(t, int64(2), filtered.Rows[0].ID)
	assert.True(t, all.Summary.TotalRevenue.Equal(filtered.Summary.TotalRevenue))
	assert.True(t, all.Summary.TotalOutstanding.Equal(filtered.Summary.TotalOutstanding))
	assert.Equal(t, 3, filtered.Summary.Bookings)

	pending, err := svc.Dashboard(context.Background(), DashboardQuery{Status: domain.PaymentPending})
	require.NoError(t, err)
	require.Len(t, pending.Rows, 1)
	assert.Equal(t, int64(3), pending.Rows[0].ID)
	assert.True(t, d("6000").Equal(pending.Summary.TotalRevenue))
}

func TestService_Dashboard_StoreError(t *testing.T) {
	store := new(MockBookingStore)
	store.On("ListBookings", mock.Anything).Return(nil, errors.New("db down"))

	_, err := NewService(store, nil, "", nil).Dashboard(context.Background(), DashboardQuery{})
	assert.Error(t, err)
}

func TestService_Folio(t *testing.T) {
	store := new(MockBookingStore)
	b := dashboardFixture()[1]
	b.CheckOutDate = b.CheckInDate.AddDays(2)
	store.On("GetByID", mock.Anything, int64(2)).Return(&b, nil)

	pdf, name, err := NewService(store, nil, "Lakeview Inn", nil).Folio(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Equal(t, "FOLIO_2_Bilal_Khan.pdf", name)
}
