package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/internal/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func bookingWith(id int64, amount, advance string) domain.Booking {
	return Settle(domain.Booking{
		ID:        id,
		GuestName: "Guest",
		Status:    domain.BookingConfirmed,
		Amount:    d(amount),
		Advance:   d(advance),
	})
}

func TestDerivePaymentStatus(t *testing.T) {
	cases := []struct {
		advance string
		want    domain.PaymentStatus
	}{
		{"0", domain.PaymentPending},
		{"500", domain.PaymentPartial},
		{"999.99", domain.PaymentPartial},
		{"1000", domain.PaymentPaid},
		{"1200", domain.PaymentPaid},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DerivePaymentStatus(d("1000"), d(tc.advance)), "advance %s", tc.advance)
	}
}

func TestDerivePaymentStatus_ZeroAmount(t *testing.T) {
	assert.Equal(t, domain.PaymentPending, DerivePaymentStatus(decimal.Zero, decimal.Zero))
	assert.Equal(t, domain.PaymentPaid, DerivePaymentStatus(decimal.Zero, d("1")))
}

func TestApplyPayment_Sequence(t *testing.T) {
	b := bookingWith(1, "5000", "0")
	require.Equal(t, domain.PaymentPending, b.PaymentStatus)

	b, err := ApplyPayment(b, PaymentUpdate{BookingID: 1, NewCumulativeAdvance: d("2000"), Method: domain.PaymentCash})
	require.NoError(t, err)
	assert.True(t, d("3000").Equal(b.Balance))
	assert.Equal(t, domain.PaymentPartial, b.PaymentStatus)
	assert.Equal(t, domain.PaymentCash, b.PaymentMethod)

	b, err = ApplyPayment(b, PaymentUpdate{BookingID: 1, NewCumulativeAdvance: d("5000"), Method: domain.PaymentUPI})
	require.NoError(t, err)
	assert.True(t, b.Balance.IsZero())
	assert.Equal(t, domain.PaymentPaid, b.PaymentStatus)
	assert.Equal(t, domain.PaymentUPI, b.PaymentMethod)
}

func TestApplyPayment_ReplacesRatherThanAdds(t *testing.T) {
	b := bookingWith(1, "5000", "3000")

	out, err := ApplyPayment(b, PaymentUpdate{NewCumulativeAdvance: d("1000")})
	require.NoError(t, err)
	assert.True(t, d("1000").Equal(out.Advance))
	assert.True(t, d("4000").Equal(out.Balance))
}

func TestApplyPayment_Idempotent(t *testing.T) {
	u := PaymentUpdate{NewCumulativeAdvance: d("1500"), Method: domain.PaymentCard}
	once, err := ApplyPayment(bookingWith(1, "4000", "0"), u)
	require.NoError(t, err)
	twice, err := ApplyPayment(once, u)
	require.NoError(t, err)

	assert.True(t, once.Advance.Equal(twice.Advance))
	assert.True(t, once.Balance.Equal(twice.Balance))
	assert.Equal(t, once.PaymentStatus, twice.PaymentStatus)
}

func TestApplyPayment_RejectsOutOfRange(t *testing.T) {
	b := bookingWith(1, "1000", "400")

	for _, v := range []string{"-1", "1001"} {
		out, err := ApplyPayment(b, PaymentUpdate{NewCumulativeAdvance: d(v)})
		assert.ErrorIs(t, err, ErrInvalidPaymentAmount, "advance %s", v)
		assert.Equal(t, b, out, "booking must be unchanged for %s", v)
	}
}

func TestApplyPayment_BoundariesAccepted(t *testing.T) {
	b := bookingWith(1, "1000", "400")

	out, err := ApplyPayment(b, PaymentUpdate{NewCumulativeAdvance: decimal.Zero})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, out.PaymentStatus)

	out, err = ApplyPayment(b, PaymentUpdate{NewCumulativeAdvance: d("1000")})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, out.PaymentStatus)
	assert.True(t, out.Balance.IsZero())
}

func TestApplyPayment_RejectsUnknownMethod(t *testing.T) {
	b := bookingWith(1, "1000", "0")
	_, err := ApplyPayment(b, PaymentUpdate{NewCumulativeAdvance: d("10"), Method: "Barter"})
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestSettle_KeepsBalanceInvariant(t *testing.T) {
	for _, adv := range []string{"0", "1", "2499.5", "2500"} {
		b := Settle(domain.Booking{Amount: d("2500"), Advance: d(adv), Balance: d("999999"), PaymentStatus: domain.PaymentPaid})
		assert.True(t, b.Amount.Equal(b.Advance.Add(b.Balance)), "advance %s", adv)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]domain.Booking{
		bookingWith(1, "1000", "1000"),
		bookingWith(2, "2000", "500"),
		bookingWith(3, "3000", "0"),
		// stale derived fields are ignored
		{ID: 4, Amount: d("500"), Advance: d("100"), Balance: d("0"), PaymentStatus: domain.PaymentPaid},
	})

	assert.True(t, d("6500").Equal(s.TotalRevenue))
	assert.True(t, d("1600").Equal(s.TotalCollected))
	assert.True(t, d("4900").Equal(s.TotalOutstanding))
	assert.Equal(t, 1, s.PaidCount)
	assert.Equal(t, 2, s.PartialCount)
	assert.Equal(t, 1, s.PendingCount)
	assert.Equal(t, 4, s.Bookings)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.True(t, s.TotalRevenue.IsZero())
	assert.Zero(t, s.Bookings)
}
