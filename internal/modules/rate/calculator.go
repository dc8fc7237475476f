package rate

import (
	"github.com/shopspring/decimal"

	"frontdesk/internal/domain"
)

// PriceBreakdown is the live "final price" preview of a rate configuration.
type PriceBreakdown struct {
	BaseRate           decimal.Decimal `json:"base_rate"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	PriceAfterDiscount decimal.Decimal `json:"price_after_discount"`
	AddOnCharge        decimal.Decimal `json:"add_on_charge"`
	TaxAmount          decimal.Decimal `json:"tax_amount"`
	Unrounded          decimal.Decimal `json:"unrounded"`
	FinalRate          decimal.Decimal `json:"final_rate"`
	ExtraChargesActive bool            `json:"extra_charges_active"`
}

// ComputeFinalRate derives the payable rate. With extra charges disabled the
// base rate is returned as is; otherwise discount comes off first, tax is
// charged on the discounted price, the add-on is added untaxed and the sum is
// rounded half-up to a whole currency unit. The result is never negative.
func ComputeFinalRate(cfg Configuration) decimal.Decimal {
	return Breakdown(cfg).FinalRate
}

func Breakdown(cfg Configuration) PriceBreakdown {
	cfg = cfg.normalized()

	if !cfg.ExtraChargesEnabled {
		return PriceBreakdown{
			BaseRate:           cfg.BaseRate,
			DiscountAmount:     decimal.Zero,
			PriceAfterDiscount: cfg.BaseRate,
			AddOnCharge:        decimal.Zero,
			TaxAmount:          decimal.Zero,
			Unrounded:          cfg.BaseRate,
			FinalRate:          cfg.BaseRate,
		}
	}

	discountAmount := cfg.BaseRate.Mul(cfg.DiscountPercent).Div(hundred)
	afterDiscount := cfg.BaseRate.Sub(discountAmount)
	taxAmount := afterDiscount.Mul(cfg.TaxPercent).Div(hundred)
	total := afterDiscount.Add(cfg.AddOnCharge).Add(taxAmount)

	// Round is half away from zero, i.e. half-up for the non-negative totals here.
	final := total.Round(0)
	if !final.IsPositive() {
		final = decimal.Zero
	}

	return PriceBreakdown{
		BaseRate:           cfg.BaseRate,
		DiscountAmount:     discountAmount,
		PriceAfterDiscount: afterDiscount,
		AddOnCharge:        cfg.AddOnCharge,
		TaxAmount:          taxAmount,
		Unrounded:          total,
		FinalRate:          final,
		ExtraChargesActive: true,
	}
}

// StayAmount is what a new booking is charged: the final rate per night for
// rooms (at least one night), once for venues.
func StayAmount(finalRate decimal.Decimal, kind domain.RoomKind, checkIn, checkOut domain.Date) decimal.Decimal {
	if kind == domain.RoomKindVenue {
		return finalRate
	}
	nights := checkIn.DaysUntil(checkOut)
	if nights < 1 {
		nights = 1
	}
	return finalRate.Mul(decimal.NewFromInt(int64(nights)))
}

// ConfigurationOf rebuilds the rate configuration stored on a room.
func ConfigurationOf(r domain.Room) Configuration {
	return Configuration{
		BaseRate:            r.BaseRate,
		DiscountPercent:     r.DiscountPercent,
		AddOnCharge:         r.AddOnCharge,
		TaxPercent:          r.TaxPercent,
		ExtraChargesEnabled: r.ExtraChargesEnabled,
	}.normalized()
}
