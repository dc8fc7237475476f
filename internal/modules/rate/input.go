package rate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Field is a raw numeric form value. It accepts JSON numbers, strings and
// null, and never fails to decode: whatever arrives is coerced later.
type Field string

func (f *Field) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = ""
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		*f = Field(unq)
		return nil
	}
	*f = Field(s)
	return nil
}

// RateInput is the rate section of a room or venue form as typed by staff.
type RateInput struct {
	BaseRate            Field `json:"base_rate"`
	DiscountPercent     Field `json:"discount_percent"`
	AddOnCharge         Field `json:"add_on_charge"`
	TaxPercent          Field `json:"tax_percent"`
	ExtraChargesEnabled bool  `json:"extra_charges_enabled"`
}

// ParseAmount parses one numeric field. Blank input is zero without error;
// anything unparseable is zero with ErrCalculationInputInvalid.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrCalculationInputInvalid, s)
	}
	return d, nil
}

// coerce never fails; live preview must keep working on partial input.
func coerce(f Field) decimal.Decimal {
	d, err := ParseAmount(string(f))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Configuration is the validated rate of one room-edit session.
type Configuration struct {
	BaseRate            decimal.Decimal
	DiscountPercent     decimal.Decimal
	AddOnCharge         decimal.Decimal
	TaxPercent          decimal.Decimal
	ExtraChargesEnabled bool
}

// NewConfiguration coerces raw input: blank or invalid numbers become zero,
// negatives become zero and percentages are clamped to [0,100].
func NewConfiguration(in RateInput) Configuration {
	return Configuration{
		BaseRate:            coerce(in.BaseRate),
		DiscountPercent:     coerce(in.DiscountPercent),
		AddOnCharge:         coerce(in.AddOnCharge),
		TaxPercent:          coerce(in.TaxPercent),
		ExtraChargesEnabled: in.ExtraChargesEnabled,
	}.normalized()
}

func (c Configuration) normalized() Configuration {
	c.BaseRate = nonNegative(c.BaseRate)
	c.AddOnCharge = nonNegative(c.AddOnCharge)
	c.DiscountPercent = percent(c.DiscountPercent)
	c.TaxPercent = percent(c.TaxPercent)
	return c
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func percent(d decimal.Decimal) decimal.Decimal {
	switch {
	case d.IsNegative():
		return decimal.Zero
	case d.GreaterThan(hundred):
		return hundred
	default:
		return d
	}
}
