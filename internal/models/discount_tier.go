package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrUnknownTier = errors.New("unknown discount tier")

// DiscountTier is a named discount rate applied uniformly to a quote's
// subtotal. Selecting a tier never mutates stored prices.
type DiscountTier struct {
	Label string          `json:"label"`
	Rate  decimal.Decimal `json:"rate"`
}

// The laboratory's fixed tariff list. Rates are in [0,1).
var discountTiers = []DiscountTier{
	{Label: "Público General", Rate: decimal.Zero},
	{Label: "INAPAM (10%)", Rate: decimal.NewFromFloat(0.10)},
	{Label: "Convenio (15%)", Rate: decimal.NewFromFloat(0.15)},
	{Label: "Promo (20%)", Rate: decimal.NewFromFloat(0.20)},
	{Label: "Médico (25%)", Rate: decimal.NewFromFloat(0.25)},
}

// DefaultTier is the zero-rate tier applied when none is selected.
func DefaultTier() DiscountTier {
	return discountTiers[0]
}

// AllTiers returns the fixed tier list in display order.
func AllTiers() []DiscountTier {
	out := make([]DiscountTier, len(discountTiers))
	copy(out, discountTiers)
	return out
}

// TierByLabel resolves a tier by its exact label.
func TierByLabel(label string) (DiscountTier, error) {
	for _, t := range discountTiers {
		if t.Label == label {
			return t, nil
		}
	}
	return DiscountTier{}, ErrUnknownTier
}

// IsValidTier checks whether label names a known tier.
func IsValidTier(label string) bool {
	_, err := TierByLabel(label)
	return err == nil
}
