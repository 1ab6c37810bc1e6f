package pricing

import (
	"github.com/shopspring/decimal"

	"cartcalc/internal/money"
)

// DeliveryTier charges a flat amount for net totals within [Min, Max).
// A nil Max means no upper bound.
type DeliveryTier struct {
	Min    decimal.Decimal
	Max    *decimal.Decimal
	Charge decimal.Decimal
}

func (t DeliveryTier) matches(net decimal.Decimal) bool {
	if net.LessThan(t.Min) {
		return false
	}
	if t.Max != nil && !net.LessThan(*t.Max) {
		return false
	}
	return true
}

// DeliveryTable is an ordered list of tiers resolved first-match. Order is
// significant: it encodes tie-break priority, and the canonical table lists
// the highest threshold first.
type DeliveryTable struct {
	tiers []DeliveryTier
}

// NewDeliveryTable builds a table preserving the caller's tier order.
func NewDeliveryTable(tiers ...DeliveryTier) DeliveryTable {
	cp := make([]DeliveryTier, len(tiers))
	copy(cp, tiers)
	return DeliveryTable{tiers: cp}
}

// ChargeFor resolves the delivery charge for the discounted net amount.
// Lower bounds are inclusive and upper bounds exclusive, so a net landing
// exactly on a boundary belongs to the higher tier. An unmatched amount
// charges zero.
func (dt DeliveryTable) ChargeFor(net decimal.Decimal) decimal.Decimal {
	for _, t := range dt.tiers {
		if t.matches(net) {
			return t.Charge
		}
	}
	return decimal.Zero
}

// DefaultDeliveryTable returns the standard three-tier table: free from 90,
// 2.95 from 50, 4.95 below that.
func DefaultDeliveryTable() DeliveryTable {
	ninety := decimal.NewFromInt(90)
	fifty := decimal.NewFromInt(50)
	return NewDeliveryTable(
		DeliveryTier{Min: ninety, Charge: decimal.Zero},
		DeliveryTier{Min: fifty, Max: &ninety, Charge: money.MustParse("2.95")},
		DeliveryTier{Min: decimal.Zero, Max: &fifty, Charge: money.MustParse("4.95")},
	)
}
