package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestChargeForBoundaries(t *testing.T) {
	table := DefaultDeliveryTable()
	cases := []struct {
		net    string
		charge string
	}{
		{"0", "4.95"},
		{"32.90", "4.95"},
		{"49.425", "4.95"},
		{"49.99", "4.95"},
		{"50", "2.95"},
		{"50.00", "2.95"},
		{"57.90", "2.95"},
		{"89.99", "2.95"},
		{"89.999", "2.95"},
		{"90", "0"},
		{"90.00", "0"},
		{"98.275", "0"},
		{"250", "0"},
	}
	for _, tc := range cases {
		got := table.ChargeFor(decimal.RequireFromString(tc.net))
		if !got.Equal(decimal.RequireFromString(tc.charge)) {
			t.Fatalf("net %s: expected charge %s, got %s", tc.net, tc.charge, got)
		}
	}
}

func TestChargeForIsMonotonicNonIncreasing(t *testing.T) {
	table := DefaultDeliveryTable()
	prev := table.ChargeFor(decimal.Zero)
	for net := int64(1); net <= 120; net++ {
		charge := table.ChargeFor(decimal.NewFromInt(net))
		if charge.GreaterThan(prev) {
			t.Fatalf("charge rose from %s to %s at net %d", prev, charge, net)
		}
		prev = charge
	}
}

func TestChargeForEmptyTable(t *testing.T) {
	table := NewDeliveryTable()
	if got := table.ChargeFor(decimal.NewFromInt(10)); !got.IsZero() {
		t.Fatalf("expected zero charge, got %s", got)
	}
}

func TestTableOrderEncodesPriority(t *testing.T) {
	// Two overlapping tiers: first match must win.
	ten := decimal.NewFromInt(10)
	table := NewDeliveryTable(
		DeliveryTier{Min: decimal.Zero, Charge: decimal.NewFromInt(1)},
		DeliveryTier{Min: decimal.Zero, Max: &ten, Charge: decimal.NewFromInt(9)},
	)
	if got := table.ChargeFor(decimal.NewFromInt(5)); !got.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("expected first tier to win, got %s", got)
	}
}
