// Package pricing implements the cart pricing pipeline: subtotal, discount
// rules, delivery tier resolution, and the truncated grand total.
package pricing

import (
	"github.com/shopspring/decimal"

	"cartcalc/internal/money"
)

// Summary aggregates computed pricing components. Subtotal, Discount, and
// Delivery carry full precision; only Total is truncated to whole cents.
type Summary struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Delivery decimal.Decimal
	Total    decimal.Decimal
}

// Compute calculates cart totals given the provided inputs. The delivery
// tier is selected on the discounted net amount, not the gross subtotal.
func Compute(items []Line, rules []Rule, table DeliveryTable) Summary {
	subtotal := decimal.Zero
	for _, it := range items {
		if it.Qty <= 0 {
			continue
		}
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	discount := TotalDiscount(items, rules)
	net := subtotal.Sub(discount)
	delivery := table.ChargeFor(net)
	return Summary{
		Subtotal: subtotal,
		Discount: discount,
		Delivery: delivery,
		Total:    money.TruncateCent(net.Add(delivery)),
	}
}
