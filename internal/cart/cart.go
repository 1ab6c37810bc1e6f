// Package cart accumulates line items for one order and prices them through
// the pricing engine.
package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"cartcalc/internal/catalog"
	"cartcalc/internal/common"
	"cartcalc/internal/pricing"
)

// LineItem pairs a product with its accumulated quantity. Quantity starts at
// one and only ever grows.
type LineItem struct {
	Product catalog.Product
	Qty     int
}

// Subtotal is price times quantity, computed on demand.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Product.Price.Mul(decimal.NewFromInt(int64(li.Qty)))
}

// Cart accumulates line items and prices them. A cart is a single-session
// value and is not safe for concurrent mutation; the catalogue and delivery
// table it references are read-only and may be shared freely.
type Cart struct {
	catalogue catalog.Catalogue
	table     pricing.DeliveryTable
	rules     []pricing.Rule
	items     map[string]*LineItem
	order     []string
}

// New builds an empty cart over the given read-only configuration.
func New(cat catalog.Catalogue, table pricing.DeliveryTable, offers pricing.Offers) *Cart {
	return &Cart{
		catalogue: cat,
		table:     table,
		rules:     pricing.RulesFromOffers(offers),
		items:     make(map[string]*LineItem),
	}
}

// Add puts one unit of the coded product into the cart. Codes are matched
// exactly, with no normalization. An unknown code fails with
// PRODUCT_NOT_FOUND and leaves the cart untouched.
func (c *Cart) Add(code string) error {
	product, ok := c.catalogue.Lookup(code)
	if !ok {
		return common.NewAppError(common.CodeProductNotFound, fmt.Sprintf("product %s not found", code), nil)
	}
	if item, exists := c.items[code]; exists {
		item.Qty++
		return nil
	}
	c.items[code] = &LineItem{Product: product, Qty: 1}
	c.order = append(c.order, code)
	return nil
}

// Len returns the number of distinct line items.
func (c *Cart) Len() int {
	return len(c.items)
}

// Items returns a snapshot of the line items in first-seen order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, *c.items[code])
	}
	return out
}

func (c *Cart) lines() []pricing.Line {
	lines := make([]pricing.Line, 0, len(c.order))
	for _, code := range c.order {
		item := c.items[code]
		lines = append(lines, pricing.Line{Code: code, Qty: item.Qty, UnitPrice: item.Product.Price})
	}
	return lines
}

// Summary prices the current items. It is a pure read: repeated calls
// without an intervening Add return identical values.
func (c *Cart) Summary() pricing.Summary {
	return pricing.Compute(c.lines(), c.rules, c.table)
}

// Subtotal returns the gross sum of all line subtotals.
func (c *Cart) Subtotal() decimal.Decimal {
	return c.Summary().Subtotal
}

// Discount returns the aggregate discount of the active offers.
func (c *Cart) Discount() decimal.Decimal {
	return c.Summary().Discount
}

// DeliveryCharge returns the charge resolved on the discounted net amount.
func (c *Cart) DeliveryCharge() decimal.Decimal {
	return c.Summary().Delivery
}

// Total returns the grand total truncated to whole cents.
func (c *Cart) Total() decimal.Decimal {
	return c.Summary().Total
}
