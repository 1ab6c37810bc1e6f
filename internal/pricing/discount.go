package pricing

import "github.com/shopspring/decimal"

var two = decimal.NewFromInt(2)

// Line is the pricing view of one accumulated product.
type Line struct {
	Code      string
	Qty       int
	UnitPrice decimal.Decimal
}

// Rule computes the discount one promotion contributes for a set of lines.
// Rules are evaluated independently and their discounts sum, so new
// promotions slot in without touching the cart.
type Rule interface {
	Name() string
	Discount(items []Line) decimal.Decimal
}

// PairHalfPrice prices one unit of every complete pair of the designated
// product at half price. A lone unit in an odd quantity earns nothing.
type PairHalfPrice struct {
	Code string
}

// Name identifies the rule for logging.
func (r PairHalfPrice) Name() string {
	return "pair_half_price_" + r.Code
}

// Discount returns floor(qty/2) * unitPrice/2 for the designated line.
func (r PairHalfPrice) Discount(items []Line) decimal.Decimal {
	for _, it := range items {
		if it.Code != r.Code || it.Qty < 2 {
			continue
		}
		pairs := decimal.NewFromInt(int64(it.Qty / 2))
		return pairs.Mul(it.UnitPrice.Div(two))
	}
	return decimal.Zero
}

// Offers selects which discount rules a cart runs with.
type Offers struct {
	// PairHalfPriceCode enables the paired half-price promotion for the
	// given product code. Empty disables it.
	PairHalfPriceCode string
}

// RulesFromOffers expands an offer configuration into its rule list.
func RulesFromOffers(o Offers) []Rule {
	var rules []Rule
	if o.PairHalfPriceCode != "" {
		rules = append(rules, PairHalfPrice{Code: o.PairHalfPriceCode})
	}
	return rules
}

// TotalDiscount sums the discounts of every rule over the given lines.
func TotalDiscount(items []Line, rules []Rule) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rules {
		total = total.Add(r.Discount(items))
	}
	return total
}
