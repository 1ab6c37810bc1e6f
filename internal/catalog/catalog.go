// Package catalog defines products and the immutable catalogue used to
// resolve cart additions.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"cartcalc/internal/money"
)

// Product is an immutable catalogue entry.
type Product struct {
	Code  string
	Name  string
	Price decimal.Decimal
}

// NewProduct builds a product from an exact decimal price string. There is
// deliberately no float constructor: a price arriving as a binary float is
// exactly the precision corruption this rejects.
func NewProduct(code, name, price string) (Product, error) {
	p, err := money.Parse(price)
	if err != nil {
		return Product{}, fmt.Errorf("product %s: %w", code, err)
	}
	return Product{Code: code, Name: name, Price: p}, nil
}

// Catalogue maps product codes to products. Immutable once built, so it may
// be shared across carts without synchronization. Lookups are exact and
// case sensitive.
type Catalogue struct {
	products map[string]Product
}

// NewCatalogue builds a catalogue from the given products. Product codes are
// unique keys; a duplicate code is rejected.
func NewCatalogue(products ...Product) (Catalogue, error) {
	m := make(map[string]Product, len(products))
	for _, p := range products {
		if _, exists := m[p.Code]; exists {
			return Catalogue{}, fmt.Errorf("duplicate product code %s", p.Code)
		}
		m[p.Code] = p
	}
	return Catalogue{products: m}, nil
}

// Lookup returns the product registered under code.
func (c Catalogue) Lookup(code string) (Product, bool) {
	p, ok := c.products[code]
	return p, ok
}

// Len returns the number of products in the catalogue.
func (c Catalogue) Len() int {
	return len(c.products)
}

// Default returns the standard widget catalogue.
func Default() Catalogue {
	cat, err := NewCatalogue(
		mustProduct("R01", "Red Widget", "32.95"),
		mustProduct("G01", "Green Widget", "24.95"),
		mustProduct("B01", "Blue Widget", "7.95"),
	)
	if err != nil {
		panic(err)
	}
	return cat
}

func mustProduct(code, name, price string) Product {
	p, err := NewProduct(code, name, price)
	if err != nil {
		panic(err)
	}
	return p
}
