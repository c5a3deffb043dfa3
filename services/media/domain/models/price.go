package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Price is a value object representing a non-negative amount of money.
// It encodes to JSON as a bare number ("price": 49.99) rather than the
// quoted string shopspring/decimal produces by default.
type Price struct {
	decimal.Decimal
}

// NewPrice parses s as a decimal and rejects negative amounts.
func NewPrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("parse price %q: %w", s, err)
	}
	return newPrice(d)
}

// PriceFromFloat converts f to a Price. Negative values are rejected.
func PriceFromFloat(f float64) (Price, error) {
	return newPrice(decimal.NewFromFloat(f))
}

// MustPrice is like NewPrice but panics on error. Use it only for
// package-level sample data.
func MustPrice(s string) Price {
	p, err := NewPrice(s)
	if err != nil {
		panic(err)
	}
	return p
}

func newPrice(d decimal.Decimal) (Price, error) {
	if d.IsNegative() {
		return Price{}, fmt.Errorf("price must not be negative, got %s", d)
	}
	return Price{Decimal: d}, nil
}

// Plus returns p + o.
func (p Price) Plus(o Price) Price {
	return Price{Decimal: p.Decimal.Add(o.Decimal)}
}

// MarshalJSON writes the price as a JSON number.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}

// UnmarshalJSON accepts both quoted and bare numbers and rejects negatives.
func (p *Price) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("decode price: %w", err)
	}
	parsed, err := newPrice(d)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
