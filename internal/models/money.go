package models

import "github.com/shopspring/decimal"

// Money is a decimal amount that serializes with exactly two fractional
// digits, the way numeric(10,2) columns read back.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}
