package finview

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DisplayCurrency is the currency used to render statement amounts. The
// upstream spreadsheets report everything in Brazilian reais.
const DisplayCurrency = "BRL"

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	}
	panic("unreachable")
}

// Money represents a monetary value in a given currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the locale representation of the money value: the currency
// grapheme, its thousands and decimal separators, and for negative amounts a
// leading minus before the grapheme ("-R$1.234,50").
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string   { return m.cur }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Neg() Money         { return Money{value: m.value.Neg(), cur: m.cur} }

// SignedString returns the string representation of the money value with a
// sign. 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
