package finview

import (
	"github.com/shopspring/decimal"
)

// NoValue is the marker rendered for cells that hold no value. An empty
// dataset cell and a blank spreadsheet cell both render as this marker,
// never as zero.
const NoValue = "n/a"

// ValueKind discriminates the kinds of value a statement cell can hold.
type ValueKind int

const (
	// Empty is a cell with no value. It is the zero Value.
	Empty ValueKind = iota
	// Number is a monetary amount, reported in the display currency.
	Number
	// Text is a verbatim string from the spreadsheet.
	Text
)

// Value is a single statement cell: a number, a verbatim text, or nothing.
// The zero value is the empty cell.
type Value struct {
	kind ValueKind
	num  decimal.Decimal
	text string
}

// N returns a numeric Value.
func N[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Value {
	return Value{kind: Number, num: newDecimal(value)}
}

// S returns a text Value. The empty string is the empty cell.
func S(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{kind: Text, text: s}
}

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) IsEmpty() bool   { return v.kind == Empty }

// Decimal returns the numeric value, or zero for non-numeric cells.
func (v Value) Decimal() decimal.Decimal { return v.num }

// Float returns the numeric value as a float64, or 0 for non-numeric cells.
func (v Value) Float() float64 { return v.num.InexactFloat64() }

// Money returns the numeric value as an amount in the display currency.
func (v Value) Money() Money { return Money{value: v.num, cur: DisplayCurrency} }

// Equal reports whether two values hold the same content.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case Number:
		return v.num.Equal(w.num)
	case Text:
		return v.text == w.text
	}
	return true
}

// String renders the cell for display: numbers in the display currency's
// locale, texts verbatim, empty cells as the NoValue marker.
func (v Value) String() string {
	switch v.kind {
	case Number:
		return v.Money().String()
	case Text:
		return v.text
	}
	return NoValue
}

// MarshalJSON writes numbers as plain JSON numbers (not the quoted form
// decimal defaults to), texts as strings, and empty cells as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case Number:
		return []byte(v.num.String()), nil
	case Text:
		return jsonString(v.text), nil
	}
	return []byte("null"), nil
}
