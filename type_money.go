package jbudget

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the single currency the ledger accounts in.
const Currency = money.EUR

// Money represents an exact monetary value in the ledger currency.
//
// The zero value is zero money, ready to use.
type Money struct {
	value decimal.Decimal
}

// M builds a Money from any numeric value.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case decimal.Decimal:
		return n
	case float32:
		return decimal.NewFromFloat32(n)
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int32:
		return decimal.NewFromInt32(n)
	case int64:
		return decimal.NewFromInt(n)
	}
	panic(fmt.Sprintf("unsupported numeric type %T", v))
}

// ParseMoney parses a decimal string into a Money.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: amount %q", ErrParse, s)
	}
	return Money{value: d}, nil
}

// String formats the value with the currency symbol (e.g. "€1,500.00").
func (m Money) String() string {
	cur := money.GetCurrency(Currency)
	minor := m.value.Shift(int32(cur.Fraction))
	return money.New(minor.IntPart(), Currency).Display()
}

// Plain returns the bare decimal representation, the form persisted in
// flat-file rows.
func (m Money) Plain() string { return m.value.String() }

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money               { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }

// SignedString returns the value with an explicit sign, "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Deprecated: AsFloat loses exactness, kept for display-only call sites.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }
