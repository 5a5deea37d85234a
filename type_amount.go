package chaucha

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency amounts are displayed in when none is given.
const DefaultCurrency = "CLP"

// Amount is a signed amount of money in whole currency units (no cents).
type Amount int64

// Abs returns the absolute value of a.
func (a Amount) Abs() Amount {
	if a < 0 {
		return -a
	}
	return a
}

// String formats a in the DefaultCurrency.
func (a Amount) String() string { return a.Format(DefaultCurrency) }

// Format formats a using the display conventions of currency code cur.
func (a Amount) Format(cur string) string {
	// to get a never nil currency I need to call the Money constructor
	c := *money.New(0, cur).Currency()
	minor := decimal.NewFromInt(int64(a)).Shift(int32(c.Fraction))
	return c.Formatter().Format(minor.IntPart())
}

// SignedString is like Format but always shows the sign of positive amounts.
func (a Amount) SignedString(cur string) string {
	if a > 0 {
		return "+" + a.Format(cur)
	}
	return a.Format(cur)
}

// share returns part as a percentage of total, 0 when total is not positive.
// Computation is exact up to the final conversion to Percent.
func share(part, total Amount) Percent {
	if total <= 0 {
		return 0
	}
	p := decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total)))
	return Percent(p.InexactFloat64())
}
