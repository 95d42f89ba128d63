package collective

import (
	"encoding/json"
	"fmt"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents an exact monetary amount as a signed count of minor
// currency units (cents). All arithmetic is exact; there is no floating
// point anywhere in the pipeline. Division is only available through DivMod,
// which hands the remainder back to the caller explicitly.
type Money struct {
	units decimal.Decimal // integer count of minor units
}

// displayCurrency is the ISO code used to format amounts. It is a display
// concern only: the ledger holds a single implicit currency and never
// converts (see SetDisplayCurrency).
var displayCurrency = gomoney.EUR

// SetDisplayCurrency changes the currency code used by String. It does not
// affect any stored value.
func SetDisplayCurrency(code string) { displayCurrency = code }

// Cents returns the Money worth n minor units.
func Cents(n int64) Money {
	return Money{units: decimal.NewFromInt(n)}
}

// ParseAmount parses a decimal string such as "12.34" into Money.
// At most two fraction digits are accepted; anything malformed or more
// precise than a minor unit fails with ErrInvalidAmount.
func ParseAmount(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	units := d.Shift(2)
	if !units.IsInteger() {
		return Money{}, fmt.Errorf("%w: %q has more than 2 decimal places", ErrInvalidAmount, s)
	}
	return Money{units: units}, nil
}

// MustParseAmount is like ParseAmount but panics on error. For tests and
// constants.
func MustParseAmount(s string) Money {
	m, err := ParseAmount(s)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// FromFloat converts a float accepted at the boundary into Money, once.
// It fails with ErrPrecisionLoss if the value cannot be represented exactly
// in minor units.
func FromFloat(f float64) (Money, error) {
	units := decimal.NewFromFloat(f).Shift(2)
	if !units.IsInteger() {
		return Money{}, fmt.Errorf("%w: %v is not a whole number of cents", ErrPrecisionLoss, f)
	}
	return Money{units: units}, nil
}

// MinorUnits returns the amount as a signed count of minor units.
func (m Money) MinorUnits() int64 { return m.units.IntPart() }

func (m Money) Add(n Money) Money { return Money{units: m.units.Add(n.units)} }
func (m Money) Sub(n Money) Money { return Money{units: m.units.Sub(n.units)} }
func (m Money) Neg() Money        { return Money{units: m.units.Neg()} }

// MulInt returns m multiplied by an integer factor.
func (m Money) MulInt(n int64) Money {
	return Money{units: m.units.Mul(decimal.NewFromInt(n))}
}

// DivMod divides m into n equal shares and returns the base share together
// with the remainder in minor units, such that
//
//	m == share*n + remainder, with 0 <= remainder < n for m >= 0.
//
// n must be positive; distributing the remainder is the caller's job.
func (m Money) DivMod(n int) (share Money, remainder int64) {
	if n <= 0 {
		panic("collective: DivMod by non-positive divisor")
	}
	q, r := m.units.QuoRem(decimal.NewFromInt(int64(n)), 0)
	return Money{units: q}, r.IntPart()
}

// Exact comparisons.

func (m Money) Equal(n Money) bool       { return m.units.Equal(n.units) }
func (m Money) Cmp(n Money) int          { return m.units.Cmp(n.units) }
func (m Money) IsZero() bool             { return m.units.IsZero() }
func (m Money) IsPositive() bool         { return m.units.IsPositive() }
func (m Money) IsNegative() bool         { return m.units.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.units.LessThan(n.units) }
func (m Money) GreaterThan(n Money) bool { return m.units.GreaterThan(n.units) }

// Abs returns the absolute value of m.
func (m Money) Abs() Money { return Money{units: m.units.Abs()} }

// String formats the amount with the display currency formatter.
func (m Money) String() string {
	return gomoney.New(m.MinorUnits(), displayCurrency).Display()
}

// SignedString is like String with an explicit sign; zero renders as "-",
// which reads as "settled" in balance tables.
func (m Money) SignedString() string {
	if m.IsZero() {
		return "-"
	}
	if m.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON encodes the amount as its integer count of minor units, the
// persisted form of every delta in the operation log.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.MinorUnits())
}

// UnmarshalJSON decodes an integer count of minor units.
func (m *Money) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s is not a minor unit count", ErrInvalidAmount, string(data))
	}
	*m = Cents(n)
	return nil
}
