// Package format turns amounts and dates into display text.
package format

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a caller passes an unknown ISO code.
const DefaultCurrency = money.USD

// DefaultDateLayout renders dates like "Friday, October 16, 2026".
const DefaultDateLayout = "Monday, January 2, 2006"

var ErrInvalidAmount = errors.New("invalid amount")

// Formatter formats amounts in a single currency.
type Formatter struct {
	cur *money.Currency
}

// NewFormatter returns a Formatter for the ISO 4217 code. Unknown codes
// fall back to DefaultCurrency.
func NewFormatter(code string) Formatter {
	cur := money.GetCurrency(strings.ToUpper(strings.TrimSpace(code)))
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}
	return Formatter{cur: cur}
}

// Code returns the ISO code of the formatter's currency.
func (f Formatter) Code() string {
	return f.currency().Code
}

// Minor formats an amount held in minor units (cents for USD).
func (f Formatter) Minor(amount int64) string {
	return money.New(amount, f.currency().Code).Display()
}

// Overflow is shown in place of values that have no finite amount.
const Overflow = "overflow"

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// Major formats a fractional major-unit amount such as a projected value.
// The value is rounded half away from zero to the currency's precision.
// Amounts beyond the int64 minor-unit range are still formatted exactly;
// NaN and infinities render as Overflow.
func (f Formatter) Major(v float64) string {
	d, ok := finite(v)
	if !ok {
		return Overflow
	}
	frac := f.currency().Fraction
	return f.layout(d.Round(int32(frac)), frac)
}

// Whole formats a major-unit amount with the fraction dropped, for axis
// labels and compact cards.
func (f Formatter) Whole(v float64) string {
	d, ok := finite(v)
	if !ok {
		return Overflow
	}
	return f.layout(d.Round(0), 0)
}

// layout renders d with places decimals through the currency template,
// grouping digits the way go-money does for int64 amounts.
func (f Formatter) layout(d decimal.Decimal, places int) string {
	fm := f.currency().Formatter()
	whole, frac, _ := strings.Cut(d.Abs().StringFixed(int32(places)), ".")
	if fm.Thousand != "" {
		for i := len(whole) - 3; i > 0; i -= 3 {
			whole = whole[:i] + fm.Thousand + whole[i:]
		}
	}
	if places > 0 {
		whole += fm.Decimal + frac
	}
	out := strings.Replace(fm.Template, "1", whole, 1)
	out = strings.Replace(out, "$", fm.Grapheme, 1)
	if d.IsNegative() {
		out = "-" + out
	}
	return out
}

// ToMinor converts a major-unit float to minor units. It reports false when
// v is not finite or does not fit in an int64.
func (f Formatter) ToMinor(v float64) (int64, bool) {
	d, ok := finite(v)
	if !ok {
		return 0, false
	}
	d = d.Shift(int32(f.currency().Fraction)).Round(0)
	if !fitsMinor(d) {
		return 0, false
	}
	return d.IntPart(), true
}

// ToMajor converts minor units to a major-unit float.
func (f Formatter) ToMajor(amount int64) float64 {
	return decimal.New(amount, -int32(f.currency().Fraction)).InexactFloat64()
}

func finite(v float64) (decimal.Decimal, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(v), true
}

func fitsMinor(d decimal.Decimal) bool {
	return !d.GreaterThan(maxMinor) && !d.LessThan(minMinor)
}

// ParseAmount reads user input such as "1,234.50", "-12" or "$40" into
// minor units of the formatter's currency. More precision than the
// currency allows is rejected.
func (f Formatter) ParseAmount(s string) (int64, error) {
	cur := f.currency()
	raw := strings.TrimSpace(s)
	raw = strings.ReplaceAll(raw, cur.Thousand, "")
	raw = strings.ReplaceAll(raw, cur.Grapheme, "")
	raw = strings.ReplaceAll(raw, " ", "")
	if cur.Decimal != "." {
		raw = strings.ReplaceAll(raw, cur.Decimal, ".")
	}
	if raw == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if -d.Exponent() > int32(cur.Fraction) {
		return 0, fmt.Errorf("%w: %q has more than %d decimals", ErrInvalidAmount, s, cur.Fraction)
	}
	minor := d.Shift(int32(cur.Fraction))
	if !fitsMinor(minor) {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, s)
	}
	return minor.IntPart(), nil
}

func (f Formatter) currency() *money.Currency {
	if f.cur == nil {
		return money.GetCurrency(DefaultCurrency)
	}
	return f.cur
}

// Today renders now in layout, defaulting to DefaultDateLayout.
func Today(now time.Time, layout string) string {
	if strings.TrimSpace(layout) == "" {
		layout = DefaultDateLayout
	}
	return now.Format(layout)
}
