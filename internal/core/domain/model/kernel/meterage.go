package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pressflow/internal/pkg/errs"
)

// Meterage is a value object representing a physical length in meters.
// It is backed by a decimal to keep roll-ledger arithmetic exact: reservations,
// consumptions and returned remainders must reconcile to the cent of a meter,
// which float64 accumulation cannot guarantee.
//
// A Meterage is never negative. Arithmetic helpers return plain results and
// leave sign checks to the caller, so aggregates can decide whether a negative
// intermediate value is an invariant violation or a measurement anomaly.
//
// The zero value is a valid zero-length Meterage.
type Meterage struct {
	value decimal.Decimal
}

// NewMeterage creates a Meterage from a float amount of meters.
// Returns an error if the amount is negative.
func NewMeterage(meters float64) (Meterage, error) {
	d := decimal.NewFromFloat(meters)
	if d.IsNegative() {
		return Meterage{}, errs.NewValueIsInvalidErrorWithCause(
			"meterage is invalid",
			fmt.Errorf("%v is negative", meters),
		)
	}
	return Meterage{value: d}, nil
}

// MeterageFromDecimal creates a Meterage from a decimal amount of meters.
// Returns an error if the amount is negative.
func MeterageFromDecimal(d decimal.Decimal) (Meterage, error) {
	if d.IsNegative() {
		return Meterage{}, errs.NewValueIsInvalidErrorWithCause(
			"meterage is invalid",
			fmt.Errorf("%s is negative", d),
		)
	}
	return Meterage{value: d}, nil
}

// ZeroMeterage returns a zero-length Meterage.
func ZeroMeterage() Meterage {
	return Meterage{value: decimal.Zero}
}

// Add returns the sum of two meterages.
func (m Meterage) Add(other Meterage) Meterage {
	return Meterage{value: m.value.Add(other.value)}
}

// Sub returns the difference m - other. The result may be negative; callers
// guarding an invariant must check with IsNegative before using it.
func (m Meterage) Sub(other Meterage) Meterage {
	return Meterage{value: m.value.Sub(other.value)}
}

// Min returns the smaller of the two meterages.
func (m Meterage) Min(other Meterage) Meterage {
	if m.value.LessThanOrEqual(other.value) {
		return m
	}
	return other
}

// Cmp compares two meterages: -1 if m < other, 0 if equal, +1 if m > other.
func (m Meterage) Cmp(other Meterage) int {
	return m.value.Cmp(other.value)
}

// GreaterThan reports whether m is strictly greater than other.
func (m Meterage) GreaterThan(other Meterage) bool {
	return m.value.GreaterThan(other.value)
}

// IsZero reports whether the meterage is exactly zero.
func (m Meterage) IsZero() bool {
	return m.value.IsZero()
}

// IsNegative reports whether the meterage carries a negative value.
// Only results of Sub can be negative; constructed meterages never are.
func (m Meterage) IsNegative() bool {
	return m.value.IsNegative()
}

// IsPositive reports whether the meterage is strictly greater than zero.
func (m Meterage) IsPositive() bool {
	return m.value.IsPositive()
}

// Ceil returns the meterage rounded up to a whole meter.
func (m Meterage) Ceil() Meterage {
	return Meterage{value: m.value.Ceil()}
}

// Decimal returns the underlying decimal value in meters.
func (m Meterage) Decimal() decimal.Decimal {
	return m.value
}

// Float64 returns the meterage as a float64 amount of meters.
// Intended for display and percentage math, not for ledger arithmetic.
func (m Meterage) Float64() float64 {
	f, _ := m.value.Float64()
	return f
}

// String returns the meterage as a plain decimal string, e.g. "1200.5".
func (m Meterage) String() string {
	return m.value.String()
}
