package order

import (
	"errors"
	"fmt"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/pkg/errs"
)

// ErrQuantityIsNotConstructed is returned when a Quantity instance was not
// created through one of the factory methods.
var ErrQuantityIsNotConstructed = errors.New("Quantity must be created via NewQuantity or NewQuantityFromVariants")

// Variant is a single named variant within a multi-variant order
// (e.g. one flavor of a label set).
type Variant struct {
	Name  string
	Units int
}

// Quantity is the ordered amount: either a plain unit count or an aggregated
// multi-variant total. The total always equals the sum of the variant units
// when variants are present.
type Quantity struct {
	units    int
	variants []Variant

	guard kernel.ConstructorGuard
}

// NewQuantity creates a plain unit-count quantity. Units must be positive.
func NewQuantity(units int) (Quantity, error) {
	if units <= 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", units),
		)
	}
	return Quantity{units: units, guard: kernel.NewConstructorGuard()}, nil
}

// NewQuantityFromVariants creates an aggregated quantity from a non-empty
// variant list. Every variant needs a name and a positive unit count; the
// total is the sum of all variant units.
func NewQuantityFromVariants(variants []Variant) (Quantity, error) {
	if len(variants) == 0 {
		return Quantity{}, errs.NewValueIsRequiredError("variants are required")
	}

	total := 0
	for _, v := range variants {
		if v.Name == "" {
			return Quantity{}, errs.NewValueIsRequiredError("variant name is required")
		}
		if v.Units <= 0 {
			return Quantity{}, errs.NewValueIsInvalidErrorWithCause(
				"variant quantity is invalid",
				fmt.Errorf("%d is not greater than 0", v.Units),
			)
		}
		total += v.Units
	}

	copied := make([]Variant, len(variants))
	copy(copied, variants)

	return Quantity{units: total, variants: copied, guard: kernel.NewConstructorGuard()}, nil
}

// Validate ensures the quantity was created through a factory method.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

// Units returns the total unit count.
func (q Quantity) Units() int {
	return q.units
}

// Variants returns a copy of the variant breakdown, empty for plain quantities.
func (q Quantity) Variants() []Variant {
	copied := make([]Variant, len(q.variants))
	copy(copied, q.variants)
	return copied
}

// IsMultiVariant reports whether the quantity aggregates multiple variants.
func (q Quantity) IsMultiVariant() bool {
	return len(q.variants) > 0
}
