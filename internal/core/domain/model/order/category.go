package order

import (
	"fmt"

	"pressflow/internal/pkg/errs"
)

// Category determines which station set and routing rules apply to an order.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// CategoryLabel is a label print order with the fixed two-step path.
	CategoryLabel

	// CategoryPackaging is a packaging print order whose path depends on the
	// machine assignment and the layering flag.
	CategoryPackaging
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown:   "Unknown",
		CategoryLabel:     "Label",
		CategoryPackaging: "Packaging",
	}
}

// CategoryFromString parses a category from its string representation.
func CategoryFromString(s string) (Category, error) {
	for c, str := range getCategoryStrings() {
		if c != CategoryUnknown && str == s {
			return c, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"category is invalid",
		fmt.Errorf("%q is not a valid category", s),
	)
}

// Validate checks if the Category value is valid.
func (c Category) Validate() error {
	if c != CategoryLabel && c != CategoryPackaging {
		return errs.NewValueIsInvalidErrorWithCause(
			"category is invalid",
			fmt.Errorf("%d is not a valid category", c),
		)
	}
	return nil
}

// String returns the human-readable name of the category.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
