package queries

import (
	"errors"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/pkg/errs"
	"pressflow/internal/pkg/guard"
)

var ErrGetRollsByMaterialQueryIsNotConstructed = errors.New(
	"GetRollsByMaterialQuery must be created via NewGetRollsByMaterialQuery constructor",
)

// GetRollsByMaterialQuery retrieves the stock of one raw material, longest
// remaining length first. The warehouse dashboard uses this to pick a roll
// to reserve for an order.
type GetRollsByMaterialQuery struct {
	materialName  string
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetRollsByMaterialQuery creates a query for one material's stock.
// availableOnly narrows the result to unreserved, unsliced rolls with
// remaining length.
func NewGetRollsByMaterialQuery(materialName string, availableOnly bool) (GetRollsByMaterialQuery, error) {
	if materialName == "" {
		return GetRollsByMaterialQuery{}, errs.NewValueIsRequiredError("materialName is required")
	}
	return GetRollsByMaterialQuery{
		materialName:  materialName,
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRollsByMaterialQuery) Validate() error {
	return q.guard.Validate(ErrGetRollsByMaterialQueryIsNotConstructed)
}

// MaterialName returns the requested raw material.
func (q GetRollsByMaterialQuery) MaterialName() string { return q.materialName }

// AvailableOnly reports whether reserved, sliced and empty rolls are excluded.
func (q GetRollsByMaterialQuery) AvailableOnly() bool { return q.availableOnly }

// GetRollsByMaterialQueryResponse is one roll in the material stock view.
type GetRollsByMaterialQueryResponse struct {
	ID                  kernel.UUID
	Barcode             string
	MaterialName        string
	SupplierName        string
	WidthCm             float64
	OriginalLength      string
	CurrentLength       string
	IsJumbo             bool
	IsSliced            bool
	ParentBarcode       string
	ReservedOrderNumber string
	ReservedLength      string
	CreatedAt           time.Time
}
