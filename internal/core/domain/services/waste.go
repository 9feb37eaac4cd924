package services

import (
	"github.com/shopspring/decimal"

	"pressflow/internal/core/domain/model/kernel"
)

// ProductionOutcome classifies the finished output of an order against the
// ordered quantity. Over-production is a desirable outcome distinct from
// under-production, so the classification is four-way rather than pass/fail.
type ProductionOutcome int

const (
	// NoOutputYet means no finished units have been recorded.
	NoOutputYet ProductionOutcome = iota

	// ShortProduced means the finished output fell below the ordered quantity.
	ShortProduced

	// OnTarget means the finished output matched the ordered quantity exactly.
	OnTarget

	// OverProduced means the finished output exceeded the ordered quantity.
	OverProduced
)

// String returns the human-readable name of the outcome.
func (o ProductionOutcome) String() string {
	switch o {
	case ShortProduced:
		return "ShortProduced"
	case OnTarget:
		return "OnTarget"
	case OverProduced:
		return "OverProduced"
	default:
		return "NoOutputYet"
	}
}

// FireSummary is the order-level production result: the outcome class and the
// signed percentage delta of actual output against the ordered quantity.
type FireSummary struct {
	Outcome      ProductionOutcome
	ExpectedQty  int
	ActualQty    int
	DeltaPercent float64
}

// WasteCalculator holds the pure waste and fire math of the pipeline. It keeps
// no state; every method is a function of its inputs alone.
type WasteCalculator struct{}

// NewWasteCalculator creates a new WasteCalculator instance.
func NewWasteCalculator() WasteCalculator {
	return WasteCalculator{}
}

// IssuedLength computes the gross meterage the warehouse must release for a
// net requirement under a waste rate: net x (1 + rate/100), rounded up to the
// next whole meter. Rounding is always upward so production is never
// under-issued.
func (WasteCalculator) IssuedLength(netLength kernel.Meterage, wasteRatePercent float64) kernel.Meterage {
	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(wasteRatePercent).Div(decimal.NewFromInt(100)))
	gross, err := kernel.MeterageFromDecimal(netLength.Decimal().Mul(factor))
	if err != nil {
		return netLength.Ceil()
	}
	return gross.Ceil()
}

// StationFirePercent computes the waste percentage of one station pass:
// (input - output) / input x 100. A zero input yields 0; a negative result
// (the station put out more than it took in) is preserved as-is and reads as
// over-delivery, not as an error.
func (WasteCalculator) StationFirePercent(inputMeterage, outputMeterage kernel.Meterage) float64 {
	if !inputMeterage.IsPositive() {
		return 0
	}
	fire := inputMeterage.Decimal().Sub(outputMeterage.Decimal()).
		Div(inputMeterage.Decimal()).
		Mul(decimal.NewFromInt(100))
	f, _ := fire.Float64()
	return f
}

// OrderFireSummary classifies the order's finished output against the ordered
// quantity and computes the signed percentage delta.
func (WasteCalculator) OrderFireSummary(expectedQty, actualOutputQty int) FireSummary {
	summary := FireSummary{
		ExpectedQty: expectedQty,
		ActualQty:   actualOutputQty,
	}

	switch {
	case actualOutputQty == 0:
		summary.Outcome = NoOutputYet
	case actualOutputQty > expectedQty:
		summary.Outcome = OverProduced
	case actualOutputQty == expectedQty:
		summary.Outcome = OnTarget
	default:
		summary.Outcome = ShortProduced
	}

	if expectedQty > 0 {
		delta := decimal.NewFromInt(int64(actualOutputQty - expectedQty)).
			Div(decimal.NewFromInt(int64(expectedQty))).
			Mul(decimal.NewFromInt(100))
		summary.DeltaPercent, _ = delta.Float64()
	}
	return summary
}

// PlateMeterage computes the print meterage one plate run needs:
// step (mm) x total quantity / total lanes / 1000, rounded up to whole
// meters. Zero lanes or quantity yields zero.
func (WasteCalculator) PlateMeterage(stepMm float64, totalQuantity, totalLanes int) kernel.Meterage {
	if stepMm <= 0 || totalQuantity <= 0 || totalLanes <= 0 {
		return kernel.ZeroMeterage()
	}

	meters := decimal.NewFromFloat(stepMm).
		Mul(decimal.NewFromInt(int64(totalQuantity))).
		Div(decimal.NewFromInt(int64(totalLanes))).
		Div(decimal.NewFromInt(1000))
	m, err := kernel.MeterageFromDecimal(meters)
	if err != nil {
		return kernel.ZeroMeterage()
	}
	return m.Ceil()
}
