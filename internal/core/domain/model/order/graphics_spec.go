package order

import (
	"errors"
	"fmt"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/pkg/errs"
)

// ErrGraphicsSpecIsNotConstructed is returned when a GraphicsSpec instance was
// not created through the NewGraphicsSpec factory method.
var ErrGraphicsSpecIsNotConstructed = errors.New("GraphicsSpec must be created via NewGraphicsSpec constructor")

// Machine identifies the press machine assigned by the graphics department.
// For packaging orders the machine decides the first production station.
type Machine int

const (
	// MachineUnknown represents an invalid or undefined machine.
	MachineUnknown Machine = iota

	// MachinePrimaryPress is the primary press line.
	MachinePrimaryPress

	// MachineHybridFlexo is the hybrid flexo line; packaging orders assigned
	// to it start at the hybrid operator station.
	MachineHybridFlexo

	// MachineSealing is the sealing line.
	MachineSealing
)

func getMachineStrings() map[Machine]string {
	return map[Machine]string{
		MachineUnknown:      "Unknown",
		MachinePrimaryPress: "Primary Press",
		MachineHybridFlexo:  "Hybrid Flexo",
		MachineSealing:      "Sealing",
	}
}

// MachineFromString parses a machine from its string representation.
func MachineFromString(s string) (Machine, error) {
	for m, str := range getMachineStrings() {
		if m != MachineUnknown && str == s {
			return m, nil
		}
	}
	return MachineUnknown, errs.NewValueIsInvalidErrorWithCause(
		"machine is invalid",
		fmt.Errorf("%q is not a valid machine", s),
	)
}

// Validate checks if the Machine value is valid.
func (m Machine) Validate() error {
	if m != MachinePrimaryPress && m != MachineHybridFlexo && m != MachineSealing {
		return errs.NewValueIsInvalidErrorWithCause(
			"machine is invalid",
			fmt.Errorf("%d is not a valid machine", m),
		)
	}
	return nil
}

// String returns the human-readable name of the machine.
func (m Machine) String() string {
	if str, ok := getMachineStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// GraphicsSpec is the technical print specification produced once by the
// graphics department and read by every downstream stage. It is an immutable
// value object: resubmitting a spec replaces the whole value.
type GraphicsSpec struct {
	machine          Machine
	colorPlan        string
	printType        string
	stepMm           float64
	netMeterage      kernel.Meterage
	paperWidthCm     float64
	lamination       string
	layeringRequired bool
	wrapDirection    string
	notes            string

	guard kernel.ConstructorGuard
}

// NewGraphicsSpec creates a validated graphics specification.
//
// The machine must be valid, the net meterage positive and the paper width
// greater than zero. Color plan, print type, lamination, wrap direction and
// notes are free-form and may be empty.
func NewGraphicsSpec(
	machine Machine,
	colorPlan string,
	printType string,
	stepMm float64,
	netMeterage kernel.Meterage,
	paperWidthCm float64,
	lamination string,
	layeringRequired bool,
	wrapDirection string,
	notes string,
) (GraphicsSpec, error) {
	if err := machine.Validate(); err != nil {
		return GraphicsSpec{}, err
	}
	if !netMeterage.IsPositive() {
		return GraphicsSpec{}, errs.NewValueIsInvalidErrorWithCause(
			"netMeterage is invalid",
			fmt.Errorf("%s is not greater than 0", netMeterage),
		)
	}
	if paperWidthCm <= 0 {
		return GraphicsSpec{}, errs.NewValueIsInvalidErrorWithCause(
			"paperWidthCm is invalid",
			fmt.Errorf("%v is not greater than 0", paperWidthCm),
		)
	}
	if stepMm < 0 {
		return GraphicsSpec{}, errs.NewValueIsInvalidErrorWithCause(
			"stepMm is invalid",
			fmt.Errorf("%v is negative", stepMm),
		)
	}

	return GraphicsSpec{
		machine:          machine,
		colorPlan:        colorPlan,
		printType:        printType,
		stepMm:           stepMm,
		netMeterage:      netMeterage,
		paperWidthCm:     paperWidthCm,
		lamination:       lamination,
		layeringRequired: layeringRequired,
		wrapDirection:    wrapDirection,
		notes:            notes,
		guard:            kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the spec was created through NewGraphicsSpec.
func (g GraphicsSpec) Validate() error {
	return g.guard.Validate(ErrGraphicsSpecIsNotConstructed)
}

// Machine returns the assigned press machine.
func (g GraphicsSpec) Machine() Machine { return g.machine }

// ColorPlan returns the color plan description.
func (g GraphicsSpec) ColorPlan() string { return g.colorPlan }

// PrintType returns the print type description.
func (g GraphicsSpec) PrintType() string { return g.printType }

// StepMm returns the z-step in millimeters.
func (g GraphicsSpec) StepMm() float64 { return g.stepMm }

// NetMeterage returns the net material requirement in meters, before waste.
func (g GraphicsSpec) NetMeterage() kernel.Meterage { return g.netMeterage }

// PaperWidthCm returns the required paper width in centimeters.
func (g GraphicsSpec) PaperWidthCm() float64 { return g.paperWidthCm }

// Lamination returns the lamination description.
func (g GraphicsSpec) Lamination() string { return g.lamination }

// LayeringRequired reports whether the optional layering station must run
// after sleeve QC for packaging orders.
func (g GraphicsSpec) LayeringRequired() bool { return g.layeringRequired }

// WrapDirection returns the wrap direction description.
func (g GraphicsSpec) WrapDirection() string { return g.wrapDirection }

// Notes returns the free-form notes.
func (g GraphicsSpec) Notes() string { return g.notes }
