package services

import (
	"errors"

	"pressflow/internal/core/domain/model/order"
)

var (
	// ErrProductionPathComplete is returned when every mandatory station for
	// the order has already been recorded.
	ErrProductionPathComplete = errors.New("production path is complete for this order")

	// ErrOrderNotRoutable is returned when routing is requested for an order
	// that has no graphics spec yet. The machine assignment in the spec decides
	// the first packaging station, so routing is undefined before it exists.
	ErrOrderNotRoutable = errors.New("order cannot be routed before its graphics spec is submitted")
)

// StationRouter is a domain service that resolves the production path of an
// order and the next station required by it.
//
// Business rules:
//   - Label orders follow the fixed path primary press, then label QC
//   - Packaging orders start at the hybrid operator station when the graphics
//     spec assigned the hybrid flexo machine, otherwise at the packaging
//     primary press; both funnel into sealing and sleeve QC
//   - Layering runs after sleeve QC only when the graphics spec flags it
//   - An explicit station sequence in the production schedule overrides the
//     category default
//   - Identical input always yields the identical path; the router keeps no
//     state and consults no clock
type StationRouter struct{}

// NewStationRouter creates a new StationRouter instance.
func NewStationRouter() StationRouter {
	return StationRouter{}
}

// DefaultPath returns the category's default station sequence for the given
// machine assignment and layering flag.
func (StationRouter) DefaultPath(
	category order.Category,
	machine order.Machine,
	layeringRequired bool,
) ([]order.Station, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	if category == order.CategoryLabel {
		return []order.Station{order.StationPrimaryPress, order.StationLabelQC}, nil
	}

	first := order.StationPrimaryPressPackaging
	if machine == order.MachineHybridFlexo {
		first = order.StationHybridOperator
	}
	path := []order.Station{first, order.StationSealing, order.StationSleeveQC}
	if layeringRequired {
		path = append(path, order.StationLayering)
	}
	return path, nil
}

// Route returns the full station sequence the order must follow: the planned
// sequence when the schedule carries one, the category default otherwise.
func (r StationRouter) Route(o *order.Order) ([]order.Station, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if plan := o.ScheduledPlan(); plan != nil {
		if sequence := plan.StationSequence(); len(sequence) > 0 {
			return sequence, nil
		}
	}

	spec := o.GraphicsSpec()
	if spec == nil {
		return nil, ErrOrderNotRoutable
	}
	return r.DefaultPath(o.Category(), spec.Machine(), spec.LayeringRequired())
}

// Next returns the next required station for the order and whether recording
// it completes the production path. It returns ErrProductionPathComplete when
// the station log already covers the path, and ErrStationOutOfSequence when
// the log diverged from the path.
func (r StationRouter) Next(o *order.Order) (order.Station, bool, error) {
	path, err := r.Route(o)
	if err != nil {
		return "", false, err
	}

	log := o.StationLog()
	if len(log) >= len(path) {
		return "", false, ErrProductionPathComplete
	}
	for i, record := range log {
		if record.Station() != path[i] {
			return "", false, order.ErrStationOutOfSequence
		}
	}

	next := path[len(log)]
	pathComplete := len(log)+1 == len(path)
	return next, pathComplete, nil
}
