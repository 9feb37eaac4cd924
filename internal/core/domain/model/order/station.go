package order

import (
	"fmt"

	"pressflow/internal/pkg/errs"
)

// Station identifies a named production step. Stations are category-specific
// and their order within the category's path is fixed by the routing table.
type Station string

const (
	// StationPrimaryPress is the first (and only press) station for label orders.
	StationPrimaryPress Station = "primary-press"

	// StationLabelQC is the terminal quality-control station for label orders.
	StationLabelQC Station = "label-qc"

	// StationPrimaryPressPackaging is the default first station for packaging orders.
	StationPrimaryPressPackaging Station = "primary-press-packaging"

	// StationHybridOperator is the alternative first station for packaging
	// orders assigned to the hybrid flexo machine.
	StationHybridOperator Station = "hybrid-operator"

	// StationSealing is the second packaging station; both packaging first
	// stations funnel into it.
	StationSealing Station = "sealing"

	// StationSleeveQC is the terminal quality-control station for packaging orders.
	StationSleeveQC Station = "sleeve-qc"

	// StationLayering is the only optional station: it follows sleeve QC when
	// the order's graphics spec flags layering as required.
	StationLayering Station = "layering"
)

// StationInfo carries the static metadata of a station.
type StationInfo struct {
	ID       Station
	Name     string
	Category Category
	Step     int
	IsFinal  bool
	Optional bool
}

func getStationTable() map[Station]StationInfo {
	return map[Station]StationInfo{
		StationPrimaryPress: {
			ID: StationPrimaryPress, Name: "Primary Press Operator",
			Category: CategoryLabel, Step: 1,
		},
		StationLabelQC: {
			ID: StationLabelQC, Name: "Quality Control (Label)",
			Category: CategoryLabel, Step: 2, IsFinal: true,
		},
		StationPrimaryPressPackaging: {
			ID: StationPrimaryPressPackaging, Name: "Primary Press Operator",
			Category: CategoryPackaging, Step: 1,
		},
		StationHybridOperator: {
			ID: StationHybridOperator, Name: "Hybrid Operator",
			Category: CategoryPackaging, Step: 1,
		},
		StationSealing: {
			ID: StationSealing, Name: "Sealing",
			Category: CategoryPackaging, Step: 2,
		},
		StationSleeveQC: {
			ID: StationSleeveQC, Name: "Sleeve Quality Control",
			Category: CategoryPackaging, Step: 3, IsFinal: true,
		},
		StationLayering: {
			ID: StationLayering, Name: "Layering",
			Category: CategoryPackaging, Step: 4, Optional: true,
		},
	}
}

// Info returns the static metadata for the station.
// The second return value is false for unknown station ids.
func (s Station) Info() (StationInfo, bool) {
	info, ok := getStationTable()[s]
	return info, ok
}

// Validate checks that the station id exists in the station table.
func (s Station) Validate() error {
	if _, ok := getStationTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"station is invalid",
			fmt.Errorf("%q is not a known station", string(s)),
		)
	}
	return nil
}

// IsFinal reports whether the station is the terminal quality-control step of
// its category. Unknown stations report false.
func (s Station) IsFinal() bool {
	info, ok := s.Info()
	return ok && info.IsFinal
}

// String returns the station id.
func (s Station) String() string {
	return string(s)
}

// StationsForCategory returns the stations belonging to a category, ordered by
// their step in the production path.
func StationsForCategory(c Category) []StationInfo {
	stations := make([]StationInfo, 0)
	for _, info := range getStationTable() {
		if info.Category == c {
			stations = append(stations, info)
		}
	}
	// Insertion sort keeps the path order stable; the table is tiny.
	for i := 1; i < len(stations); i++ {
		for j := i; j > 0 && stations[j].Step < stations[j-1].Step; j-- {
			stations[j], stations[j-1] = stations[j-1], stations[j]
		}
	}
	return stations
}
