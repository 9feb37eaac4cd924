// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The graphics spec, material plan, schedule and station log are nested value
// objects and live in jsonb columns; the header fields stay relational so the
// read side can filter and sort without unpacking JSON.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber   string    `gorm:"uniqueIndex"`
	Customer      string
	Product       string
	Category      int
	QuantityUnits int
	Variants      []byte `gorm:"type:jsonb"`
	Status        int    `gorm:"index"`
	GraphicsSpec  []byte `gorm:"type:jsonb"`
	MaterialPlan  []byte `gorm:"type:jsonb"`
	ScheduledPlan []byte `gorm:"type:jsonb"`
	StationLog    []byte `gorm:"type:jsonb"`
	RevisionAlert string
	ShipmentSent  bool
	CreatedAt     time.Time
	Version       int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

type variantJSON struct {
	Name  string `json:"name"`
	Units int    `json:"units"`
}

type graphicsSpecJSON struct {
	Machine          string  `json:"machine"`
	ColorPlan        string  `json:"colorPlan,omitempty"`
	PrintType        string  `json:"printType,omitempty"`
	StepMm           float64 `json:"stepMm,omitempty"`
	NetMeterage      float64 `json:"netMeterage"`
	PaperWidthCm     float64 `json:"paperWidthCm"`
	Lamination       string  `json:"lamination,omitempty"`
	LayeringRequired bool    `json:"layeringRequired,omitempty"`
	WrapDirection    string  `json:"wrapDirection,omitempty"`
	Notes            string  `json:"notes,omitempty"`
}

type reservationRefJSON struct {
	RollID      uuid.UUID `json:"rollId"`
	RollBarcode string    `json:"rollBarcode"`
	Length      float64   `json:"length"`
	ReservedAt  time.Time `json:"reservedAt"`
}

type materialPlanJSON struct {
	RawMaterialName  string               `json:"rawMaterialName"`
	MaterialStatus   string               `json:"materialStatus"`
	WasteRatePercent float64              `json:"wasteRatePercent"`
	IssuedMeterage   float64              `json:"issuedMeterage"`
	SlicingDate      *time.Time           `json:"slicingDate,omitempty"`
	ReservedRolls    []reservationRefJSON `json:"reservedRolls"`
}

type scheduledPlanJSON struct {
	Date            time.Time `json:"date"`
	StartHour       string    `json:"startHour"`
	DurationHours   int       `json:"durationHours"`
	StationSequence []string  `json:"stationSequence"`
}

type stationRecordJSON struct {
	Station        string    `json:"station"`
	Operator       string    `json:"operator"`
	StartedAt      time.Time `json:"startedAt"`
	EndedAt        time.Time `json:"endedAt"`
	InputMeterage  float64   `json:"inputMeterage"`
	OutputMeterage float64   `json:"outputMeterage"`
	OutputQuantity *int      `json:"outputQuantity,omitempty"`
	Notes          string    `json:"notes,omitempty"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	dto := OrderDTO{
		ID:            aggregate.ID().Bytes(),
		OrderNumber:   aggregate.OrderNumber(),
		Customer:      aggregate.Customer(),
		Product:       aggregate.Product(),
		Category:      int(aggregate.Category()),
		QuantityUnits: aggregate.Quantity().Units(),
		Status:        int(aggregate.Status()),
		RevisionAlert: aggregate.RevisionAlert(),
		ShipmentSent:  aggregate.ShipmentSent(),
		CreatedAt:     aggregate.CreatedAt(),
		Version:       aggregate.Version(),
	}

	if variants := aggregate.Quantity().Variants(); len(variants) > 0 {
		rows := make([]variantJSON, 0, len(variants))
		for _, v := range variants {
			rows = append(rows, variantJSON{Name: v.Name, Units: v.Units})
		}
		raw, err := json.Marshal(rows)
		if err != nil {
			return OrderDTO{}, err
		}
		dto.Variants = raw
	}

	if spec := aggregate.GraphicsSpec(); spec != nil {
		raw, err := json.Marshal(graphicsSpecJSON{
			Machine:          spec.Machine().String(),
			ColorPlan:        spec.ColorPlan(),
			PrintType:        spec.PrintType(),
			StepMm:           spec.StepMm(),
			NetMeterage:      spec.NetMeterage().Float64(),
			PaperWidthCm:     spec.PaperWidthCm(),
			Lamination:       spec.Lamination(),
			LayeringRequired: spec.LayeringRequired(),
			WrapDirection:    spec.WrapDirection(),
			Notes:            spec.Notes(),
		})
		if err != nil {
			return OrderDTO{}, err
		}
		dto.GraphicsSpec = raw
	}

	if plan := aggregate.MaterialPlan(); plan != nil {
		reserved := make([]reservationRefJSON, 0)
		for _, ref := range plan.ReservedRolls() {
			reserved = append(reserved, reservationRefJSON{
				RollID:      ref.RollID.Bytes(),
				RollBarcode: ref.RollBarcode,
				Length:      ref.Length.Float64(),
				ReservedAt:  ref.ReservedAt,
			})
		}
		raw, err := json.Marshal(materialPlanJSON{
			RawMaterialName:  plan.RawMaterialName(),
			MaterialStatus:   plan.MaterialStatus().String(),
			WasteRatePercent: plan.WasteRatePercent(),
			IssuedMeterage:   plan.IssuedMeterage().Float64(),
			SlicingDate:      plan.SlicingDate(),
			ReservedRolls:    reserved,
		})
		if err != nil {
			return OrderDTO{}, err
		}
		dto.MaterialPlan = raw
	}

	if schedule := aggregate.ScheduledPlan(); schedule != nil {
		sequence := make([]string, 0)
		for _, s := range schedule.StationSequence() {
			sequence = append(sequence, string(s))
		}
		raw, err := json.Marshal(scheduledPlanJSON{
			Date:            schedule.Date(),
			StartHour:       schedule.StartHour(),
			DurationHours:   schedule.DurationHours(),
			StationSequence: sequence,
		})
		if err != nil {
			return OrderDTO{}, err
		}
		dto.ScheduledPlan = raw
	}

	log := make([]stationRecordJSON, 0)
	for _, record := range aggregate.StationLog() {
		log = append(log, stationRecordJSON{
			Station:        string(record.Station()),
			Operator:       record.Operator(),
			StartedAt:      record.StartedAt(),
			EndedAt:        record.EndedAt(),
			InputMeterage:  record.InputMeterage().Float64(),
			OutputMeterage: record.OutputMeterage().Float64(),
			OutputQuantity: record.OutputQuantity(),
			Notes:          record.Notes(),
		})
	}
	raw, err := json.Marshal(log)
	if err != nil {
		return OrderDTO{}, err
	}
	dto.StationLog = raw

	return dto, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the nested value objects
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	quantity, err := toQuantity(dto)
	if err != nil {
		return nil, err
	}
	graphicsSpec, err := toGraphicsSpec(dto.GraphicsSpec)
	if err != nil {
		return nil, err
	}
	materialPlan, err := toMaterialPlan(dto.MaterialPlan)
	if err != nil {
		return nil, err
	}
	scheduledPlan, err := toScheduledPlan(dto.ScheduledPlan)
	if err != nil {
		return nil, err
	}
	stationLog, err := toStationLog(dto.StationLog)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		dto.Customer,
		dto.Product,
		order.Category(dto.Category),
		quantity,
		order.Status(dto.Status),
		graphicsSpec,
		materialPlan,
		scheduledPlan,
		stationLog,
		dto.RevisionAlert,
		dto.ShipmentSent,
		dto.CreatedAt,
		dto.Version,
	)
}

func toQuantity(dto OrderDTO) (order.Quantity, error) {
	if len(dto.Variants) == 0 {
		return order.NewQuantity(dto.QuantityUnits)
	}

	var rows []variantJSON
	if err := json.Unmarshal(dto.Variants, &rows); err != nil {
		return order.Quantity{}, err
	}
	variants := make([]order.Variant, 0, len(rows))
	for _, row := range rows {
		variants = append(variants, order.Variant{Name: row.Name, Units: row.Units})
	}
	return order.NewQuantityFromVariants(variants)
}

func toGraphicsSpec(raw []byte) (*order.GraphicsSpec, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var row graphicsSpecJSON
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, err
	}

	machine, err := order.MachineFromString(row.Machine)
	if err != nil {
		return nil, err
	}
	netMeterage, err := kernel.NewMeterage(row.NetMeterage)
	if err != nil {
		return nil, err
	}

	spec, err := order.NewGraphicsSpec(
		machine, row.ColorPlan, row.PrintType, row.StepMm, netMeterage,
		row.PaperWidthCm, row.Lamination, row.LayeringRequired, row.WrapDirection, row.Notes)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func toMaterialPlan(raw []byte) (*order.MaterialPlan, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var row materialPlanJSON
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, err
	}

	materialStatus, err := order.MaterialStatusFromString(row.MaterialStatus)
	if err != nil {
		return nil, err
	}
	issuedMeterage, err := kernel.NewMeterage(row.IssuedMeterage)
	if err != nil {
		return nil, err
	}

	reserved := make([]order.ReservationRef, 0, len(row.ReservedRolls))
	for _, ref := range row.ReservedRolls {
		rollID, refErr := kernel.UUIDFromBytes(ref.RollID[:])
		if refErr != nil {
			return nil, refErr
		}
		length, refErr := kernel.NewMeterage(ref.Length)
		if refErr != nil {
			return nil, refErr
		}
		reserved = append(reserved, order.ReservationRef{
			RollID:      rollID,
			RollBarcode: ref.RollBarcode,
			Length:      length,
			ReservedAt:  ref.ReservedAt,
		})
	}

	plan, err := order.RestoreMaterialPlan(
		row.RawMaterialName, materialStatus, row.WasteRatePercent,
		issuedMeterage, row.SlicingDate, reserved)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func toScheduledPlan(raw []byte) (*order.ScheduledPlan, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var row scheduledPlanJSON
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, err
	}

	sequence := make([]order.Station, 0, len(row.StationSequence))
	for _, s := range row.StationSequence {
		sequence = append(sequence, order.Station(s))
	}

	plan, err := order.NewScheduledPlan(row.Date, row.StartHour, row.DurationHours, sequence)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func toStationLog(raw []byte) ([]order.StationRecord, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var rows []stationRecordJSON
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}

	log := make([]order.StationRecord, 0, len(rows))
	for _, row := range rows {
		input, err := kernel.NewMeterage(row.InputMeterage)
		if err != nil {
			return nil, err
		}
		output, err := kernel.NewMeterage(row.OutputMeterage)
		if err != nil {
			return nil, err
		}
		record, err := order.NewStationRecord(
			order.Station(row.Station), row.Operator, row.StartedAt, row.EndedAt,
			input, output, row.OutputQuantity, row.Notes)
		if err != nil {
			return nil, err
		}
		log = append(log, record)
	}
	return log, nil
}
