package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/order"
	"pressflow/internal/core/domain/services"
	"pressflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// stationLogRow mirrors one station log entry as persisted in the orders
// table's station_log column.
type stationLogRow struct {
	Station        string    `json:"station"`
	Operator       string    `json:"operator"`
	StartedAt      time.Time `json:"startedAt"`
	EndedAt        time.Time `json:"endedAt"`
	InputMeterage  float64   `json:"inputMeterage"`
	OutputMeterage float64   `json:"outputMeterage"`
	OutputQuantity *int      `json:"outputQuantity,omitempty"`
	Notes          string    `json:"notes,omitempty"`
}

// GetOrderQueryHandler retrieves one order's detail view from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern;
// fire percentages and the fire summary are computed at read time.
type GetOrderQueryHandler struct {
	db    *gorm.DB
	waste services.WasteCalculator
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, waste: services.NewWasteCalculator()}
}

// Handle executes the query to retrieve the order detail view.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		resp       GetOrderQueryResponse
		id         uuid.UUID
		category   int
		status     int
		stationLog []byte
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer,
			product,
			category,
			quantity_units,
			status,
			station_log,
			revision_alert,
			shipment_sent,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&resp.Customer,
		&resp.Product,
		&category,
		&resp.QuantityUnits,
		&status,
		&stationLog,
		&resp.RevisionAlert,
		&resp.ShipmentSent,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID
	resp.Category = order.Category(category).String()
	resp.Status = order.Status(status).String()

	log, finalQty, err := h.buildStationLog(stationLog)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.StationLog = log
	resp.FireSummary = h.waste.OrderFireSummary(resp.QuantityUnits, finalQty)

	return resp, nil
}

// buildStationLog decodes the persisted station log and enriches each entry
// with its fire percentage. Returns the finished output quantity found on the
// terminal station, zero when production has no output yet.
func (h GetOrderQueryHandler) buildStationLog(raw []byte) ([]StationRecordReadModel, int, error) {
	models := make([]StationRecordReadModel, 0)
	if len(raw) == 0 {
		return models, 0, nil
	}

	var rows []stationLogRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, 0, err
	}

	finalQty := 0
	for _, r := range rows {
		input, err := kernel.NewMeterage(r.InputMeterage)
		if err != nil {
			return nil, 0, err
		}
		output, err := kernel.NewMeterage(r.OutputMeterage)
		if err != nil {
			return nil, 0, err
		}

		model := StationRecordReadModel{
			Station:        r.Station,
			StationName:    r.Station,
			Operator:       r.Operator,
			StartedAt:      r.StartedAt,
			EndedAt:        r.EndedAt,
			InputMeterage:  input.String(),
			OutputMeterage: output.String(),
			OutputQuantity: r.OutputQuantity,
			FirePercent:    h.waste.StationFirePercent(input, output),
			Notes:          r.Notes,
		}
		if info, ok := order.Station(r.Station).Info(); ok {
			model.StationName = info.Name
		}
		if r.OutputQuantity != nil {
			finalQty = *r.OutputQuantity
		}
		models = append(models, model)
	}

	return models, finalQty, nil
}
