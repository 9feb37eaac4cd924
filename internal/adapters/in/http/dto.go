package http

import (
	"time"

	"pressflow/internal/core/application/usecases/queries"
)

// Request bodies. Field validation beyond simple shape checks lives in the
// command constructors; the tags here reject obviously malformed payloads
// before a command is ever built.

type CreateOrderRequest struct {
	OrderNumber string                `json:"orderNumber" validate:"required"`
	Customer    string                `json:"customer" validate:"required"`
	Product     string                `json:"product" validate:"required"`
	Category    string                `json:"category" validate:"required"`
	Quantity    int                   `json:"quantity" validate:"gte=0"`
	Variants    []OrderVariantRequest `json:"variants" validate:"dive"`
}

type OrderVariantRequest struct {
	Name  string `json:"name" validate:"required"`
	Units int    `json:"units" validate:"gt=0"`
}

type SubmitGraphicsSpecRequest struct {
	Machine          string  `json:"machine" validate:"required"`
	ColorPlan        string  `json:"colorPlan"`
	PrintType        string  `json:"printType"`
	StepMm           float64 `json:"stepMm" validate:"gt=0"`
	NetMeterage      float64 `json:"netMeterage" validate:"gt=0"`
	PaperWidthCm     float64 `json:"paperWidthCm" validate:"gt=0"`
	Lamination       string  `json:"lamination"`
	LayeringRequired bool    `json:"layeringRequired"`
	WrapDirection    string  `json:"wrapDirection"`
	Notes            string  `json:"notes"`
}

type SetMaterialStatusRequest struct {
	RawMaterialName  string     `json:"rawMaterialName" validate:"required"`
	MaterialStatus   string     `json:"materialStatus" validate:"required"`
	WasteRatePercent float64    `json:"wasteRatePercent" validate:"gte=0"`
	SlicingDate      *time.Time `json:"slicingDate"`
}

type PlanOrderRequest struct {
	Date            time.Time `json:"date" validate:"required"`
	StartHour       string    `json:"startHour" validate:"required"`
	DurationHours   int       `json:"durationHours" validate:"gt=0"`
	StationSequence []string  `json:"stationSequence" validate:"required,min=1,dive,required"`
}

type SubmitStationRecordRequest struct {
	Station        string    `json:"station" validate:"required"`
	Operator       string    `json:"operator" validate:"required"`
	StartedAt      time.Time `json:"startedAt" validate:"required"`
	EndedAt        time.Time `json:"endedAt" validate:"required"`
	InputMeterage  float64   `json:"inputMeterage" validate:"gt=0"`
	OutputMeterage float64   `json:"outputMeterage" validate:"gte=0"`
	OutputQuantity *int      `json:"outputQuantity" validate:"omitempty,gte=0"`
	Notes          string    `json:"notes"`
}

type SetShipmentStatusRequest struct {
	Sent bool `json:"sent"`
}

type IntakeRollRequest struct {
	MaterialName   string  `json:"materialName" validate:"required"`
	SupplierName   string  `json:"supplierName" validate:"required"`
	SupplierPrefix string  `json:"supplierPrefix" validate:"required"`
	WidthCm        float64 `json:"widthCm" validate:"gt=0"`
	Length         float64 `json:"length" validate:"gt=0"`
	IsJumbo        bool    `json:"isJumbo"`
}

type SliceRollRequest struct {
	Cuts []SliceCutRequest `json:"cuts" validate:"required,min=1,dive"`
}

type SliceCutRequest struct {
	WidthCm float64 `json:"widthCm" validate:"gt=0"`
	// Length is optional; a zero length inherits the parent's remaining length.
	Length float64 `json:"length" validate:"gte=0"`
}

type ReserveRollRequest struct {
	OrderID string  `json:"orderId" validate:"required,uuid"`
	Length  float64 `json:"length" validate:"gt=0"`
}

// Response bodies.

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type OrderResponse struct {
	ID            string                  `json:"id"`
	OrderNumber   string                  `json:"orderNumber"`
	Customer      string                  `json:"customer"`
	Product       string                  `json:"product"`
	Category      string                  `json:"category"`
	QuantityUnits int                     `json:"quantityUnits"`
	Status        string                  `json:"status"`
	RevisionAlert string                  `json:"revisionAlert,omitempty"`
	ShipmentSent  bool                    `json:"shipmentSent"`
	CreatedAt     time.Time               `json:"createdAt"`
	StationLog    []StationRecordResponse `json:"stationLog"`
	FireSummary   FireSummaryResponse     `json:"fireSummary"`
}

type StationRecordResponse struct {
	Station        string    `json:"station"`
	StationName    string    `json:"stationName"`
	Operator       string    `json:"operator"`
	StartedAt      time.Time `json:"startedAt"`
	EndedAt        time.Time `json:"endedAt"`
	InputMeterage  string    `json:"inputMeterage"`
	OutputMeterage string    `json:"outputMeterage"`
	OutputQuantity *int      `json:"outputQuantity,omitempty"`
	FirePercent    float64   `json:"firePercent"`
	Notes          string    `json:"notes,omitempty"`
}

type FireSummaryResponse struct {
	Outcome      string  `json:"outcome"`
	ExpectedQty  int     `json:"expectedQty"`
	ActualQty    int     `json:"actualQty"`
	DeltaPercent float64 `json:"deltaPercent"`
}

type OrderQueueItemResponse struct {
	ID            string    `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	Customer      string    `json:"customer"`
	Product       string    `json:"product"`
	Category      string    `json:"category"`
	QuantityUnits int       `json:"quantityUnits"`
	RevisionAlert string    `json:"revisionAlert,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type RollResponse struct {
	ID                  string    `json:"id"`
	Barcode             string    `json:"barcode"`
	MaterialName        string    `json:"materialName"`
	SupplierName        string    `json:"supplierName"`
	WidthCm             float64   `json:"widthCm"`
	OriginalLength      string    `json:"originalLength"`
	CurrentLength       string    `json:"currentLength"`
	IsJumbo             bool      `json:"isJumbo"`
	IsSliced            bool      `json:"isSliced"`
	ParentBarcode       string    `json:"parentBarcode,omitempty"`
	ReservedOrderNumber string    `json:"reservedOrderNumber,omitempty"`
	ReservedLength      string    `json:"reservedLength,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

type StockMovementResponse struct {
	ID               string    `json:"id"`
	MovementType     string    `json:"movementType"`
	RollBarcode      string    `json:"rollBarcode"`
	MaterialName     string    `json:"materialName"`
	Quantity         string    `json:"quantity"`
	ReturnedQuantity string    `json:"returnedQuantity"`
	OrderNumber      string    `json:"orderNumber,omitempty"`
	Description      string    `json:"description,omitempty"`
	OccurredAt       time.Time `json:"occurredAt"`
}

type DurationEstimateResponse struct {
	DurationHours int `json:"durationHours"`
}

func toOrderResponse(r queries.GetOrderQueryResponse) OrderResponse {
	log := make([]StationRecordResponse, 0, len(r.StationLog))
	for _, entry := range r.StationLog {
		log = append(log, StationRecordResponse{
			Station:        entry.Station,
			StationName:    entry.StationName,
			Operator:       entry.Operator,
			StartedAt:      entry.StartedAt,
			EndedAt:        entry.EndedAt,
			InputMeterage:  entry.InputMeterage,
			OutputMeterage: entry.OutputMeterage,
			OutputQuantity: entry.OutputQuantity,
			FirePercent:    entry.FirePercent,
			Notes:          entry.Notes,
		})
	}

	return OrderResponse{
		ID:            r.ID.String(),
		OrderNumber:   r.OrderNumber,
		Customer:      r.Customer,
		Product:       r.Product,
		Category:      r.Category,
		QuantityUnits: r.QuantityUnits,
		Status:        r.Status,
		RevisionAlert: r.RevisionAlert,
		ShipmentSent:  r.ShipmentSent,
		CreatedAt:     r.CreatedAt,
		StationLog:    log,
		FireSummary: FireSummaryResponse{
			Outcome:      r.FireSummary.Outcome.String(),
			ExpectedQty:  r.FireSummary.ExpectedQty,
			ActualQty:    r.FireSummary.ActualQty,
			DeltaPercent: r.FireSummary.DeltaPercent,
		},
	}
}

func toOrderQueueResponse(rows []queries.GetOrdersByStatusQueryResponse) []OrderQueueItemResponse {
	response := make([]OrderQueueItemResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, OrderQueueItemResponse{
			ID:            row.ID.String(),
			OrderNumber:   row.OrderNumber,
			Customer:      row.Customer,
			Product:       row.Product,
			Category:      row.Category,
			QuantityUnits: row.QuantityUnits,
			RevisionAlert: row.RevisionAlert,
			CreatedAt:     row.CreatedAt,
		})
	}
	return response
}

func toRollsResponse(rows []queries.GetRollsByMaterialQueryResponse) []RollResponse {
	response := make([]RollResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, RollResponse{
			ID:                  row.ID.String(),
			Barcode:             row.Barcode,
			MaterialName:        row.MaterialName,
			SupplierName:        row.SupplierName,
			WidthCm:             row.WidthCm,
			OriginalLength:      row.OriginalLength,
			CurrentLength:       row.CurrentLength,
			IsJumbo:             row.IsJumbo,
			IsSliced:            row.IsSliced,
			ParentBarcode:       row.ParentBarcode,
			ReservedOrderNumber: row.ReservedOrderNumber,
			ReservedLength:      row.ReservedLength,
			CreatedAt:           row.CreatedAt,
		})
	}
	return response
}

func toStockMovementsResponse(rows []queries.GetStockMovementsQueryResponse) []StockMovementResponse {
	response := make([]StockMovementResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, StockMovementResponse{
			ID:               row.ID.String(),
			MovementType:     row.MovementType,
			RollBarcode:      row.RollBarcode,
			MaterialName:     row.MaterialName,
			Quantity:         row.Quantity,
			ReturnedQuantity: row.ReturnedQuantity,
			OrderNumber:      row.OrderNumber,
			Description:      row.Description,
			OccurredAt:       row.OccurredAt,
		})
	}
	return response
}
