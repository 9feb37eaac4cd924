// Package http is the inbound HTTP adapter: an echo server translating REST
// calls into commands and queries. It owns request decoding, shape validation
// and the mapping of domain errors onto status codes; all business rules stay
// behind the command and query handlers.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"pressflow/internal/core/application/usecases/commands"
	"pressflow/internal/core/application/usecases/queries"
	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/order"
	"pressflow/internal/core/domain/model/roll"
	"pressflow/internal/core/domain/model/stock"
	"pressflow/internal/core/ports"
	"pressflow/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call ctx.Validate on bound request bodies.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used by the server.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	submitGraphicsSpecHandler  commands.SubmitGraphicsSpecCommandHandler
	setMaterialStatusHandler   commands.SetMaterialStatusCommandHandler
	planOrderHandler           commands.PlanOrderCommandHandler
	submitStationRecordHandler commands.SubmitStationRecordCommandHandler
	setShipmentStatusHandler   commands.SetShipmentStatusCommandHandler
	intakeRollHandler          commands.IntakeRollCommandHandler
	sliceRollHandler           commands.SliceRollCommandHandler
	reserveRollHandler         commands.ReserveRollCommandHandler
	releaseReservationHandler  commands.ReleaseRollReservationCommandHandler

	// Query handlers
	getOrderHandler           queries.GetOrderQueryHandler
	getOrdersByStatusHandler  queries.GetOrdersByStatusQueryHandler
	getRollsByMaterialHandler queries.GetRollsByMaterialQueryHandler
	getStockMovementsHandler  queries.GetStockMovementsQueryHandler

	// Advisory planning aid; may be nil when not configured.
	durationAdvisor ports.DurationAdvisor
}

// NewServer creates a new HTTP server with the required command and query
// handlers. The duration advisor is optional; pass nil to disable the
// planning estimate endpoint.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	submitGraphicsSpecHandler commands.SubmitGraphicsSpecCommandHandler,
	setMaterialStatusHandler commands.SetMaterialStatusCommandHandler,
	planOrderHandler commands.PlanOrderCommandHandler,
	submitStationRecordHandler commands.SubmitStationRecordCommandHandler,
	setShipmentStatusHandler commands.SetShipmentStatusCommandHandler,
	intakeRollHandler commands.IntakeRollCommandHandler,
	sliceRollHandler commands.SliceRollCommandHandler,
	reserveRollHandler commands.ReserveRollCommandHandler,
	releaseReservationHandler commands.ReleaseRollReservationCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getRollsByMaterialHandler queries.GetRollsByMaterialQueryHandler,
	getStockMovementsHandler queries.GetStockMovementsQueryHandler,
	durationAdvisor ports.DurationAdvisor,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		submitGraphicsSpecHandler:  submitGraphicsSpecHandler,
		setMaterialStatusHandler:   setMaterialStatusHandler,
		planOrderHandler:           planOrderHandler,
		submitStationRecordHandler: submitStationRecordHandler,
		setShipmentStatusHandler:   setShipmentStatusHandler,
		intakeRollHandler:          intakeRollHandler,
		sliceRollHandler:           sliceRollHandler,
		reserveRollHandler:         reserveRollHandler,
		releaseReservationHandler:  releaseReservationHandler,
		getOrderHandler:            getOrderHandler,
		getOrdersByStatusHandler:   getOrdersByStatusHandler,
		getRollsByMaterialHandler:  getRollsByMaterialHandler,
		getStockMovementsHandler:   getStockMovementsHandler,
		durationAdvisor:            durationAdvisor,
	}
}

// RegisterRoutes wires the API routes onto the echo instance and installs the
// request validator.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	api := e.Group("/api/v1")

	api.POST("/orders", s.createOrder)
	api.GET("/orders", s.getOrdersByStatus)
	api.GET("/orders/:orderId", s.getOrder)
	api.GET("/orders/:orderId/duration-estimate", s.estimateDuration)
	api.POST("/orders/:orderId/graphics", s.submitGraphicsSpec)
	api.POST("/orders/:orderId/material-status", s.setMaterialStatus)
	api.POST("/orders/:orderId/plan", s.planOrder)
	api.POST("/orders/:orderId/stations", s.submitStationRecord)
	api.PUT("/orders/:orderId/shipment", s.setShipmentStatus)

	api.POST("/rolls", s.intakeRoll)
	api.GET("/rolls", s.getRollsByMaterial)
	api.POST("/rolls/:rollId/slice", s.sliceRoll)
	api.POST("/rolls/:rollId/reserve", s.reserveRoll)
	api.DELETE("/rolls/:rollId/reservation", s.releaseReservation)

	api.GET("/stock-movements", s.getStockMovements)
}

// createOrder handles POST /api/v1/orders.
func (s *Server) createOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return errorJSON(ctx, err)
	}

	category, err := order.CategoryFromString(req.Category)
	if err != nil {
		return errorJSON(ctx, err)
	}

	variants := make([]commands.OrderVariantInput, 0, len(req.Variants))
	for _, v := range req.Variants {
		variants = append(variants, commands.OrderVariantInput{Name: v.Name, Units: v.Units})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, req.OrderNumber, req.Customer, req.Product, category, req.Quantity, variants)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// getOrder handles GET /api/v1/orders/:orderId.
func (s *Server) getOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(result))
}

// getOrdersByStatus handles GET /api/v1/orders?status=.
func (s *Server) getOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderQueueResponse(result))
}

// estimateDuration handles GET /api/v1/orders/:orderId/duration-estimate.
// The estimate is advisory; when no advisor is configured the endpoint
// reports that instead of failing planning flows.
func (s *Server) estimateDuration(ctx echo.Context) error {
	if s.durationAdvisor == nil {
		return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "duration advisor is not configured",
		})
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	description := fmt.Sprintf(
		"product %q, category %s, quantity %d units",
		detail.Product, detail.Category, detail.QuantityUnits)
	hours, err := s.durationAdvisor.EstimateDurationHours(ctx.Request().Context(), description)
	if err != nil {
		return ctx.JSON(http.StatusBadGateway, ErrorResponse{
			Code:    http.StatusBadGateway,
			Message: "duration estimate unavailable",
		})
	}

	return ctx.JSON(http.StatusOK, DurationEstimateResponse{DurationHours: hours})
}

// submitGraphicsSpec handles POST /api/v1/orders/:orderId/graphics.
func (s *Server) submitGraphicsSpec(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req SubmitGraphicsSpecRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return errorJSON(ctx, err)
	}

	machine, err := order.MachineFromString(req.Machine)
	if err != nil {
		return errorJSON(ctx, err)
	}

	netMeterage, err := kernel.NewMeterage(req.NetMeterage)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewSubmitGraphicsSpecCommand(
		orderID, machine, req.ColorPlan, req.PrintType, req.StepMm, netMeterage,
		req.PaperWidthCm, req.Lamination, req.LayeringRequired, req.WrapDirection, req.Notes)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.submitGraphicsSpecHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// setMaterialStatus handles POST /api/v1/orders/:orderId/material-status.
func (s *Server) setMaterialStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req SetMaterialStatusRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return errorJSON(ctx, err)
	}

	materialStatus, err := order.MaterialStatusFromString(req.MaterialStatus)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewSetMaterialStatusCommand(
		orderID, req.RawMaterialName, materialStatus, req.WasteRatePercent, req.SlicingDate)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.setMaterialStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// planOrder handles POST /api/v1/orders/:orderId/plan.
func (s *Server) planOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req PlanOrderRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return errorJSON(ctx, err)
	}

	sequence := make([]order.Station, 0, len(req.StationSequence))
	for _, station := range req.StationSequence {
		sequence = append(sequence, order.Station(station))
	}

	cmd, err := commands.NewPlanOrderCommand(
		orderID, req.Date, req.StartHour, req.DurationHours, sequence)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.planOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// submitStationRecord handles POST /api/v1/orders/:orderId/stations.
func (s *Server) submitStationRecord(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req SubmitStationRecordRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return errorJSON(ctx, err)
	}

	inputMeterage, err := kernel.NewMeterage(req.InputMeterage)
	if err != nil {
		return errorJSON(ctx, err)
	}
	outputMeterage, err := kernel.NewMeterage(req.OutputMeterage)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewSubmitStationRecordCommand(
		orderID, order.Station(req.Station), req.Operator, req.StartedAt, req.EndedAt,
		inputMeterage, outputMeterage, req.OutputQuantity, req.Notes)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.submitStationRecordHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// setShipmentStatus handles PUT /api/v1/orders/:orderId/shipment.
func (s *Server) setShipmentStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req SetShipmentStatusRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewSetShipmentStatusCommand(orderID, req.Sent)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.setShipmentStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// intakeRoll handles POST /api/v1/rolls.
func (s *Server) intakeRoll(ctx echo.Context) error {
	var req IntakeRollRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return errorJSON(ctx, err)
	}

	length, err := kernel.NewMeterage(req.Length)
	if err != nil {
		return errorJSON(ctx, err)
	}

	rollID := kernel.NewUUID()
	cmd, err := commands.NewIntakeRollCommand(
		rollID, req.MaterialName, req.SupplierName, req.SupplierPrefix,
		req.WidthCm, length, req.IsJumbo)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.intakeRollHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: rollID.String()})
}

// getRollsByMaterial handles GET /api/v1/rolls?material=&availableOnly=.
func (s *Server) getRollsByMaterial(ctx echo.Context) error {
	availableOnly := ctx.QueryParam("availableOnly") == "true"

	query, err := queries.NewGetRollsByMaterialQuery(ctx.QueryParam("material"), availableOnly)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.getRollsByMaterialHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRollsResponse(result))
}

// sliceRoll handles POST /api/v1/rolls/:rollId/slice.
func (s *Server) sliceRoll(ctx echo.Context) error {
	rollID, err := pathUUID(ctx, "rollId")
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req SliceRollRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return errorJSON(ctx, err)
	}

	cuts := make([]roll.Cut, 0, len(req.Cuts))
	for _, cut := range req.Cuts {
		length := kernel.ZeroMeterage()
		if cut.Length > 0 {
			if length, err = kernel.NewMeterage(cut.Length); err != nil {
				return errorJSON(ctx, err)
			}
		}
		cuts = append(cuts, roll.Cut{WidthCm: cut.WidthCm, Length: length})
	}

	cmd, err := commands.NewSliceRollCommand(rollID, cuts)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.sliceRollHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// reserveRoll handles POST /api/v1/rolls/:rollId/reserve.
func (s *Server) reserveRoll(ctx echo.Context) error {
	rollID, err := pathUUID(ctx, "rollId")
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req ReserveRollRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return errorJSON(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return errorJSON(ctx, errs.NewValueIsInvalidErrorWithCause("orderId is invalid", err))
	}

	length, err := kernel.NewMeterage(req.Length)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewReserveRollCommand(orderID, rollID, length)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.reserveRollHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// releaseReservation handles DELETE /api/v1/rolls/:rollId/reservation.
func (s *Server) releaseReservation(ctx echo.Context) error {
	rollID, err := pathUUID(ctx, "rollId")
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewReleaseRollReservationCommand(rollID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.releaseReservationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// getStockMovements handles GET /api/v1/stock-movements with optional
// type, rollBarcode, material, orderNumber and limit filters.
func (s *Server) getStockMovements(ctx echo.Context) error {
	movementType := stock.MovementTypeUnknown
	if typeParam := ctx.QueryParam("type"); typeParam != "" {
		parsed, err := stock.MovementTypeFromString(typeParam)
		if err != nil {
			return errorJSON(ctx, err)
		}
		movementType = parsed
	}

	limit := 0
	if limitParam := ctx.QueryParam("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 0 {
			return errorJSON(ctx, errs.NewValueIsInvalidError("limit is invalid"))
		}
		limit = parsed
	}

	query, err := queries.NewGetStockMovementsQuery(
		movementType,
		ctx.QueryParam("rollBarcode"),
		ctx.QueryParam("material"),
		ctx.QueryParam("orderNumber"),
		limit)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.getStockMovementsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStockMovementsResponse(result))
}

func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body is invalid", err)
	}
	if err := ctx.Validate(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body is invalid", err)
	}
	return nil
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name+" is invalid", err)
	}
	return id, nil
}

// errorJSON maps an application error onto an HTTP status code: lookups that
// found nothing are 404, state and inventory conflicts are 409, invalid input
// is 400 and everything else is a 500.
func errorJSON(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, roll.ErrRollAlreadyReserved),
		errors.Is(err, roll.ErrInsufficientLength),
		errors.Is(err, roll.ErrNoActiveReservation),
		errors.Is(err, roll.ErrRollIsSliced),
		errors.Is(err, roll.ErrRollIsNotJumbo),
		errors.Is(err, roll.ErrWidthExceeded),
		errors.Is(err, order.ErrStationOutOfSequence),
		errors.Is(err, order.ErrOrderIsImmutable),
		errors.Is(err, errs.ErrVersionIsInvalid):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}
