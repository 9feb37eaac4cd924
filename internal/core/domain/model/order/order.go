package order

import (
	"errors"
	"fmt"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsImmutable is returned when a department tries to edit an order
	// in a terminal state. Only the shipment flip is allowed there.
	ErrOrderIsImmutable = errors.New("order is in a terminal state and cannot be edited")

	// ErrStationOutOfSequence is returned when a station record is submitted
	// for a station other than the next one required by the router, or for a
	// station that does not belong to the order's category.
	ErrStationOutOfSequence = errors.New("station is out of sequence for this order")

	// ErrNoGraphicsSpec is returned when a downstream stage needs the graphics
	// spec before it was submitted.
	ErrNoGraphicsSpec = errors.New("order has no graphics spec yet")

	// ErrNoMaterialPlan is returned when a stage needs the material plan
	// before the warehouse assessed the order.
	ErrNoMaterialPlan = errors.New("order has no material plan yet")
)

// Order is the aggregate root for a manufacturing order. It owns the order's
// status and validates every transition; departments never mutate order state
// directly.
//
// Order follows these invariants:
//   - Status transitions follow the pipeline state machine (see Status)
//   - The station log is append-only and always consistent with the status
//   - Terminal states accept only the shipment flip; retroactive edits of
//     earlier stages raise a revision alert instead of changing status
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id            kernel.UUID
	orderNumber   string
	customer      string
	product       string
	category      Category
	quantity      Quantity
	status        Status
	graphicsSpec  *GraphicsSpec
	materialPlan  *MaterialPlan
	scheduledPlan *ScheduledPlan
	stationLog    []StationRecord
	revisionAlert string
	shipmentSent  bool
	createdAt     time.Time

	// version supports optimistic concurrency in the repository: a second
	// writer racing on the same order loses the conditional update.
	version int

	guard kernel.ConstructorGuard
}

// NewOrder creates a new Order in GraphicsPending status.
//
// The order number is the human-facing sequential code assigned by marketing
// and must be unique across the system; uniqueness is enforced by persistence.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customer string,
	product string,
	category Category,
	quantity Quantity,
) (*Order, error) {
	o := &Order{
		status:    GraphicsPending,
		createdAt: time.Now().UTC(),
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomer(customer),
		o.setCategory(category),
		o.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	o.product = product
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its full
// station log and version. It verifies the stored state still satisfies the
// aggregate invariants, in particular that a terminal status is backed by a
// completed station log.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customer string,
	product string,
	category Category,
	quantity Quantity,
	status Status,
	graphicsSpec *GraphicsSpec,
	materialPlan *MaterialPlan,
	scheduledPlan *ScheduledPlan,
	stationLog []StationRecord,
	revisionAlert string,
	shipmentSent bool,
	createdAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomer(customer),
		o.setCategory(category),
		o.setQuantity(quantity),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.product = product
	o.status = status
	o.graphicsSpec = graphicsSpec
	o.materialPlan = materialPlan
	o.scheduledPlan = scheduledPlan
	o.stationLog = make([]StationRecord, len(stationLog))
	copy(o.stationLog, stationLog)
	o.revisionAlert = revisionAlert
	o.shipmentSent = shipmentSent
	o.version = version

	if err := o.checkLogMatchesStatus(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// OrderNumber returns the human-facing sequential code.
func (o *Order) OrderNumber() string { return o.orderNumber }

// Customer returns the customer name.
func (o *Order) Customer() string { return o.customer }

// Product returns the product description.
func (o *Order) Product() string { return o.product }

// Category returns the order category.
func (o *Order) Category() Category { return o.category }

// Quantity returns the ordered quantity.
func (o *Order) Quantity() Quantity { return o.quantity }

// Status returns the current pipeline status.
func (o *Order) Status() Status { return o.status }

// GraphicsSpec returns the technical print spec, nil before graphics submits.
func (o *Order) GraphicsSpec() *GraphicsSpec { return o.graphicsSpec }

// MaterialPlan returns the warehouse material plan, nil before assessment.
func (o *Order) MaterialPlan() *MaterialPlan { return o.materialPlan }

// ScheduledPlan returns the production schedule, nil before planning.
func (o *Order) ScheduledPlan() *ScheduledPlan { return o.scheduledPlan }

// StationLog returns a copy of the append-only station log.
func (o *Order) StationLog() []StationRecord {
	log := make([]StationRecord, len(o.stationLog))
	copy(log, o.stationLog)
	return log
}

// RevisionAlert returns the non-blocking alert set when a downstream-approved
// order was edited retroactively, empty when none.
func (o *Order) RevisionAlert() string { return o.revisionAlert }

// ShipmentSent reports whether the shipment was marked sent.
func (o *Order) ShipmentSent() bool { return o.shipmentSent }

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Version returns the optimistic-concurrency version loaded from persistence.
func (o *Order) Version() int { return o.version }

// SubmitGraphicsSpec stores the technical print specification.
//
// From GraphicsPending this advances the order to WarehouseMaterialPending.
// Resubmitting after the order moved downstream replaces the spec and raises
// a revision alert without touching the status. Terminal orders reject the
// edit with ErrOrderIsImmutable.
func (o *Order) SubmitGraphicsSpec(spec GraphicsSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return ErrOrderIsImmutable
	}

	if o.status == GraphicsPending {
		newStatus, err := o.status.SubmitGraphics()
		if err != nil {
			return err
		}
		o.status = newStatus
	} else {
		o.raiseRevisionAlert("graphics")
	}

	o.graphicsSpec = &spec
	return nil
}

// AssessMaterial records the warehouse's material assessment.
//
// When the material status opens the planning gate (Ready or AwaitingSlicing)
// the order moves to PlanningPending, otherwise to WarehouseProcessing, a
// re-enterable holding state, not a terminal one. Assessing an order that was
// already planned keeps the status and raises a revision alert. Terminal
// orders reject the edit.
func (o *Order) AssessMaterial(plan MaterialPlan) error {
	if err := plan.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return ErrOrderIsImmutable
	}
	if o.status == GraphicsPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s has no graphics spec to assess material against", o.status),
		)
	}

	switch o.status {
	case WarehouseMaterialPending, WarehouseProcessing, PlanningPending:
		newStatus, err := o.status.AssessMaterial(plan.MaterialStatus().OpensPlanningGate())
		if err != nil {
			return err
		}
		o.status = newStatus
	default:
		o.raiseRevisionAlert("warehouse")
	}

	// Reservations already held by the order survive a re-assessment.
	if o.materialPlan != nil {
		plan = plan.restoreReservations(o.materialPlan.reservedRolls)
	}
	o.materialPlan = &plan
	return nil
}

// AddReservation appends a roll reservation reference to the material plan.
// The roll aggregate owns the reservation itself; this keeps the order's view
// of which rolls are set aside for it.
func (o *Order) AddReservation(ref ReservationRef) error {
	if o.status.IsTerminal() {
		return ErrOrderIsImmutable
	}
	if o.materialPlan == nil {
		return ErrNoMaterialPlan
	}
	if err := ref.RollID.Validate(); err != nil {
		return err
	}

	updated := o.materialPlan.withReservation(ref)
	o.materialPlan = &updated
	return nil
}

// FirstReservedRoll returns the oldest reservation reference still held by
// the order. Production consumes reserved rolls first-reserved-first.
func (o *Order) FirstReservedRoll() (ReservationRef, bool) {
	if o.materialPlan == nil || len(o.materialPlan.reservedRolls) == 0 {
		return ReservationRef{}, false
	}
	return o.materialPlan.reservedRolls[0], true
}

// RemoveReservation drops the reference to a roll whose reservation was
// consumed or released.
func (o *Order) RemoveReservation(rollID kernel.UUID) error {
	if o.materialPlan == nil {
		return ErrNoMaterialPlan
	}
	updated := o.materialPlan.withoutReservation(rollID)
	o.materialPlan = &updated
	return nil
}

// AssignSchedule stores the production schedule.
//
// From PlanningPending the order becomes Planned; replanning a Planned order
// is allowed. Rescheduling after production started keeps the status and
// raises a revision alert. Terminal orders reject the edit.
func (o *Order) AssignSchedule(plan ScheduledPlan) error {
	if err := plan.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return ErrOrderIsImmutable
	}

	switch o.status {
	case PlanningPending, Planned:
		newStatus, err := o.status.Plan()
		if err != nil {
			return err
		}
		o.status = newStatus
	case ProductionStarted:
		o.raiseRevisionAlert("planning")
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to plan from", o.status),
		)
	}

	o.scheduledPlan = &plan
	return nil
}

// AppendStationRecord appends a completed-station record to the log and
// advances the status. pathComplete reports whether the station router found
// no further mandatory station after this record.
//
// The record's station must belong to the order's category; a terminal
// station record must carry the finished output quantity. Sequence checking
// against the router's expected next station is the caller's responsibility
// because routing is a domain service.
func (o *Order) AppendStationRecord(record StationRecord, pathComplete bool) error {
	if err := record.Validate(); err != nil {
		return err
	}

	info, ok := record.Station().Info()
	if !ok || info.Category != o.category {
		return ErrStationOutOfSequence
	}
	if info.IsFinal && record.OutputQuantity() == nil {
		return fmt.Errorf("%w: output quantity is required on the final station", ErrIncompleteStationRecord)
	}

	newStatus, err := o.status.RecordStation(pathComplete)
	if err != nil {
		return err
	}

	o.stationLog = append(o.stationLog, record)
	o.status = newStatus
	return nil
}

// SetShipment flips the order between ShippingReady and Completed.
// This is the only mutation allowed in terminal states.
func (o *Order) SetShipment(sent bool) error {
	newStatus, err := o.status.SetShipment(sent)
	if err != nil {
		return err
	}
	o.status = newStatus
	o.shipmentSent = sent
	return nil
}

// FinalOutputQuantity returns the finished unit count recorded on the
// terminal station, or false while production has not produced output yet.
func (o *Order) FinalOutputQuantity() (int, bool) {
	for i := len(o.stationLog) - 1; i >= 0; i-- {
		if qty := o.stationLog[i].OutputQuantity(); qty != nil {
			return *qty, true
		}
	}
	return 0, false
}

func (o *Order) raiseRevisionAlert(department string) {
	o.revisionAlert = fmt.Sprintf("updated retroactively by %s", department)
}

// checkLogMatchesStatus verifies the restored station log is consistent with
// the restored status: production states require matching log lengths and a
// terminal status requires a completed path.
func (o *Order) checkLogMatchesStatus() error {
	switch o.status {
	case GraphicsPending, WarehouseMaterialPending, WarehouseProcessing, PlanningPending, Planned:
		if len(o.stationLog) != 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"stationLog is invalid",
				fmt.Errorf("status %s cannot carry %d station records", o.status, len(o.stationLog)),
			)
		}
	case ProductionStarted:
		if len(o.stationLog) == 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"stationLog is invalid",
				fmt.Errorf("status %s requires at least one station record", o.status),
			)
		}
	case ShippingReady, Completed:
		if len(o.stationLog) == 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"stationLog is invalid",
				fmt.Errorf("status %s requires a completed station log", o.status),
			)
		}
		last := o.stationLog[len(o.stationLog)-1]
		if !last.Station().IsFinal() && !o.plannedSequenceCovered() {
			return errs.NewValueIsInvalidErrorWithCause(
				"stationLog is invalid",
				fmt.Errorf("status %s requires the final station in the log", o.status),
			)
		}
	}
	return nil
}

// plannedSequenceCovered reports whether an explicit planned station sequence
// exists and every station in it appears in the log.
func (o *Order) plannedSequenceCovered() bool {
	if o.scheduledPlan == nil {
		return false
	}
	sequence := o.scheduledPlan.StationSequence()
	if len(o.stationLog) < len(sequence) {
		return false
	}
	for i, s := range sequence {
		if o.stationLog[i].Station() != s {
			return false
		}
	}
	return true
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber is required")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomer(customer string) error {
	if customer == "" {
		return errs.NewValueIsRequiredError("customer is required")
	}
	o.customer = customer
	return nil
}

func (o *Order) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	o.category = category
	return nil
}

func (o *Order) setQuantity(quantity Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	o.quantity = quantity
	return nil
}
