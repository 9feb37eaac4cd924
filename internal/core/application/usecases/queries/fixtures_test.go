package queries_test

import (
	"context"
	"testing"
	"time"

	"pressflow/internal/adapters/out/postgres/orderrepo"
	"pressflow/internal/adapters/out/postgres/rollrepo"
	"pressflow/internal/adapters/out/postgres/stockrepo"
	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/order"
	"pressflow/internal/core/domain/model/roll"
	"pressflow/internal/core/domain/model/stock"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// noopTracker implements the repositories' aggregateTracker for query tests,
// where aggregate tracking is irrelevant.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func mustMeterage(t *testing.T, meters float64) kernel.Meterage {
	t.Helper()
	m, err := kernel.NewMeterage(meters)
	require.NoError(t, err)
	return m
}

func newTestOrder(t *testing.T, orderNumber string) *order.Order {
	t.Helper()
	quantity, err := order.NewQuantity(10000)
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), orderNumber, "Acme Foods", "Tomato sauce label", order.CategoryLabel, quantity)
	require.NoError(t, err)
	return o
}

// newShippingReadyOrder walks an order through the whole pipeline: graphics,
// material, schedule and a completed two-station path with 9800 finished
// units out of 10000 ordered.
func newShippingReadyOrder(t *testing.T, orderNumber string) *order.Order {
	t.Helper()
	o := newTestOrder(t, orderNumber)

	spec, err := order.NewGraphicsSpec(
		order.MachinePrimaryPress, "CMYK", "Surface", 210, mustMeterage(t, 1500), 60, "", false, "", "")
	require.NoError(t, err)
	require.NoError(t, o.SubmitGraphicsSpec(spec))

	plan, err := order.NewMaterialPlan("PP White", order.MaterialReady, 10, mustMeterage(t, 1650), nil)
	require.NoError(t, err)
	require.NoError(t, o.AssessMaterial(plan))

	schedule, err := order.NewScheduledPlan(
		time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC), "08:00", 6,
		[]order.Station{order.StationPrimaryPress, order.StationLabelQC})
	require.NoError(t, err)
	require.NoError(t, o.AssignSchedule(schedule))

	press, err := order.NewStationRecord(
		order.StationPrimaryPress, "M. Demir",
		time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC),
		mustMeterage(t, 1000), mustMeterage(t, 950), nil, "")
	require.NoError(t, err)
	require.NoError(t, o.AppendStationRecord(press, false))

	finishedQty := 9800
	qc, err := order.NewStationRecord(
		order.StationLabelQC, "A. Yilmaz",
		time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 4, 14, 0, 0, 0, time.UTC),
		mustMeterage(t, 950), mustMeterage(t, 940), &finishedQty, "")
	require.NoError(t, err)
	require.NoError(t, o.AppendStationRecord(qc, true))

	return o
}

func newTestRoll(t *testing.T, barcode string, lengthMeters float64, isJumbo bool) *roll.Roll {
	t.Helper()
	r, err := roll.NewRoll(
		kernel.NewUUID(), barcode, "PP White", "Printflex", "PF",
		130, mustMeterage(t, lengthMeters), isJumbo)
	require.NoError(t, err)
	return r
}

func saveOrders(t *testing.T, db *gorm.DB, orders ...*order.Order) {
	t.Helper()
	repo := orderrepo.NewGormOrderRepository(db, noopTracker{})
	for _, o := range orders {
		require.NoError(t, repo.Add(context.Background(), o))
	}
}

func saveRolls(t *testing.T, db *gorm.DB, rolls ...*roll.Roll) {
	t.Helper()
	repo := rollrepo.NewGormRollRepository(db, noopTracker{})
	for _, r := range rolls {
		require.NoError(t, repo.Add(context.Background(), r))
	}
}

func appendMovements(t *testing.T, db *gorm.DB, movements ...stock.Movement) {
	t.Helper()
	repo := stockrepo.NewGormStockMovementRepository(db)
	for _, m := range movements {
		require.NoError(t, repo.Append(context.Background(), m))
	}
}
