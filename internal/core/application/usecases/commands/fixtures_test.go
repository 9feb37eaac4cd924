package commands_test

import (
	"testing"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/order"
	"pressflow/internal/core/domain/model/roll"

	"github.com/stretchr/testify/require"
)

func meterage(t *testing.T, meters float64) kernel.Meterage {
	t.Helper()
	m, err := kernel.NewMeterage(meters)
	require.NoError(t, err)
	return m
}

func fixtureOrder(t *testing.T) *order.Order {
	t.Helper()
	quantity, err := order.NewQuantity(10000)
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), "2026-0412", "Acme Foods", "Tomato sauce label", order.CategoryLabel, quantity)
	require.NoError(t, err)
	return o
}

func fixtureOrderWithGraphics(t *testing.T) *order.Order {
	t.Helper()
	o := fixtureOrder(t)
	spec, err := order.NewGraphicsSpec(
		order.MachinePrimaryPress, "CMYK", "Surface", 210, meterage(t, 1500), 60, "", false, "", "")
	require.NoError(t, err)
	require.NoError(t, o.SubmitGraphicsSpec(spec))
	return o
}

func fixtureOrderInPlanning(t *testing.T) *order.Order {
	t.Helper()
	o := fixtureOrderWithGraphics(t)
	plan, err := order.NewMaterialPlan("PP White", order.MaterialReady, 10, meterage(t, 1650), nil)
	require.NoError(t, err)
	require.NoError(t, o.AssessMaterial(plan))
	return o
}

func fixturePlannedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := fixtureOrderInPlanning(t)
	schedule, err := order.NewScheduledPlan(
		time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC), "08:00", 6,
		[]order.Station{order.StationPrimaryPress, order.StationLabelQC})
	require.NoError(t, err)
	require.NoError(t, o.AssignSchedule(schedule))
	return o
}

func fixtureStationRecord(t *testing.T, station order.Station, outputQuantity *int) order.StationRecord {
	t.Helper()
	record, err := order.NewStationRecord(
		station, "M. Demir",
		time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC),
		meterage(t, 1000), meterage(t, 950), outputQuantity, "")
	require.NoError(t, err)
	return record
}

func fixtureShippingReadyOrder(t *testing.T) *order.Order {
	t.Helper()
	o := fixturePlannedOrder(t)
	require.NoError(t, o.AppendStationRecord(fixtureStationRecord(t, order.StationPrimaryPress, nil), false))
	qty := 9800
	require.NoError(t, o.AppendStationRecord(fixtureStationRecord(t, order.StationLabelQC, &qty), true))
	return o
}

func fixtureRoll(t *testing.T, lengthMeters float64) *roll.Roll {
	t.Helper()
	r, err := roll.NewRoll(
		kernel.NewUUID(), "PF-PPW-0001", "PP White", "Printflex", "PF",
		130, meterage(t, lengthMeters), false)
	require.NoError(t, err)
	return r
}

func fixtureJumboRoll(t *testing.T, lengthMeters float64) *roll.Roll {
	t.Helper()
	r, err := roll.NewRoll(
		kernel.NewUUID(), "PF-PPW-0001", "PP White", "Printflex", "PF",
		130, meterage(t, lengthMeters), true)
	require.NoError(t, err)
	return r
}
