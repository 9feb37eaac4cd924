package stock_test

import (
	"testing"
	"time"

	"pressflow/internal/core/domain/model/kernel"
	"pressflow/internal/core/domain/model/stock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meterage(t *testing.T, meters float64) kernel.Meterage {
	t.Helper()
	m, err := kernel.NewMeterage(meters)
	require.NoError(t, err)
	return m
}

func newConsumptionMovement(t *testing.T) stock.Movement {
	t.Helper()
	orderID := kernel.NewUUID()
	m, err := stock.NewMovement(
		kernel.NewUUID(), stock.Consumption, "PF-KUS-0001", "Kuse White",
		meterage(t, 1000), meterage(t, 200), &orderID, "2026-0412",
		"settled against primary press input", time.Now().UTC())
	require.NoError(t, err)
	return m
}

func TestNewMovement(t *testing.T) {
	t.Run("should create a consumption movement", func(t *testing.T) {
		m := newConsumptionMovement(t)

		assert.Equal(t, stock.Consumption, m.Type())
		assert.Equal(t, "PF-KUS-0001", m.RollBarcode())
		assert.Equal(t, meterage(t, 1000), m.Quantity())
		assert.Equal(t, meterage(t, 200), m.ReturnedQuantity())
		assert.Equal(t, "2026-0412", m.OrderNumber())
		require.NotNil(t, m.OrderID())
		require.NoError(t, m.Validate())
	})

	t.Run("should create an intake movement without an order reference", func(t *testing.T) {
		m, err := stock.NewMovement(
			kernel.NewUUID(), stock.Intake, "PF-KUS-0001", "Kuse White",
			meterage(t, 5000), kernel.ZeroMeterage(), nil, "", "supplier delivery", time.Time{})

		require.NoError(t, err)
		assert.Nil(t, m.OrderID())
		assert.False(t, m.OccurredAt().IsZero())
	})

	t.Run("should reject an unknown movement type", func(t *testing.T) {
		_, err := stock.NewMovement(
			kernel.NewUUID(), stock.MovementTypeUnknown, "PF-KUS-0001", "Kuse White",
			meterage(t, 100), kernel.ZeroMeterage(), nil, "", "", time.Now().UTC())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "movementType")
	})

	t.Run("should reject an empty roll barcode", func(t *testing.T) {
		_, err := stock.NewMovement(
			kernel.NewUUID(), stock.Intake, "", "Kuse White",
			meterage(t, 100), kernel.ZeroMeterage(), nil, "", "", time.Now().UTC())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "rollBarcode")
	})
}

func TestMovementTypeFromString(t *testing.T) {
	t.Run("should parse valid movement types", func(t *testing.T) {
		for expected, s := range map[stock.MovementType]string{
			stock.Intake:      "Intake",
			stock.Reservation: "Reservation",
			stock.Consumption: "Consumption",
		} {
			parsed, err := stock.MovementTypeFromString(s)
			require.NoError(t, err)
			assert.Equal(t, expected, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		_, err := stock.MovementTypeFromString("Adjustment")
		require.Error(t, err)
	})
}

func TestFilter_Matches(t *testing.T) {
	t.Run("should match everything when empty", func(t *testing.T) {
		assert.True(t, stock.Filter{}.Matches(newConsumptionMovement(t)))
	})

	t.Run("should filter by type", func(t *testing.T) {
		m := newConsumptionMovement(t)

		assert.True(t, stock.Filter{Type: stock.Consumption}.Matches(m))
		assert.False(t, stock.Filter{Type: stock.Intake}.Matches(m))
	})

	t.Run("should filter by barcode and order number together", func(t *testing.T) {
		m := newConsumptionMovement(t)

		assert.True(t, stock.Filter{RollBarcode: "PF-KUS-0001", OrderNumber: "2026-0412"}.Matches(m))
		assert.False(t, stock.Filter{RollBarcode: "PF-KUS-0001", OrderNumber: "2026-0999"}.Matches(m))
	})
}
