package kernel_test

import (
	"testing"

	"pressflow/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeterage(t *testing.T) {
	t.Run("should create meterage from positive amount", func(t *testing.T) {
		m, err := kernel.NewMeterage(1200.5)

		require.NoError(t, err)
		assert.Equal(t, "1200.5", m.String())
	})

	t.Run("should create zero meterage", func(t *testing.T) {
		m, err := kernel.NewMeterage(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("should fail with negative amount", func(t *testing.T) {
		_, err := kernel.NewMeterage(-5)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "meterage is invalid")
	})

	t.Run("should fail with negative decimal", func(t *testing.T) {
		_, err := kernel.MeterageFromDecimal(decimal.NewFromInt(-1))

		require.Error(t, err)
	})
}

func TestMeterage_Arithmetic(t *testing.T) {
	mustMeterage := func(v float64) kernel.Meterage {
		m, err := kernel.NewMeterage(v)
		require.NoError(t, err)
		return m
	}

	t.Run("should add exactly", func(t *testing.T) {
		sum := mustMeterage(0.1).Add(mustMeterage(0.2))

		assert.Equal(t, "0.3", sum.String())
	})

	t.Run("should subtract and preserve sign", func(t *testing.T) {
		diff := mustMeterage(100).Sub(mustMeterage(120))

		assert.True(t, diff.IsNegative())
		assert.Equal(t, "-20", diff.String())
	})

	t.Run("should return smaller value from Min", func(t *testing.T) {
		smaller := mustMeterage(1000).Min(mustMeterage(1200))

		assert.Equal(t, "1000", smaller.String())
	})

	t.Run("should round up to whole meters", func(t *testing.T) {
		ceiled := mustMeterage(35.475).Ceil()

		assert.Equal(t, "36", ceiled.String())
	})

	t.Run("should not round an already whole value", func(t *testing.T) {
		ceiled := mustMeterage(100).Ceil()

		assert.Equal(t, "100", ceiled.String())
	})

	t.Run("should compare values", func(t *testing.T) {
		assert.Equal(t, -1, mustMeterage(1).Cmp(mustMeterage(2)))
		assert.Equal(t, 0, mustMeterage(2).Cmp(mustMeterage(2)))
		assert.True(t, mustMeterage(3).GreaterThan(mustMeterage(2)))
	})

	t.Run("round trip reservation arithmetic stays exact", func(t *testing.T) {
		// 5000 - 1200 + 200 must be exactly 4000, never 3999.999...
		current := mustMeterage(5000)
		afterReserve := current.Sub(mustMeterage(1200))
		afterReturn := afterReserve.Add(mustMeterage(200))

		assert.Equal(t, 0, afterReturn.Cmp(mustMeterage(4000)))
	})
}
