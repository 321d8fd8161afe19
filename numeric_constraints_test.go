package fieldvet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fieldvet/fieldvet"
)

func TestMin(t *testing.T) {
	t.Run("passes when value equals the minimum", func(t *testing.T) {
		c := fieldvet.Min(18)
		assert.True(t, c.IsSatisfied(18))
		assert.Equal(t, fieldvet.KindMin, c.Kind())
	})

	t.Run("passes when value exceeds the minimum", func(t *testing.T) {
		assert.True(t, fieldvet.Min(18).IsSatisfied(21))
	})

	t.Run("fails when value is below the minimum", func(t *testing.T) {
		assert.False(t, fieldvet.Min(18).IsSatisfied(17))
	})

	t.Run("handles unsigned and float values", func(t *testing.T) {
		assert.True(t, fieldvet.Min(1).IsSatisfied(uint8(200)))
		assert.False(t, fieldvet.Min(0.5).IsSatisfied(0.25))
	})

	t.Run("fails for non-numeric values", func(t *testing.T) {
		assert.False(t, fieldvet.Min(1).IsSatisfied("2"))
	})

	t.Run("formats integral bounds without a decimal point", func(t *testing.T) {
		msg := fieldvet.Min(18).Message("Age")
		assert.Equal(t, "The Age field must be at least 18.", msg)
	})

	t.Run("formats fractional bounds as written", func(t *testing.T) {
		msg := fieldvet.Min(0.5).Message("Ratio")
		assert.Equal(t, "The Ratio field must be at least 0.5.", msg)
	})

	t.Run("non-numeric field is a configuration error at registration", func(t *testing.T) {
		type model struct {
			Name string
		}
		err := fieldvet.Register(model{}, fieldvet.Field("Name", fieldvet.Min(1)))
		assert.ErrorIs(t, err, fieldvet.ErrNonNumericField)
	})
}

func TestMax(t *testing.T) {
	t.Run("passes when value equals the maximum", func(t *testing.T) {
		assert.True(t, fieldvet.Max(100).IsSatisfied(100))
	})

	t.Run("fails when value exceeds the maximum", func(t *testing.T) {
		assert.False(t, fieldvet.Max(100).IsSatisfied(101))
	})

	t.Run("passes for negative values under the maximum", func(t *testing.T) {
		assert.True(t, fieldvet.Max(0).IsSatisfied(-5))
	})

	t.Run("formats message with the bound", func(t *testing.T) {
		msg := fieldvet.Max(100).Message("Quantity")
		assert.Equal(t, "The Quantity field must be at most 100.", msg)
	})
}
