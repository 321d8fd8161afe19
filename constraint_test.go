package fieldvet_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fieldvet/fieldvet"
)

func TestRequired(t *testing.T) {
	t.Run("passes for non-empty string", func(t *testing.T) {
		c := fieldvet.Required()
		assert.True(t, c.IsSatisfied("test@example.com"))
		assert.Equal(t, fieldvet.KindRequired, c.Kind())
	})

	t.Run("fails for empty string", func(t *testing.T) {
		assert.False(t, fieldvet.Required().IsSatisfied(""))
	})

	t.Run("fails for nil", func(t *testing.T) {
		assert.False(t, fieldvet.Required().IsSatisfied(nil))
	})

	t.Run("fails for zero int", func(t *testing.T) {
		assert.False(t, fieldvet.Required().IsSatisfied(0))
	})

	t.Run("passes for non-zero int", func(t *testing.T) {
		assert.True(t, fieldvet.Required().IsSatisfied(42))
	})

	t.Run("fails for zero struct", func(t *testing.T) {
		type point struct{ X, Y int }
		assert.False(t, fieldvet.Required().IsSatisfied(point{}))
		assert.True(t, fieldvet.Required().IsSatisfied(point{X: 1}))
	})

	t.Run("formats message with field name", func(t *testing.T) {
		msg := fieldvet.Required().Message("Email")
		assert.Equal(t, "The Email field is required.", msg)
	})
}

func TestCustom(t *testing.T) {
	t.Run("evaluates the predicate", func(t *testing.T) {
		c := fieldvet.Custom("even", func(value any) bool {
			n, ok := value.(int)
			return ok && n%2 == 0
		}, "The {field} field must be even.")

		assert.Equal(t, fieldvet.KindCustom, c.Kind())
		assert.True(t, c.IsSatisfied(4))
		assert.False(t, c.IsSatisfied(3))
		assert.Equal(t, "The Count field must be even.", c.Message("Count"))
	})

	t.Run("nil predicate is a configuration error at registration", func(t *testing.T) {
		type model struct {
			Count int
		}
		err := fieldvet.Register(model{}, fieldvet.Field("Count",
			fieldvet.Custom("even", nil, "The {field} field must be even.")))
		assert.Error(t, err)
		assert.ErrorIs(t, err, fieldvet.ErrNilPredicate)
		assert.True(t, fieldvet.IsConfigurationError(err))
	})

	t.Run("empty message template is a configuration error", func(t *testing.T) {
		type model struct {
			Count int
		}
		err := fieldvet.Register(model{}, fieldvet.Field("Count",
			fieldvet.Custom("even", func(any) bool { return true }, "   ")))
		assert.ErrorIs(t, err, fieldvet.ErrInvalidParameter)
	})

	t.Run("long field names expand into the template", func(t *testing.T) {
		c := fieldvet.Custom("check", func(any) bool { return false }, "The {field} field is invalid.")
		field := strings.Repeat("A", 40)
		assert.Contains(t, c.Message(field), field)
	})
}
