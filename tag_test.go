package fieldvet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldvet/fieldvet"
)

func TestTagDiscovery(t *testing.T) {
	t.Run("untagged and skipped fields are not validated", func(t *testing.T) {
		type audit struct {
			Actor    string `checks:"required"`
			Internal string `checks:"-"`
			Comment  string
		}

		descs, err := fieldvet.Descriptors(audit{})
		require.NoError(t, err)
		require.Len(t, descs, 1)
		assert.Equal(t, "Actor", descs[0].Name())
	})

	t.Run("tokens may carry surrounding whitespace", func(t *testing.T) {
		type loose struct {
			Name string `checks:" required ; max_len=10 "`
		}

		descs, err := fieldvet.Descriptors(loose{})
		require.NoError(t, err)
		require.Len(t, descs, 1)
		assert.Len(t, descs[0].Constraints(), 2)
	})

	t.Run("name token sets the display name", func(t *testing.T) {
		type order struct {
			Qty int `checks:"name=Quantity;min=1"`
		}

		res, err := fieldvet.Validate(order{Qty: 0})
		require.NoError(t, err)
		require.Len(t, res.Violations(), 1)
		assert.Equal(t, "The Quantity field must be at least 1.", res.Violations()[0].Message)
		assert.Equal(t, "Qty", res.Violations()[0].Field)
	})

	t.Run("unknown token is a configuration error", func(t *testing.T) {
		type bad struct {
			Name string `checks:"requird"`
		}

		_, err := fieldvet.Validate(bad{Name: "x"})
		require.Error(t, err)
		assert.ErrorIs(t, err, fieldvet.ErrUnknownToken)

		var ce *fieldvet.ConfigurationError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "Name", ce.Field)
	})

	t.Run("missing parameter is a configuration error", func(t *testing.T) {
		type bad struct {
			Code string `checks:"pattern"`
		}

		_, err := fieldvet.Validate(bad{})
		assert.ErrorIs(t, err, fieldvet.ErrMissingParameter)
	})

	t.Run("unparsable numeric parameter is a configuration error", func(t *testing.T) {
		type bad struct {
			Name string `checks:"max_len=ten"`
		}

		_, err := fieldvet.Validate(bad{})
		assert.ErrorIs(t, err, fieldvet.ErrInvalidParameter)
	})

	t.Run("length bound on non-string field is a configuration error", func(t *testing.T) {
		type bad struct {
			Age int `checks:"max_len=3"`
		}

		_, err := fieldvet.Validate(bad{})
		assert.ErrorIs(t, err, fieldvet.ErrNonStringField)
	})

	t.Run("tagged unexported field is a configuration error", func(t *testing.T) {
		type bad struct {
			secret string `checks:"required"` //nolint:unused
		}

		_, err := fieldvet.Validate(bad{})
		assert.ErrorIs(t, err, fieldvet.ErrUnexportedField)
	})
}
