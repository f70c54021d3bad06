package kernel_test

import (
	"testing"
	"time"

	"frosty/internal/core/domain/model/kernel"
	"frosty/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widgetKind struct{}

type widgetID = kernel.Identifier[widgetKind]

func TestNewIdentifier(t *testing.T) {
	supplier := kernel.NewSequenceSupplier(time.Now(), time.Second)

	t.Run("should generate distinct identifiers", func(t *testing.T) {
		id1 := kernel.NewIdentifier[widgetKind](supplier)
		id2 := kernel.NewIdentifier[widgetKind](supplier)

		require.NoError(t, id1.Validate())
		assert.False(t, id1.IsEqual(id2))
		assert.NotEmpty(t, id1.String())
	})

	t.Run("should compare by value", func(t *testing.T) {
		id := kernel.NewIdentifier[widgetKind](supplier)

		same, err := kernel.IdentifierFrom[widgetKind](id.String())

		require.NoError(t, err)
		assert.True(t, id.IsEqual(same))
		assert.Equal(t, id, same)
	})
}

func TestIdentifierFrom(t *testing.T) {
	t.Run("should accept any non blank value", func(t *testing.T) {
		id, err := kernel.IdentifierFrom[widgetKind]("123")

		require.NoError(t, err)
		assert.Equal(t, "123", id.String())
	})

	t.Run("should reject blank values", func(t *testing.T) {
		for _, value := range []string{"", "   "} {
			_, err := kernel.IdentifierFrom[widgetKind](value)

			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})

	t.Run("should convert slices", func(t *testing.T) {
		ids, err := kernel.IdentifiersFrom[widgetKind]([]string{"a", "b"})

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, kernel.Strings(ids))

		_, err = kernel.IdentifiersFrom[widgetKind]([]string{"a", ""})
		require.Error(t, err)
	})

	t.Run("must variant panics on blank value", func(t *testing.T) {
		assert.Panics(t, func() { kernel.MustIdentifierFrom[widgetKind]("") })
	})
}

func TestIdentifier_Validate(t *testing.T) {
	var id widgetID

	assert.True(t, id.IsZero())
	assert.Equal(t, kernel.ErrIdentifierIsNotConstructed, id.Validate())
}
