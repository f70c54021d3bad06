package commands_test

import (
	"testing"
	"time"

	"frosty/internal/core/domain/model/kernel"
	"frosty/internal/core/domain/model/product"
	"frosty/internal/pkg/validation"

	"github.com/stretchr/testify/require"
)

func newSupplier() *kernel.SequenceSupplier {
	return kernel.NewSequenceSupplier(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), time.Second)
}

func productIDs(t *testing.T, values ...string) []product.ID {
	t.Helper()

	ids, err := product.IDsFrom(values)
	require.NoError(t, err)
	return ids
}

func requireValidationMessages(t *testing.T, err error, expected ...string) {
	t.Helper()

	var notification *validation.NotificationError
	require.ErrorAs(t, err, &notification)
	require.Equal(t, expected, notification.Messages())
}
