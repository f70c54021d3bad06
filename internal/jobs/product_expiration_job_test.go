package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"frosty/internal/core/application/usecases/commands"
	"frosty/internal/jobs"
	"frosty/internal/metrics"
	"frosty/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeactivator struct {
	mock.Mock
}

func (m *MockDeactivator) Handle(ctx context.Context, cmd commands.DeactivateExpiredProductsCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func expiredProductsMetric(total int) string {
	return `
# HELP frosty_expired_products_deactivated_total Products deactivated by the expiration job.
# TYPE frosty_expired_products_deactivated_total counter
frosty_expired_products_deactivated_total ` + strconv.Itoa(total) + "\n"
}

func TestProductExpirationJob_RunDrainsFullBatches(t *testing.T) {
	handler := &MockDeactivator{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(10, nil).Twice()
	handler.On("Handle", mock.Anything, mock.Anything).Return(3, nil).Once()

	registry := prometheus.NewRegistry()
	job := jobs.NewProductExpirationJob(handler, 10, "", metrics.New(registry), discardLogger())

	total, err := job.Run(t.Context())

	require.NoError(t, err)
	assert.Equal(t, 23, total)
	handler.AssertNumberOfCalls(t, "Handle", 3)
	require.NoError(t, testutil.GatherAndCompare(registry,
		strings.NewReader(expiredProductsMetric(23)), "frosty_expired_products_deactivated_total"))
}

func TestProductExpirationJob_RunStopsWhenNothingExpired(t *testing.T) {
	handler := &MockDeactivator{}
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.DeactivateExpiredProductsCommand) bool {
		return cmd.BatchSize() == 50
	})).Return(0, nil).Once()

	job := jobs.NewProductExpirationJob(handler, 50, "", nil, discardLogger())

	total, err := job.Run(t.Context())

	require.NoError(t, err)
	assert.Zero(t, total)
	handler.AssertExpectations(t)
}

func TestProductExpirationJob_RunKeepsCommittedBatchesOnFailure(t *testing.T) {
	failure := errors.New("connection reset")
	handler := &MockDeactivator{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(5, nil).Once()
	handler.On("Handle", mock.Anything, mock.Anything).Return(0, failure).Once()

	job := jobs.NewProductExpirationJob(handler, 5, "", nil, discardLogger())

	total, err := job.Run(t.Context())

	require.ErrorIs(t, err, failure)
	assert.Equal(t, 5, total)
}

func TestProductExpirationJob_RejectsBatchSizeOutOfRange(t *testing.T) {
	handler := &MockDeactivator{}
	job := jobs.NewProductExpirationJob(handler, commands.MaxExpirationBatchSize+1, "", nil, discardLogger())

	_, err := job.Run(t.Context())
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	require.ErrorIs(t, job.Start(), errs.ErrValueIsOutOfRange)
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestJobManager_StartFailsOnInvalidSchedule(t *testing.T) {
	job := jobs.NewProductExpirationJob(&MockDeactivator{}, 10, "every now and then", nil, discardLogger())

	err := jobs.NewJobManager(job).StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "product expiration job")
}

func TestJobManager_StartAndStop(t *testing.T) {
	job := jobs.NewProductExpirationJob(&MockDeactivator{}, 10, "@every 1h", nil, discardLogger())
	manager := jobs.NewJobManager(job)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
