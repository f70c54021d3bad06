package jobs

import (
	"context"
	"log/slog"

	"frosty/internal/core/application/usecases/commands"
	"frosty/internal/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultExpirationSchedule runs the expiration sweep at the start of every minute.
const DefaultExpirationSchedule = "0 * * * * *"

// maxBatchesPerRun bounds one sweep so a run always returns to the scheduler.
const maxBatchesPerRun = 100

// ExpiredProductsDeactivator is satisfied by *commands.DeactivateExpiredProductsCommandHandler.
type ExpiredProductsDeactivator interface {
	Handle(ctx context.Context, cmd commands.DeactivateExpiredProductsCommand) (int, error)
}

// ProductExpirationJob deactivates active products whose expiration date has passed.
type ProductExpirationJob struct {
	handler   ExpiredProductsDeactivator
	batchSize int
	schedule  string
	metrics   *metrics.Metrics
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewProductExpirationJob creates the job. An empty schedule selects
// DefaultExpirationSchedule; the schedule format includes a seconds field.
func NewProductExpirationJob(
	handler ExpiredProductsDeactivator,
	batchSize int,
	schedule string,
	m *metrics.Metrics,
	logger *slog.Logger,
) *ProductExpirationJob {
	if schedule == "" {
		schedule = DefaultExpirationSchedule
	}

	return &ProductExpirationJob{
		handler:   handler,
		batchSize: batchSize,
		schedule:  schedule,
		metrics:   m,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "product_expiration_job"),
	}
}

// Start validates the batch size, registers the schedule and starts the scheduler.
func (j *ProductExpirationJob) Start() error {
	if _, err := commands.NewDeactivateExpiredProductsCommand(j.batchSize); err != nil {
		return err
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Product expiration job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Product expiration job started", "schedule", j.schedule)
	return nil
}

// Run deactivates expired products batch by batch until a batch comes back short.
// It returns the number of products deactivated, including those committed before
// a failing batch.
func (j *ProductExpirationJob) Run(ctx context.Context) (int, error) {
	cmd, err := commands.NewDeactivateExpiredProductsCommand(j.batchSize)
	if err != nil {
		return 0, err
	}

	total := 0
	for range maxBatchesPerRun {
		n, handleErr := j.handler.Handle(ctx, cmd)
		total += n
		j.metrics.AddExpiredProducts(n)
		if handleErr != nil {
			return total, handleErr
		}
		if n < j.batchSize || ctx.Err() != nil {
			break
		}
	}

	if total > 0 {
		j.logger.InfoContext(ctx, "Expired products deactivated", "count", total)
	}
	return total, nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *ProductExpirationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Product expiration job stopped")
}
