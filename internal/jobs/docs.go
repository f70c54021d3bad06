// Package jobs provides scheduled background tasks for the warehouse service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with seconds).
//
// # Available Jobs
//
// ProductExpirationJob deactivates active products whose expiration date has passed.
// Each run calls DeactivateExpiredProductsCommandHandler repeatedly; every call is one
// transaction over at most BatchSize products, and the run ends at the first short batch.
//
// # Usage
//
//	job := jobs.NewProductExpirationJob(handler, 100, jobs.DefaultExpirationSchedule, m, logger)
//	jobManager := jobs.NewJobManager(job)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Batches committed before the
// failure stay committed.
package jobs
