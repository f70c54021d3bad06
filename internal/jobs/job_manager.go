package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	productExpirationJob *ProductExpirationJob
}

func NewJobManager(productExpirationJob *ProductExpirationJob) *JobManager {
	return &JobManager{
		productExpirationJob: productExpirationJob,
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.productExpirationJob.Start(); err != nil {
		return fmt.Errorf("failed to start product expiration job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.productExpirationJob.Stop()
}
