package jobs

import (
	"context"
	"time"
)

const defaultJobTimeout = 5 * time.Minute

// Runner выполняет фоновые задачи сервиса аренды
type Runner struct {
	rentalRepo   RentalRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
	timeout      time.Duration
}

// NewRunner создает новый экземпляр Runner
func NewRunner(rentalRepo RentalRepository, metrics Metrics, logger Logger) *Runner {
	return &Runner{
		rentalRepo:   rentalRepo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		timeout:      defaultJobTimeout,
	}
}

// runWithRecovery выполняет задачу с таймаутом и перехватом паники
func (r *Runner) runWithRecovery(jobName string, job func(ctx context.Context) error) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("%s: job panicked: %v", jobName, p)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	started := r.timeProvider.Now()
	r.logger.Info("%s: job started", jobName)

	if err := job(ctx); err != nil {
		r.logger.Error("%s: job failed: %v", jobName, err)
		return
	}

	r.logger.Info("%s: job completed in %s", jobName, r.timeProvider.Now().Sub(started))
}
