package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Job именованная фоновая задача с расписанием в формате cron (с секундами)
type Job struct {
	Name string
	Spec string
	Run  func()
}

// Scheduler запускает фоновые задачи по расписанию (UTC)
type Scheduler struct {
	cron   *cron.Cron
	logger Logger
}

// NewScheduler создает планировщик и регистрирует задачи.
// Ошибка в расписании любой задачи возвращается сразу, до старта.
func NewScheduler(logger Logger, jobs ...Job) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	for _, job := range jobs {
		if _, err := c.AddFunc(job.Spec, job.Run); err != nil {
			return nil, fmt.Errorf("failed to register job %s with spec %q: %w", job.Name, job.Spec, err)
		}
		logger.Info("Scheduler: job %s registered with spec %q", job.Name, job.Spec)
	}

	return &Scheduler{
		cron:   c,
		logger: logger,
	}, nil
}

// Start запускает планировщик
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler: started with %d jobs", len(s.cron.Entries()))
}

// Stop останавливает планировщик и ждёт завершения выполняющихся задач
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler: stopped")
}

// Entries возвращает количество зарегистрированных задач
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
