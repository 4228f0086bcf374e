package job

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Job is a periodic background task with its own per-run timeout.
type Job struct {
	Name     string
	Interval time.Duration
	Timeout  time.Duration
	Fn       func(ctx context.Context) error
}

// Scheduler runs registered jobs on their intervals until the parent context
// is cancelled.
type Scheduler struct {
	logger *slog.Logger
	jobs   []Job
	wg     sync.WaitGroup
}

func NewScheduler(logger *slog.Logger) *Scheduler {
	return &Scheduler{logger: logger}
}

// Add registers a job to run once Start is called.
func (s *Scheduler) Add(j Job) {
	s.jobs = append(s.jobs, j)
}

// Start launches every registered job. Each job runs immediately, then
// repeats at its interval until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(ctx, j)
	}
}

func (s *Scheduler) loop(ctx context.Context, j Job) {
	defer s.wg.Done()

	s.runOnce(ctx, j)

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("job stopping", "job", j.Name)
			return
		case <-ticker.C:
			s.runOnce(ctx, j)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, j Job) {
	if ctx.Err() != nil {
		return
	}

	jobCtx, cancel := context.WithTimeout(ctx, j.Timeout)
	defer cancel()

	start := time.Now()
	err := s.protect(jobCtx, j)
	if err != nil {
		s.logger.Error("job failed", "job", j.Name, "error", err, "duration", time.Since(start))
		return
	}
	s.logger.Info("job completed", "job", j.Name, "duration", time.Since(start))
}

// protect turns a panicking job run into an error so one bad run cannot take
// the scheduler down.
func (s *Scheduler) protect(ctx context.Context, j Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", j.Name, r)
		}
	}()
	return j.Fn(ctx)
}

// Shutdown blocks until all job loops have exited.
func (s *Scheduler) Shutdown() {
	s.wg.Wait()
}
