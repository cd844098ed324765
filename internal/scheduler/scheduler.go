package scheduler

import (
	"context"
	"sync"
	"time"

	"task-reminder-api/pkg/logger"
)

// Job is a named recurring task triggered by the scheduler's clock.
// Run must handle its own per-item failures; an error return only gets
// logged, never stops the schedule.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// tickerFunc produces a tick channel and a stop func for an interval.
// Swapped out in tests to drive jobs deterministically.
type tickerFunc func(d time.Duration) (<-chan time.Time, func())

func realTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Scheduler runs registered jobs on their intervals, one goroutine per
// job. Jobs are independent: a failing or slow job does not affect the
// others' schedules.
type Scheduler struct {
	jobs   []Job
	tick   tickerFunc
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates an empty scheduler backed by the wall clock.
func New() *Scheduler {
	return &Scheduler{tick: realTicker}
}

// Register adds a job. Must be called before Start.
func (s *Scheduler) Register(job Job) {
	s.jobs = append(s.jobs, job)
}

// Start launches every registered job. It returns immediately.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	for _, job := range s.jobs {
		job := job
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.runLoop(ctx, job)
		}()
	}
}

// Stop cancels all job loops and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

func (s *Scheduler) runLoop(ctx context.Context, job Job) {
	ch, stop := s.tick(job.Interval)
	defer stop()
	logger.Info(ctx, "Job scheduled", "job", job.Name, "interval", job.Interval.String())
	for {
		select {
		case <-ctx.Done():
			return
		case <-ch:
			runJob(ctx, job)
		}
	}
}

// runJob executes one sweep, containing panics so a bad sweep cannot
// take the scheduler down.
func runJob(ctx context.Context, job Job) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "Job panicked", "job", job.Name, "panic", r)
		}
	}()
	if err := job.Run(ctx); err != nil {
		logger.Error(ctx, "Job run failed", "job", job.Name, "error", err)
	}
}
