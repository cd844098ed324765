package jobs

import (
	"context"
	"math"
	"time"

	"task-reminder-api/internal/config"
	"task-reminder-api/internal/models"
	"task-reminder-api/pkg/logger"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// PriorityFor maps a due date to a priority bucket from the days left
// until it, using elapsed time rounded up (a task due in one hour still
// counts as due today, not tomorrow).
func PriorityFor(dueDate, now time.Time) int {
	daysLeft := int(math.Ceil(dueDate.Sub(now).Hours() / 24))
	switch {
	case daysLeft < 0:
		return models.PriorityOverdue
	case daysLeft == 0:
		return models.PriorityDueToday
	case daysLeft <= 2:
		return models.PriorityNear
	case daysLeft <= 4:
		return models.PriorityUpcoming
	default:
		return models.PriorityFar
	}
}

// PriorityJob recomputes every active task's priority from its due
// date. Scheduled daily.
type PriorityJob struct {
	DB      *gorm.DB
	Workers int
	Now     func() time.Time
}

// NewPriorityJob builds the job with the configured worker limit.
func NewPriorityJob(db *gorm.DB) *PriorityJob {
	return &PriorityJob{
		DB:      db,
		Workers: config.Get().SweepWorkers,
		Now:     time.Now,
	}
}

// Run executes one sweep. Per-task write failures are logged and do not
// stop the remaining tasks from being recomputed.
func (j *PriorityJob) Run(ctx context.Context) error {
	now := j.Now()

	var tasks []models.Task
	if err := j.DB.WithContext(ctx).Where("deleted_at IS NULL").Find(&tasks).Error; err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(j.Workers)
	for _, task := range tasks {
		task := task
		g.Go(func() error {
			priority := PriorityFor(task.DueDate, now)
			err := j.DB.WithContext(ctx).Model(&models.Task{}).
				Where("id = ?", task.ID).
				Update("priority", priority).Error
			if err != nil {
				logger.Error(ctx, "Priority update failed", "task_id", task.ID, "error", err)
			}
			return nil
		})
	}
	return g.Wait()
}
