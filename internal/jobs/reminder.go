package jobs

import (
	"context"
	"errors"
	"time"

	"task-reminder-api/internal/cache"
	"task-reminder-api/internal/config"
	"task-reminder-api/internal/models"
	"task-reminder-api/internal/notify"
	"task-reminder-api/pkg/logger"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ReminderJob places one voice reminder per overdue active task, every
// tick. Overdue means due_date strictly before now; status is not
// consulted, and there is no de-duplication across ticks: a task keeps
// triggering calls until its due date, status or deletion changes.
type ReminderJob struct {
	DB      *gorm.DB
	Caller  notify.Caller
	Workers int
	UserTTL time.Duration
	Now     func() time.Time

	users *cache.TTLCache[string, models.User]
}

// NewReminderJob builds the job with the configured worker limit and
// user-lookup cache TTL.
func NewReminderJob(db *gorm.DB, caller notify.Caller) *ReminderJob {
	cfg := config.Get()
	return &ReminderJob{
		DB:      db,
		Caller:  caller,
		Workers: cfg.SweepWorkers,
		UserTTL: cfg.UserCacheTTL,
		Now:     time.Now,
		users:   cache.New[string, models.User](),
	}
}

// Run executes one sweep. Unresolvable owners are skipped silently;
// failed calls are logged and never abort the rest of the sweep.
func (j *ReminderJob) Run(ctx context.Context) error {
	if j.users == nil {
		j.users = cache.New[string, models.User]()
	}

	var tasks []models.Task
	err := j.DB.WithContext(ctx).
		Where("deleted_at IS NULL AND due_date < ?", j.Now()).
		Find(&tasks).Error
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(j.Workers)
	for _, task := range tasks {
		task := task
		g.Go(func() error {
			user, ok := j.resolveUser(ctx, task.UserID)
			if !ok {
				return nil
			}
			if err := j.Caller.PlaceCall(ctx, user.PhoneNumber); err != nil {
				logger.Error(ctx, "Reminder call failed", "task_id", task.ID, "user_id", user.ID, "error", err)
				return nil
			}
			logger.Info(ctx, "Reminder call placed", "task_id", task.ID, "to", user.PhoneNumber)
			return nil
		})
	}
	return g.Wait()
}

func (j *ReminderJob) resolveUser(ctx context.Context, userID string) (models.User, bool) {
	if user, ok := j.users.Get(userID); ok {
		return user, true
	}

	var user models.User
	err := j.DB.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error(ctx, "User lookup failed", "user_id", userID, "error", err)
		}
		return models.User{}, false
	}
	j.users.Set(userID, user, j.UserTTL)
	return user, true
}
