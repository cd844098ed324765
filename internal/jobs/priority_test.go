package jobs

import (
	"context"
	"testing"
	"time"

	"task-reminder-api/internal/models"
	"task-reminder-api/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestPriorityFor_Thresholds(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"overdue by two days", now.Add(-48 * time.Hour), 0},
		{"overdue by just over a day", now.Add(-25 * time.Hour), 0},
		{"overdue by an hour counts as today", now.Add(-time.Hour), 1},
		{"due this instant", now, 1},
		{"due in one hour", now.Add(time.Hour), 2},
		{"due in two days", now.Add(48 * time.Hour), 2},
		{"due in just over two days", now.Add(49 * time.Hour), 3},
		{"due in four days", now.Add(96 * time.Hour), 3},
		{"due in just over four days", now.Add(97 * time.Hour), 4},
		{"due in a week", now.Add(7 * 24 * time.Hour), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PriorityFor(tt.due, now))
		})
	}
}

func TestPriorityJob_SweepsActiveTasks(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	deletedAt := now.Add(-time.Hour)

	tasks := []models.Task{
		{ID: "t-overdue", Title: "a", DueDate: now.Add(-72 * time.Hour), Priority: 3, Status: models.StatusTodo, UserID: "u-1"},
		{ID: "t-today", Title: "b", DueDate: now.Add(2 * time.Hour), Priority: 3, Status: models.StatusDone, UserID: "u-1"},
		{ID: "t-far", Title: "c", DueDate: now.Add(10 * 24 * time.Hour), Priority: 0, Status: models.StatusTodo, UserID: "u-1"},
		{ID: "t-deleted", Title: "d", DueDate: now.Add(-72 * time.Hour), Priority: 3, Status: models.StatusTodo, UserID: "u-1", DeletedAt: &deletedAt},
	}
	for i := range tasks {
		require.NoError(t, db.Create(&tasks[i]).Error)
	}

	job := &PriorityJob{DB: db, Workers: 4, Now: func() time.Time { return now }}
	require.NoError(t, job.Run(context.Background()))

	want := map[string]int{
		"t-overdue": 0,
		"t-today":   2, // status DONE is not excluded from the sweep
		"t-far":     4,
		"t-deleted": 3, // untouched
	}
	for id, priority := range want {
		var task models.Task
		require.NoError(t, db.Where("id = ?", id).First(&task).Error)
		require.Equal(t, priority, task.Priority, "task %s", id)
	}
}
