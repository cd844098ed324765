package models

import "time"

// TaskStatus represents the status of a task
type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task priorities are integers recomputed from the due date by the
// nightly maintenance sweep. 0 is most urgent (overdue), 4 least.
const (
	PriorityOverdue  = 0
	PriorityDueToday = 1
	PriorityNear     = 2
	PriorityUpcoming = 3
	PriorityFar      = 4

	// DefaultPriority is assigned at creation, before the first sweep runs.
	DefaultPriority = PriorityUpcoming
)

// Task represents a task in the system. The owner is fixed at creation
// and never reassigned. Deletion is soft: DeletedAt is stamped and the
// row stays in the table, excluded from active-task queries.
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description"`
	DueDate     time.Time  `json:"due_date" gorm:"column:due_date;not null"`
	Priority    int        `json:"priority" gorm:"default:3"`
	Status      TaskStatus `json:"status" gorm:"not null;default:'TODO'"`
	UserID      string     `json:"user_id" gorm:"column:user_id;index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at" gorm:"column:deleted_at;index"`
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}
