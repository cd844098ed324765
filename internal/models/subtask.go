package models

import "time"

// SubTask completion states. Stored as an integer column to keep the
// wire format compact.
const (
	SubTaskIncomplete = 0
	SubTaskComplete   = 1
)

// SubTaskStatusFor maps a task status to the completion state its
// subtasks are forced into when the task is updated. DONE completes
// them; any other status resets them to incomplete.
func SubTaskStatusFor(status TaskStatus) int {
	if status == StatusDone {
		return SubTaskComplete
	}
	return SubTaskIncomplete
}

// SubTask represents a checklist item under a task. TaskID is set at
// creation and never changes; the referenced task is not required to
// exist (creation is a pass-through, no parent lookup).
type SubTask struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	TaskID    string     `json:"task_id" gorm:"column:task_id;not null;index"`
	Status    int        `json:"status" gorm:"default:0"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"column:deleted_at;index"`
}

// TableName specifies the table name for SubTask Model
func (SubTask) TableName() string {
	return "subtasks"
}
