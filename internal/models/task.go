package models

import "time"

const (
	StatusTodo       = "TODO"
	StatusInProgress = "INPROGRESS"
	StatusDone       = "DONE"
)

// TaskTextMinLength is the minimal number of characters in a task text.
const TaskTextMinLength = 3

type Task struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Text      string    `gorm:"not null;check:chk_tasks_text,length(text) >= 3"`
	Status    string    `gorm:"type:varchar(16);not null;default:TODO;check:chk_tasks_status,status IN ('TODO', 'INPROGRESS', 'DONE')"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// IsValidStatus reports whether status is one of the known task statuses.
func IsValidStatus(status string) bool {
	switch status {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}
