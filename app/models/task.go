package models

import "time"

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// Task. ProjectID and AssignedTo are plain indexed columns; no cascade
// semantics apply when the project or user goes away.
type Task struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"size:32;not null;default:pending" json:"status"`
	ProjectID   uint      `gorm:"index;not null" json:"project_id"`
	AssignedTo  uint      `gorm:"index;not null" json:"assigned_to"`
	OrderIndex  *int      `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
