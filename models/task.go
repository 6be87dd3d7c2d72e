package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"

	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusCancelled  = "cancelled"
)

type Task struct {
	gorm.Model
	UserID        uint       `gorm:"index" json:"user_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Priority      string     `gorm:"default:medium" json:"priority"`
	Status        string     `gorm:"default:pending" json:"status"`
	AssignedToID  *uint      `json:"assigned_to_id"`
	DueDate       time.Time  `gorm:"type:date;index" json:"due_date"`
	CompletedDate *time.Time `gorm:"type:date" json:"completed_date"`
	Notes         string     `json:"notes"`

	// Informational links only: deleting the crop or animal nulls these,
	// the task itself stays.
	RelatedCropID      *uint      `json:"related_crop_id"`
	RelatedLivestockID *uint      `json:"related_livestock_id"`
	RelatedCrop        *Crop      `gorm:"constraint:OnDelete:SET NULL" json:"related_crop,omitempty"`
	RelatedLivestock   *Livestock `gorm:"constraint:OnDelete:SET NULL" json:"related_livestock,omitempty"`
}

// IsOverdue: only work still open can be late. Completed and cancelled
// tasks are never overdue no matter the due date.
func (t *Task) IsOverdue(today time.Time) bool {
	if t.Status != TaskStatusPending && t.Status != TaskStatusInProgress {
		return false
	}
	return t.DueDate.Before(startOfDay(today))
}

// DueWithin reports open tasks falling due inside the next n days,
// today included.
func (t *Task) DueWithin(today time.Time, days int) bool {
	if t.Status != TaskStatusPending && t.Status != TaskStatusInProgress {
		return false
	}
	day := startOfDay(today)
	return !t.DueDate.Before(day) && !t.DueDate.After(day.AddDate(0, 0, days))
}
