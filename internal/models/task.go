package models

import (
	"time"
)

type TaskStatus string

const (
	TaskStatusIncomplete TaskStatus = "incomplete"
	TaskStatusComplete   TaskStatus = "complete"
)

// TaskStatuses lists every status in reporting order.
var TaskStatuses = []TaskStatus{TaskStatusIncomplete, TaskStatusComplete}

func (s TaskStatus) Valid() bool {
	return s == TaskStatusIncomplete || s == TaskStatusComplete
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// TaskPriorities lists every priority in reporting order.
var TaskPriorities = []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh}

func (p TaskPriority) Valid() bool {
	return p == TaskPriorityLow || p == TaskPriorityMedium || p == TaskPriorityHigh
}

type Task struct {
	ID          string       `gorm:"type:varchar(36);primarykey;column:task_id_pk" json:"task_id_pk"`
	UserID      string       `gorm:"type:varchar(36);not null;index;column:user_id_fk" json:"user_id_fk"`
	Title       string       `gorm:"type:varchar(255);not null" json:"title"`
	Description string       `gorm:"type:text;not null" json:"description"`
	Priority    TaskPriority `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`
	DueDate     *time.Time   `gorm:"index" json:"due_date"`
	Status      TaskStatus   `gorm:"type:varchar(12);not null;default:'incomplete'" json:"status"`
	Hidden      bool         `gorm:"not null;default:false" json:"-"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// Relations
	Owner User `gorm:"foreignKey:UserID" json:"-"`
}

func (Task) TableName() string {
	return "todo_tasks"
}
