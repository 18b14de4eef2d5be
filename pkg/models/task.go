package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task represents one unit of work scheduled for a client on a given day.
//
// Client identity is denormalized onto each row: there is no clients
// table, so ClientID and ClientColor are derived from ClientName at
// creation time (pkg/identity) and never change afterwards. TaskDate is
// the only mutable field, and only the rollover operation moves it.
type Task struct {
	ID          uuid.UUID      `json:"id" gorm:"primaryKey;type:uuid"`
	ClientID    uuid.UUID      `json:"client_id" gorm:"not null;type:uuid;index:idx_tasks_client"`
	ClientName  string         `json:"client_name" gorm:"not null"`
	Description string         `json:"description" gorm:"not null"`
	TaskDate    Date           `json:"task_date" gorm:"not null;index:idx_tasks_date"`
	ClientColor string         `json:"client_color" gorm:"not null;type:varchar(7)"`
	CreatedAt   time.Time      `json:"created_at" gorm:"not null"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// BeforeCreate assigns the task id; SQLite has no server-side uuid default.
func (t *Task) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// CreateTaskPayload is the create request body. TaskDate is optional and
// defaults to the current UTC date on the server side.
type CreateTaskPayload struct {
	ClientName  string `json:"client_name" binding:"required"`
	Description string `json:"description" binding:"required"`
	TaskDate    *Date  `json:"task_date"`
}
