package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sbksba/weektask/pkg/clock"
	"github.com/sbksba/weektask/pkg/identity"
	"github.com/sbksba/weektask/pkg/models"
)

// TaskRepository owns all task rows. "Today" always comes from the
// injected clock and means the current UTC calendar day.
type TaskRepository struct {
	db    *gorm.DB
	clock clock.Clock
}

func NewTaskRepository(db *gorm.DB, c clock.Clock) *TaskRepository {
	return &TaskRepository{db: db, clock: c}
}

// WeekWindow returns the inclusive [Monday, Sunday] range of the week
// containing d. Weeks start on Monday.
func WeekWindow(d models.Date) (models.Date, models.Date) {
	offset := (int(d.Weekday()) + 6) % 7
	start := d.AddDays(-offset)
	return start, start.AddDays(6)
}

// Create validates the payload, derives the client identity and inserts
// a new active task. The task date defaults to today.
func (r *TaskRepository) Create(ctx context.Context, payload models.CreateTaskPayload) (models.Task, error) {
	name := strings.TrimSpace(payload.ClientName)
	if name == "" {
		return models.Task{}, &ValidationError{Field: "client_name", Reason: "must not be empty"}
	}
	description := strings.TrimSpace(payload.Description)
	if description == "" {
		return models.Task{}, &ValidationError{Field: "description", Reason: "must not be empty"}
	}

	taskDate := models.NewDate(r.clock.Now())
	if payload.TaskDate != nil {
		taskDate = *payload.TaskDate
	}

	clientID, clientColor := identity.Resolve(name)

	task := models.Task{
		ClientID:    clientID,
		ClientName:  name,
		Description: description,
		TaskDate:    taskDate,
		ClientColor: clientColor,
		CreatedAt:   r.clock.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(&task).Error; err != nil {
		return models.Task{}, fmt.Errorf("failed to insert task: %w", err)
	}

	return task, nil
}

// CurrentWeekTasks returns the active tasks dated within this week's
// window, ordered by task date then creation time.
func (r *TaskRepository) CurrentWeekTasks(ctx context.Context) ([]models.Task, error) {
	start, end := WeekWindow(models.NewDate(r.clock.Now()))

	tasks := make([]models.Task, 0)
	err := r.db.WithContext(ctx).
		Where("task_date BETWEEN ? AND ?", start, end).
		Order("task_date ASC, created_at ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve current week tasks: %w", err)
	}

	return tasks, nil
}

// Delete permanently removes a task row. The row is irrecoverable; a
// missing id is reported as ErrTaskNotFound with no other effect.
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Unscoped().Delete(&models.Task{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Rollover advances every active task dated today to tomorrow and
// returns the number of rows moved. Predicate and mutation run as one
// UPDATE, so a task created mid-rollover is never migrated twice, and a
// second call on the same day matches nothing.
func (r *TaskRepository) Rollover(ctx context.Context) (int64, error) {
	today := models.NewDate(r.clock.Now())

	result := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("task_date = ?", today).
		Update("task_date", today.AddDays(1))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to roll over tasks: %w", result.Error)
	}

	return result.RowsAffected, nil
}
