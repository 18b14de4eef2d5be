package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sbksba/weektask/pkg/models"
	"github.com/sbksba/weektask/pkg/repository"
)

// TaskHandler adapts the task store to HTTP. It holds no logic of its
// own: validation, windowing and rollover rules all live in the store.
type TaskHandler struct {
	store *repository.TaskRepository
}

func NewTaskHandler(store *repository.TaskRepository) *TaskHandler {
	return &TaskHandler{store: store}
}

// ListTasks returns the current week's active tasks.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.store.CurrentWeekTasks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask creates a new task from the request body.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var payload models.CreateTaskPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.store.Create(c.Request.Context(), payload)
	if err != nil {
		var verr *repository.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// DeleteTask permanently removes a task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id"})
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.Status(http.StatusNoContent)
}

// RolloverTasks moves today's unfinished tasks to tomorrow.
func (h *TaskHandler) RolloverTasks(c *gin.Context) {
	count, err := h.store.Rollover(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to roll over tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           fmt.Sprintf("Successfully rolled over %d tasks.", count),
		"tasks_rolled_over": count,
	})
}
