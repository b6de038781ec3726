package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/todoplanner/todo-planner-api/internal/dto"
	apierrors "github.com/todoplanner/todo-planner-api/internal/errors"
	"github.com/todoplanner/todo-planner-api/internal/middleware"
	"github.com/todoplanner/todo-planner-api/internal/models"
	"github.com/todoplanner/todo-planner-api/internal/services"
)

// TaskHandler coordinates task-related HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// GetAllTasks returns every visible task of the caller, earliest due
// date first.
func (h *TaskHandler) GetAllTasks(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Respond(c, "getAllTaskMessage", errNoResolvedUser)
		return
	}

	tasks, err := h.taskService.List(user.ID)
	if err != nil {
		apierrors.Respond(c, "getAllTaskMessage", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// GetAllTodayTasks returns the caller's tasks due within the current
// calendar day.
func (h *TaskHandler) GetAllTodayTasks(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Respond(c, "getTodayTasksMessage", errNoResolvedUser)
		return
	}

	tasks, err := h.taskService.ListToday(user.ID)
	if err != nil {
		apierrors.Respond(c, "getTodayTasksMessage", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// CreateTask creates a task owned by the caller.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Respond(c, "createTaskMessage", errNoResolvedUser)
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, "createTaskMessage", errInvalidBody)
		return
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := dto.ParseDueDate(req.DueDate)
		if err != nil {
			apierrors.Respond(c, "createTaskMessage", services.ErrInvalidDueDate)
			return
		}
		dueDate = &parsed
	}

	task, err := h.taskService.Create(user.ID, services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     dueDate,
		Status:      req.Status,
	})
	if err != nil {
		apierrors.Respond(c, "createTaskMessage", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task created successfully",
		"task":    dto.ToTaskDTO(*task),
	})
}

// UpdateTask applies a partial update to one of the caller's tasks.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Respond(c, "updateTaskMessage", errNoResolvedUser)
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Respond(c, "updateTaskMessage", errInvalidBody)
		return
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := dto.ParseDueDate(*req.DueDate)
		if err != nil {
			apierrors.Respond(c, "updateTaskMessage", services.ErrInvalidDueDate)
			return
		}
		dueDate = &parsed
	}

	task, err := h.taskService.Update(user.ID, c.Param("taskId"), services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     dueDate,
		Status:      req.Status,
	})
	if err != nil {
		apierrors.Respond(c, "updateTaskMessage", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully!",
		"task":    dto.ToTaskDTO(*task),
	})
}

// DeleteTask soft-deletes one of the caller's tasks.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Respond(c, "deleteTaskMessage", errNoResolvedUser)
		return
	}

	if err := h.taskService.Delete(user.ID, c.Param("taskId")); err != nil {
		apierrors.Respond(c, "deleteTaskMessage", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully!"})
}

// GetTaskCounts returns status totals for the caller's visible tasks.
// Both buckets are always present, zero-filled.
func (h *TaskHandler) GetTaskCounts(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Respond(c, "getTaskCountsMessage", errNoResolvedUser)
		return
	}

	counts, err := h.taskService.CountByStatus(user.ID)
	if err != nil {
		apierrors.Respond(c, "getTaskCountsMessage", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"completedCount":  counts[models.TaskStatusComplete],
		"incompleteCount": counts[models.TaskStatusIncomplete],
	})
}

// GetTaskPriorityCounts returns priority totals for the caller's
// visible tasks, zero-filled.
func (h *TaskHandler) GetTaskPriorityCounts(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Respond(c, "getTaskPriorityCountsMessage", errNoResolvedUser)
		return
	}

	counts, err := h.taskService.CountByPriority(user.ID)
	if err != nil {
		apierrors.Respond(c, "getTaskPriorityCountsMessage", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lowPriorityCount":    counts[models.TaskPriorityLow],
		"mediumPriorityCount": counts[models.TaskPriorityMedium],
		"highPriorityCount":   counts[models.TaskPriorityHigh],
	})
}
