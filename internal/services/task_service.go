package services

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/todoplanner/todo-planner-api/internal/errors"
	"github.com/todoplanner/todo-planner-api/internal/models"
	"github.com/todoplanner/todo-planner-api/internal/repository"
	"github.com/todoplanner/todo-planner-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrTaskFieldsRequired = errors.New(errors.KindValidation, "All fields must be filled!")
	ErrInvalidPriority    = errors.New(errors.KindValidation, "Priority must be one of: low, medium, high!")
	ErrInvalidStatus      = errors.New(errors.KindValidation, "Status must be either incomplete or complete!")
	ErrInvalidDueDate     = errors.New(errors.KindValidation, "Enter a valid due date!")
	ErrTaskNotFound       = errors.New(errors.KindNotFound, "Task not found!")
)

// TaskService handles task business logic. Every operation takes the
// resolved owner explicitly; there is no ambient identity.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     *time.Time
	Status      string
}

// UpdateTaskInput is the task patch: nil fields keep their current value.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Priority    *string
	DueDate     *time.Time
	Status      *string
}

// Create validates and persists a new task for ownerID.
func (s *TaskService) Create(ownerID string, input CreateTaskInput) (*models.Task, error) {
	if ownerID == "" || input.Title == "" || input.Description == "" ||
		input.Priority == "" || input.Status == "" || input.DueDate == nil {
		return nil, ErrTaskFieldsRequired
	}

	priority := models.TaskPriority(input.Priority)
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}
	status := models.TaskStatus(input.Status)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	id, err := utils.NewUniqueID(s.taskRepo.ExistsByID)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:          id,
		UserID:      ownerID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    priority,
		DueDate:     input.DueDate,
		Status:      status,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// List returns the owner's visible tasks, earliest due date first.
func (s *TaskService) List(ownerID string) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListToday returns the owner's visible tasks due within the current
// calendar day in the server's timezone: inclusive start of day,
// exclusive start of the next day.
func (s *TaskService) ListToday(ownerID string) ([]models.Task, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	tasks, err := s.taskRepo.ListDueBetween(ownerID, startOfDay, endOfDay)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's tasks: %w", err)
	}
	return tasks, nil
}

// Update applies a partial update to a task owned by ownerID. A task
// that does not exist, is hidden, or belongs to someone else is the
// same "not found".
func (s *TaskService) Update(ownerID, taskID string, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindOwned(taskID, ownerID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Priority != nil {
		priority := models.TaskPriority(*input.Priority)
		if !priority.Valid() {
			return nil, ErrInvalidPriority
		}
		task.Priority = priority
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Status != nil {
		status := models.TaskStatus(*input.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		task.Status = status
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Delete soft-deletes a task owned by ownerID.
func (s *TaskService) Delete(ownerID, taskID string) error {
	affected, err := s.taskRepo.Hide(taskID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// CountByStatus returns per-status counts of the owner's visible
// tasks with every status present, zero-filled.
func (s *TaskService) CountByStatus(ownerID string) (map[models.TaskStatus]int64, error) {
	counts, err := s.taskRepo.CountByStatus(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks by status: %w", err)
	}

	filled := make(map[models.TaskStatus]int64, len(models.TaskStatuses))
	for _, status := range models.TaskStatuses {
		filled[status] = counts[status]
	}
	return filled, nil
}

// CountByPriority returns per-priority counts of the owner's visible
// tasks with every priority present, zero-filled.
func (s *TaskService) CountByPriority(ownerID string) (map[models.TaskPriority]int64, error) {
	counts, err := s.taskRepo.CountByPriority(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks by priority: %w", err)
	}

	filled := make(map[models.TaskPriority]int64, len(models.TaskPriorities))
	for _, priority := range models.TaskPriorities {
		filled[priority] = counts[priority]
	}
	return filled, nil
}
