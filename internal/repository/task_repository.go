package repository

import (
	"time"

	"github.com/todoplanner/todo-planner-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// ExistsByID reports whether any task row has the given ID
func (r *GormTaskRepository) ExistsByID(id string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Task{}).Where("task_id_pk = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindOwned finds a non-hidden task by (taskID, ownerID). A task owned
// by someone else or already hidden surfaces as gorm.ErrRecordNotFound.
func (r *GormTaskRepository) FindOwned(taskID, ownerID string) (*models.Task, error) {
	var task models.Task
	err := r.db.
		Where("task_id_pk = ? AND user_id_fk = ? AND hidden = ?", taskID, ownerID, false).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByOwner lists non-hidden tasks for an owner ordered by due date
// ascending. Rows without a due date take the store's default null
// ordering.
func (r *GormTaskRepository) ListByOwner(ownerID string) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Where("user_id_fk = ? AND hidden = ?", ownerID, false).
		Order("due_date ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListDueBetween lists non-hidden tasks due in [from, to)
func (r *GormTaskRepository) ListDueBetween(ownerID string, from, to time.Time) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Where("user_id_fk = ? AND hidden = ?", ownerID, false).
		Where("due_date >= ? AND due_date < ?", from, to).
		Order("due_date ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update persists changes to an existing task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Hide soft-deletes a task. The owner and hidden filters sit in the
// same UPDATE that flips the flag, so the check and the write cannot
// be split by a concurrent request.
func (r *GormTaskRepository) Hide(taskID, ownerID string) (int64, error) {
	result := r.db.Model(&models.Task{}).
		Where("task_id_pk = ? AND user_id_fk = ? AND hidden = ?", taskID, ownerID, false).
		Update("hidden", true)
	return result.RowsAffected, result.Error
}

type statusCount struct {
	Status models.TaskStatus
	Count  int64
}

// CountByStatus counts non-hidden tasks grouped by status. Only
// statuses with matching rows come back; the service zero-fills.
func (r *GormTaskRepository) CountByStatus(ownerID string) (map[models.TaskStatus]int64, error) {
	var rows []statusCount
	err := r.db.Model(&models.Task{}).
		Select("status, COUNT(*) AS count").
		Where("user_id_fk = ? AND hidden = ?", ownerID, false).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.TaskStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

type priorityCount struct {
	Priority models.TaskPriority
	Count    int64
}

// CountByPriority counts non-hidden tasks grouped by priority
func (r *GormTaskRepository) CountByPriority(ownerID string) (map[models.TaskPriority]int64, error) {
	var rows []priorityCount
	err := r.db.Model(&models.Task{}).
		Select("priority, COUNT(*) AS count").
		Where("user_id_fk = ? AND hidden = ?", ownerID, false).
		Group("priority").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.TaskPriority]int64, len(rows))
	for _, row := range rows {
		counts[row.Priority] = row.Count
	}
	return counts, nil
}
