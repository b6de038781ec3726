package repository

import (
	"time"

	"github.com/todoplanner/todo-planner-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID, hidden or not; callers decide what
	// a hidden row means
	FindByID(id string) (*models.User, error)

	// FindByUsernameAndEmail finds the user matching both credentials
	FindByUsernameAndEmail(username, email string) (*models.User, error)

	// ExistsByID reports whether any user row has the given ID
	ExistsByID(id string) (bool, error)

	// UsernameTaken reports whether username belongs to a row other
	// than excludeID
	UsernameTaken(username, excludeID string) (bool, error)

	// EmailTaken reports whether email belongs to a row other than
	// excludeID
	EmailTaken(email, excludeID string) (bool, error)

	// Update persists changes to an existing user
	Update(user *models.User) error
}

// TaskRepository defines the interface for task data access. Every
// read and write is scoped by owner ID and the hidden flag in the same
// query that performs the operation.
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// ExistsByID reports whether any task row has the given ID
	ExistsByID(id string) (bool, error)

	// FindOwned finds a non-hidden task by (taskID, ownerID)
	FindOwned(taskID, ownerID string) (*models.Task, error)

	// ListByOwner lists non-hidden tasks for an owner, due date ascending
	ListByOwner(ownerID string) ([]models.Task, error)

	// ListDueBetween lists non-hidden tasks due in [from, to)
	ListDueBetween(ownerID string, from, to time.Time) ([]models.Task, error)

	// Update persists changes to an existing task
	Update(task *models.Task) error

	// Hide soft-deletes the task owned by ownerID, returning the
	// number of rows changed
	Hide(taskID, ownerID string) (int64, error)

	// CountByStatus counts non-hidden tasks grouped by status
	CountByStatus(ownerID string) (map[models.TaskStatus]int64, error)

	// CountByPriority counts non-hidden tasks grouped by priority
	CountByPriority(ownerID string) (map[models.TaskPriority]int64, error)
}
