package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/todoplanner/todo-planner-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// newMockRepo opens a GORM connection over sqlmock so tests can assert
// on the SQL the repository actually emits.
func newMockRepo(t *testing.T) (TaskRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return NewTaskRepository(db), mock
}

func TestCountByStatus_ScopedToOwnerAndVisible(t *testing.T) {
	repo, mock := newMockRepo(t)

	// The owner and hidden filters must sit in the grouping query
	// itself, not in a separate check.
	mock.ExpectQuery(`SELECT status, COUNT\(\*\) AS count FROM .todo_tasks. WHERE user_id_fk = \? AND hidden = \? GROUP BY .?status.?`).
		WithArgs("owner-1", false).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("incomplete", 2))

	counts, err := repo.CountByStatus("owner-1")
	require.NoError(t, err)
	require.Equal(t, int64(2), counts[models.TaskStatusIncomplete])
	// The repository reports only populated buckets; zero-filling is
	// the service's job.
	_, ok := counts[models.TaskStatusComplete]
	require.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByPriority_ScopedToOwnerAndVisible(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT priority, COUNT\(\*\) AS count FROM .todo_tasks. WHERE user_id_fk = \? AND hidden = \? GROUP BY .?priority.?`).
		WithArgs("owner-1", false).
		WillReturnRows(sqlmock.NewRows([]string{"priority", "count"}).
			AddRow("high", 3).
			AddRow("low", 1))

	counts, err := repo.CountByPriority("owner-1")
	require.NoError(t, err)
	require.Equal(t, int64(3), counts[models.TaskPriorityHigh])
	require.Equal(t, int64(1), counts[models.TaskPriorityLow])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHide_SingleScopedUpdate(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Soft delete is one UPDATE carrying the owner and hidden filters;
	// there is no preceding SELECT to race against.
	mock.ExpectExec(`UPDATE .todo_tasks. SET .hidden.=\?,.updated_at.=\? WHERE task_id_pk = \? AND user_id_fk = \? AND hidden = \?`).
		WithArgs(true, sqlmock.AnyArg(), "task-1", "owner-1", false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Hide("task-1", "owner-1")
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHide_NoMatchingRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE .todo_tasks. SET .hidden.=\?,.updated_at.=\? WHERE task_id_pk = \? AND user_id_fk = \? AND hidden = \?`).
		WithArgs(true, sqlmock.AnyArg(), "task-1", "intruder", false).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.Hide("task-1", "intruder")
	require.NoError(t, err)
	require.Equal(t, int64(0), affected)

	require.NoError(t, mock.ExpectationsWereMet())
}
