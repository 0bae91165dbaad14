package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/adanyl0v/go-tasks-api/internal/models"
	"github.com/adanyl0v/go-tasks-api/internal/testutil"
)

func newTestTaskService(t *testing.T) (TaskService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTaskDB(t)
	return NewTaskService(zerolog.Nop(), db), db
}

func countTasks(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Task{}).Count(&count).Error)
	return count
}

func TestCreateTask(t *testing.T) {
	service, db := newTestTaskService(t)
	ctx := context.Background()

	task, err := service.CreateTask(ctx, "write docs")
	require.NoError(t, err)

	assert.Equal(t, "write docs", task.Text)
	assert.Equal(t, models.StatusTodo, task.Status)
	_, err = uuid.Parse(task.ID)
	assert.NoError(t, err, "id must be a uuid")
	assert.EqualValues(t, 1, countTasks(t, db))
}

func TestCreateTask_UniqueIDs(t *testing.T) {
	service, _ := newTestTaskService(t)
	ctx := context.Background()

	ids := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		task, err := service.CreateTask(ctx, fmt.Sprintf("task %d", i))
		require.NoError(t, err)
		ids[task.ID] = struct{}{}
	}
	assert.Len(t, ids, 20)
}

func TestCreateTask_InvalidText(t *testing.T) {
	service, db := newTestTaskService(t)
	ctx := context.Background()

	for _, text := range []string{"", "a", "ab", "åß"} {
		task, err := service.CreateTask(ctx, text)
		assert.ErrorIs(t, err, ErrInvalidTask, "text %q", text)
		assert.Nil(t, task)
	}
	assert.EqualValues(t, 0, countTasks(t, db))
}

func TestCreateTask_MinLengthCountsCharacters(t *testing.T) {
	service, _ := newTestTaskService(t)

	task, err := service.CreateTask(context.Background(), "åßç")
	require.NoError(t, err)
	assert.Equal(t, "åßç", task.Text)
}

func TestGetTasks_Empty(t *testing.T) {
	service, _ := newTestTaskService(t)

	tasks, err := service.GetTasks(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestGetTasks(t *testing.T) {
	service, _ := newTestTaskService(t)
	ctx := context.Background()

	created := make(map[string]string)
	for _, text := range []string{"first", "second", "third"} {
		task, err := service.CreateTask(ctx, text)
		require.NoError(t, err)
		created[task.ID] = task.Text
	}

	tasks, err := service.GetTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, len(created))
	for _, task := range tasks {
		assert.Equal(t, created[task.ID], task.Text)
		assert.Equal(t, models.StatusTodo, task.Status)
	}
}

func TestGetTaskByID(t *testing.T) {
	service, _ := newTestTaskService(t)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, "round trip")
	require.NoError(t, err)

	task, err := service.GetTaskByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, task.ID)
	assert.Equal(t, "round trip", task.Text)
	assert.Equal(t, models.StatusTodo, task.Status)
}

func TestGetTaskByID_NotFound(t *testing.T) {
	service, _ := newTestTaskService(t)

	task, err := service.GetTaskByID(context.Background(), "unknown-id")
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.Nil(t, task)
}

func TestUpdateTaskStatus(t *testing.T) {
	service, _ := newTestTaskService(t)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, "move me around")
	require.NoError(t, err)

	// No transition is restricted.
	for _, status := range []string{
		models.StatusDone,
		models.StatusTodo,
		models.StatusInProgress,
		models.StatusInProgress,
		models.StatusTodo,
	} {
		err = service.UpdateTaskStatus(ctx, UpdateTaskStatusParams{
			ID:     created.ID,
			Status: status,
		})
		require.NoError(t, err, status)

		task, err := service.GetTaskByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, status, task.Status)
		assert.Equal(t, "move me around", task.Text)
	}
}

func TestUpdateTaskStatus_InvalidStatus(t *testing.T) {
	service, _ := newTestTaskService(t)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, "keep me")
	require.NoError(t, err)

	for _, status := range []string{"", "todo", "IN_PROGRESS", "ARCHIVED"} {
		err = service.UpdateTaskStatus(ctx, UpdateTaskStatusParams{
			ID:     created.ID,
			Status: status,
		})
		assert.ErrorIs(t, err, ErrInvalidTaskStatus, status)
	}

	task, err := service.GetTaskByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusTodo, task.Status)
}

func TestUpdateTaskStatus_InvalidStatusBeforeNotFound(t *testing.T) {
	service, _ := newTestTaskService(t)

	err := service.UpdateTaskStatus(context.Background(), UpdateTaskStatusParams{
		ID:     "unknown-id",
		Status: "NOPE",
	})
	assert.ErrorIs(t, err, ErrInvalidTaskStatus)
}

func TestUpdateTaskStatus_NotFound(t *testing.T) {
	service, _ := newTestTaskService(t)

	err := service.UpdateTaskStatus(context.Background(), UpdateTaskStatusParams{
		ID:     "unknown-id",
		Status: models.StatusDone,
	})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTask(t *testing.T) {
	service, db := newTestTaskService(t)
	ctx := context.Background()

	keep, err := service.CreateTask(ctx, "keep me")
	require.NoError(t, err)
	drop, err := service.CreateTask(ctx, "drop me")
	require.NoError(t, err)

	require.NoError(t, service.DeleteTask(ctx, drop.ID))

	_, err = service.GetTaskByID(ctx, drop.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
	_, err = service.GetTaskByID(ctx, keep.ID)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, countTasks(t, db))

	err = service.DeleteTask(ctx, drop.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound, "second delete")
}

func TestDeleteTask_NotFound(t *testing.T) {
	service, _ := newTestTaskService(t)

	err := service.DeleteTask(context.Background(), "unknown-id")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestPersistenceErrorsPassThrough(t *testing.T) {
	service, db := newTestTaskService(t)
	ctx := context.Background()

	require.NoError(t, db.Migrator().DropTable(&models.Task{}))

	_, err := service.CreateTask(ctx, "no table")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidTask)

	_, err = service.GetTasks(ctx)
	assert.Error(t, err)

	_, err = service.GetTaskByID(ctx, "any")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrTaskNotFound)

	err = service.UpdateTaskStatus(ctx, UpdateTaskStatusParams{ID: "any", Status: models.StatusDone})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrTaskNotFound)

	err = service.DeleteTask(ctx, "any")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrTaskNotFound)
}

func TestIsCheckViolation(t *testing.T) {
	checkErr := &pgconn.PgError{Code: pgerrcode.CheckViolation}
	uniqueErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation}

	assert.True(t, isCheckViolation(checkErr))
	assert.True(t, isCheckViolation(fmt.Errorf("insert: %w", checkErr)))
	assert.False(t, isCheckViolation(uniqueErr))
	assert.False(t, isCheckViolation(ErrTaskNotFound))
	assert.False(t, isCheckViolation(nil))
}

func TestTasksTable_RejectsShortText(t *testing.T) {
	_, db := newTestTaskService(t)

	err := db.Create(&models.Task{
		ID:     uuid.NewString(),
		Text:   "ab",
		Status: models.StatusTodo,
	}).Error
	assert.Error(t, err)
	assert.EqualValues(t, 0, countTasks(t, db))
}

func TestTasksTable_RejectsUnknownStatus(t *testing.T) {
	_, db := newTestTaskService(t)

	err := db.Create(&models.Task{
		ID:     uuid.NewString(),
		Text:   "valid text",
		Status: "ARCHIVED",
	}).Error
	assert.Error(t, err)
	assert.EqualValues(t, 0, countTasks(t, db))
}

// checkViolation fails the statement the way postgres
// reports a violated CHECK constraint.
func checkViolation(tx *gorm.DB) {
	_ = tx.AddError(&pgconn.PgError{Code: pgerrcode.CheckViolation})
}

func TestCreateTask_CheckViolation(t *testing.T) {
	service, db := newTestTaskService(t)
	err := db.Callback().Create().Before("gorm:create").Register("test:check_violation", checkViolation)
	require.NoError(t, err)

	task, err := service.CreateTask(context.Background(), "valid text")
	assert.ErrorIs(t, err, ErrInvalidTask)
	assert.Nil(t, task)
	assert.EqualValues(t, 0, countTasks(t, db))
}

func TestUpdateTaskStatus_CheckViolation(t *testing.T) {
	service, db := newTestTaskService(t)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, "valid text")
	require.NoError(t, err)

	err = db.Callback().Update().Before("gorm:update").Register("test:check_violation", checkViolation)
	require.NoError(t, err)

	err = service.UpdateTaskStatus(ctx, UpdateTaskStatusParams{
		ID:     created.ID,
		Status: models.StatusDone,
	})
	assert.ErrorIs(t, err, ErrInvalidTaskStatus)
}
