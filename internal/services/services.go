package services

import (
	"context"
	"errors"

	"github.com/adanyl0v/go-tasks-api/internal/models"
)

var (
	ErrInvalidTask       = errors.New("invalid task")
	ErrInvalidTaskStatus = errors.New("invalid task status")
	ErrTaskNotFound      = errors.New("task not found")
)

type TaskService interface {
	// CreateTask stores a new task with the given text.
	//
	// The task gets a fresh UUID and the TODO status. It returns
	// ErrInvalidTask if the text is shorter than
	// models.TaskTextMinLength characters.
	CreateTask(ctx context.Context, text string) (*models.Task, error)

	// GetTasks returns every stored task in no particular order.
	// An empty store yields an empty slice.
	GetTasks(ctx context.Context) ([]*models.Task, error)

	// GetTaskByID returns the task with the given ID
	// or ErrTaskNotFound if it doesn't exist.
	GetTaskByID(ctx context.Context, taskID string) (*models.Task, error)

	// UpdateTaskStatus sets the status of the task with the given ID.
	//
	// Any status may follow any other. It returns ErrInvalidTaskStatus
	// if the status is unknown or ErrTaskNotFound if the task
	// doesn't exist.
	UpdateTaskStatus(ctx context.Context, params UpdateTaskStatusParams) error

	// DeleteTask removes the task with the given ID
	// or returns ErrTaskNotFound if it doesn't exist.
	DeleteTask(ctx context.Context, taskID string) error
}

type UpdateTaskStatusParams struct {
	ID     string
	Status string
}
