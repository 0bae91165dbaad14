package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/adanyl0v/go-tasks-api/internal/models"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	db     *gorm.DB
}

func NewTaskService(
	logger zerolog.Logger,
	db *gorm.DB,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		db:     db,
	}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, text string) (*models.Task, error) {
	if utf8.RuneCountInString(text) < models.TaskTextMinLength {
		s.logger.Error().
			Int("length", utf8.RuneCountInString(text)).
			Msg("task text is too short")
		return nil, ErrInvalidTask
	}

	taskUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate task uuid")
		return nil, fmt.Errorf("generate task id: %w", err)
	}

	task := &models.Task{
		ID:     taskUUID.String(),
		Text:   text,
		Status: models.StatusTodo,
	}

	err = s.db.WithContext(ctx).Create(task).Error
	if err != nil {
		if isCheckViolation(err) {
			s.logger.Error().
				Err(err).
				Msg("task violates a check constraint")
			return nil, ErrInvalidTask
		}

		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) GetTasks(ctx context.Context) ([]*models.Task, error) {
	tasks := make([]*models.Task, 0)
	err := s.db.WithContext(ctx).
		Model(&models.Task{}).
		Select("id", "text", "status").
		Find(&tasks).
		Error
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select tasks")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("selected tasks")
	return tasks, nil
}

func (s *taskServiceImpl) GetTaskByID(ctx context.Context, taskID string) (*models.Task, error) {
	task := new(models.Task)
	err := s.db.WithContext(ctx).
		Where("id = ?", taskID).
		Take(task).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().
				Str("task_id", taskID).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to select task by id")
		return nil, err
	}

	s.logger.Debug().
		Str("task_id", task.ID).
		Msg("selected task by id")
	return task, nil
}

func (s *taskServiceImpl) UpdateTaskStatus(ctx context.Context, params UpdateTaskStatusParams) error {
	if !models.IsValidStatus(params.Status) {
		s.logger.Error().
			Str("status", params.Status).
			Msg("invalid task status")
		return ErrInvalidTaskStatus
	}

	result := s.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("id = ?", params.ID).
		Update("status", params.Status)
	if result.Error != nil {
		if isCheckViolation(result.Error) {
			s.logger.Error().
				Err(result.Error).
				Str("task_id", params.ID).
				Msg("task status violates a check constraint")
			return ErrInvalidTaskStatus
		}

		s.logger.Error().
			Err(result.Error).
			Str("task_id", params.ID).
			Msg("failed to update task status")
		return result.Error
	}
	if result.RowsAffected == 0 {
		s.logger.Warn().
			Str("task_id", params.ID).
			Msg("task not found")
		return ErrTaskNotFound
	}

	s.logger.Info().
		Str("task_id", params.ID).
		Str("status", params.Status).
		Msg("updated task status")
	return nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, taskID string) error {
	result := s.db.WithContext(ctx).
		Where("id = ?", taskID).
		Delete(&models.Task{})
	if result.Error != nil {
		s.logger.Error().
			Err(result.Error).
			Str("task_id", taskID).
			Msg("failed to delete task")
		return result.Error
	}
	if result.RowsAffected == 0 {
		s.logger.Warn().
			Str("task_id", taskID).
			Msg("task not found")
		return ErrTaskNotFound
	}

	s.logger.Info().
		Str("task_id", taskID).
		Msg("deleted task")
	return nil
}
