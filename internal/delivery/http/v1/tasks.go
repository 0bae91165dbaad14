package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-tasks-api/internal/models"
	"github.com/adanyl0v/go-tasks-api/internal/services"
)

type taskResponse struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Status string `json:"status"`
}

func newTaskResponse(task *models.Task) taskResponse {
	return taskResponse{
		ID:     task.ID,
		Text:   task.Text,
		Status: task.Status,
	}
}

type dataResponse[T any] struct {
	Data T `json:"data"`
}

type createTaskRequest struct {
	Text string `json:"text" binding:"required,min=3"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(msgInvalidTask))
		return
	}

	task, err := h.tasks.CreateTask(c, req.Text)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create task")
		if errors.Is(err, services.ErrInvalidTask) {
			abort(c, newBadRequestError(msgInvalidTask))
			return
		}
		abort(c, newInternalError(err))
		return
	}

	c.JSON(http.StatusCreated, dataResponse[taskResponse]{Data: newTaskResponse(task)})
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	tasks, err := h.tasks.GetTasks(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get tasks")
		abort(c, newInternalError(err))
		return
	}

	response := make([]taskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = newTaskResponse(task)
	}

	h.logger.Debug().
		Int("count", len(response)).
		Msg("fetched tasks")
	c.JSON(http.StatusOK, dataResponse[[]taskResponse]{Data: response})
}

func (h *handlerImpl) HandleGetTask(c *gin.Context) {
	taskID := c.Param("id")

	task, err := h.tasks.GetTaskByID(c, taskID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to get task")
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newTaskIDNotFoundError(taskID))
			return
		}
		abort(c, newInternalError(err))
		return
	}

	// 201 is what existing clients of this endpoint receive.
	c.JSON(http.StatusCreated, dataResponse[taskResponse]{Data: newTaskResponse(task)})
}

type updateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=TODO INPROGRESS DONE"`
}

func (h *handlerImpl) HandleSetTaskStatus(c *gin.Context) {
	taskID := c.Param("id")

	var req updateTaskStatusRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to bind json")
		abort(c, newBadRequestError(msgInvalidTaskStatus))
		return
	}

	err = h.tasks.UpdateTaskStatus(c, services.UpdateTaskStatusParams{
		ID:     taskID,
		Status: req.Status,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to update task status")
		switch {
		case errors.Is(err, services.ErrInvalidTaskStatus):
			abort(c, newBadRequestError(msgInvalidTaskStatus))
		case errors.Is(err, services.ErrTaskNotFound):
			abort(c, newNotFoundError(msgTaskNotFound))
		default:
			abort(c, newInternalError(err))
		}
		return
	}

	c.Status(http.StatusNonAuthoritativeInfo)
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	taskID := c.Param("id")

	err := h.tasks.DeleteTask(c, taskID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to delete task")
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newNotFoundError(msgTaskNotFound))
			return
		}
		abort(c, newInternalError(err))
		return
	}

	c.Status(http.StatusNonAuthoritativeInfo)
}
