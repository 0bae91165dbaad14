package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidTask       = "Task is not valid!"
	msgInvalidTaskStatus = "Not Valid Status"
	msgTaskNotFound      = "Task is not found"
)

type apiError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, err)
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

func newTaskIDNotFoundError(taskID string) apiError {
	return newNotFoundError(fmt.Sprintf("Task with ID %s not found.", taskID))
}

// newInternalError echoes the underlying error to the caller.
func newInternalError(err error) apiError {
	return newAPIError(http.StatusInternalServerError, err.Error())
}
