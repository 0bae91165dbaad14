package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tasks-api/internal/services"
)

type Handler interface {
	HandleHealth(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleGetTask(c *gin.Context)
	HandleSetTaskStatus(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	tasks  services.TaskService
}

func New(
	logger zerolog.Logger,
	taskService services.TaskService,
) Handler {
	return &handlerImpl{
		logger: logger,
		tasks:  taskService,
	}
}

// RegisterRoutes mounts the handler on the router.
func RegisterRoutes(router gin.IRouter, h Handler) {
	router.GET("/health", h.HandleHealth)

	tasksRouter := router.Group("/tasks")
	tasksRouter.POST("", h.HandleCreateTask)
	tasksRouter.GET("", h.HandleGetTasks)
	tasksRouter.GET("/:id", h.HandleGetTask)
	tasksRouter.PATCH("/:id", h.HandleSetTaskStatus)
	tasksRouter.DELETE("/:id", h.HandleDeleteTask)
}
