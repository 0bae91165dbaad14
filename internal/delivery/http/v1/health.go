package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handlerImpl) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, "Success")
}
