package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent responde 204 sem corpo.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
