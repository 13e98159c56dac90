package controller

import (
	"net/http"

	"census-api/logger"
	"census-api/web/entity"

	"github.com/gin-gonic/gin"
)

// jsonError sends the uniform error payload with the given status code.
func jsonError(c *gin.Context, statusCode int, category string, message string) {
	c.JSON(statusCode, entity.ErrorResponse{
		Error:   category,
		Message: message,
	})
}

func badRequest(c *gin.Context, message string) {
	jsonError(c, http.StatusBadRequest, entity.ErrorBadRequest, message)
}

func notFound(c *gin.Context, message string) {
	jsonError(c, http.StatusNotFound, entity.ErrorNotFound, message)
}

func conflict(c *gin.Context, message string) {
	jsonError(c, http.StatusConflict, entity.ErrorConflict, message)
}

// serverError logs the underlying cause and sends a generic message; raw
// errors never reach the client.
func serverError(c *gin.Context, message string, err error) {
	logger.Errorf("%s: %v (request %s)", message, err, c.GetString("request_id"))
	jsonError(c, http.StatusInternalServerError, entity.ErrorServer, message)
}
