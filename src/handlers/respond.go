package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/vehicle-registry/src/models"
	"github.com/rs/zerolog"
)

// errInvalidBody is returned for bodies that are not valid JSON for the endpoint
const errInvalidBody = "invalid request body"

// parseID reads the :id path parameter.
// It writes a 400 response and returns false when the value is not a positive integer.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// respondValidation writes the 400 validation payload
func respondValidation(c *gin.Context, v models.ValidationErrors) {
	c.JSON(http.StatusBadRequest, v)
}

// respondNotFound writes an empty 404
func respondNotFound(c *gin.Context) {
	c.AbortWithStatus(http.StatusNotFound)
}

// respondInternalError logs err with the request logger and writes a generic 500
func respondInternalError(c *gin.Context, err error, message string) {
	logger := zerolog.Ctx(c.Request.Context())
	logger.Error().Err(err).Msg(message)
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
