package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"easyshop/internal/domain"
	"github.com/gin-gonic/gin"
)

type errorBody struct {
	Error string `json:"error"`
}

// writeError maps domain errors onto status codes. Storage failures never
// leak driver details to the client.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, msg = http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrUnknownUser):
		status, msg = http.StatusUnauthorized, "unknown user"
	case errors.Is(err, domain.ErrInvalidInput):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrAlreadyExists):
		status, msg = http.StatusConflict, "already exists"
	default:
		_ = c.Error(err)
	}
	c.JSON(status, errorBody{Error: msg})
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, errorBody{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return false
	}
	return true
}
