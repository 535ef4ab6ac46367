package util

import (
	"net/http"

	"skillpath_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the uniform JSON envelope for every endpoint.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Forbidden")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Resource not found")
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}

// HandleError maps a service error onto the HTTP envelope. Unexpected
// errors are logged and hidden behind a generic 500; classified errors
// surface their message with the matching status code.
func HandleError(c *gin.Context, err error) {
	switch Classify(err) {
	case ErrInvalidInput:
		BadRequest(c, err.Error())
	case ErrNotFound:
		Error(c, http.StatusNotFound, err.Error())
	case ErrNotOwner:
		Error(c, http.StatusForbidden, err.Error())
	case ErrConflict:
		Error(c, http.StatusConflict, err.Error())
	case ErrUnauthorized:
		Unauthorized(c)
	case ErrUpstream:
		logger.Log.Error("Upstream service error", zap.Error(err))
		Error(c, http.StatusInternalServerError, "upstream service error")
	default:
		LogInternalError(c, err)
	}
}
