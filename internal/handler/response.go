package handler

import (
	"errors"
	"net/http"

	"github.com/andrew21-mch/crowdfunding-api/internal/logic"
	"github.com/gin-gonic/gin"
)

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Message: message,
		Data:    data,
		Code:    statusCode,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Message: message,
		Data:    nil,
		Code:    statusCode,
	})
}

// HandleError 业务错误统一转响应
func HandleError(c *gin.Context, err error) {
	switch {
	case logic.IsValidation(err):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	case logic.IsNotFound(err):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, logic.ErrInvalidCredentials):
		ErrorResponse(c, http.StatusUnauthorized, err.Error())
	default:
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}
