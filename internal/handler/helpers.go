package handler

import (
	"errors"
	"strconv"

	"ihost-backend/internal/service"
	"ihost-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// handleServiceError 将服务层错误映射为HTTP响应
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrConflict):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, "内部错误")
	}
}

// parseUintParam 解析路径中的数字参数
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
