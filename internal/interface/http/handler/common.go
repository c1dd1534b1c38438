package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/book-restful-api/pkg/errors"
	"github.com/xiebiao/book-restful-api/pkg/response"
)

// parseID 解析路径参数:id
// 只接受正整数，失败时写出400并返回false
func parseID(c *gin.Context, invalidMessage string) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		response.Fail(c, http.StatusBadRequest, invalidMessage, "")
		return 0, false
	}
	return uint(id), true
}

// bindJSON 解码请求体，失败时以解码错误作为详情写出400
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Fail(c, http.StatusBadRequest, apperrors.ErrBindError.Message, err.Error())
		return false
	}
	return true
}

// writeError 应用层错误 → HTTP响应
//   - 400：校验失败，message为违反的规则
//   - 404：message为notFound，error为"The ... with ID n does not exist."
//   - 500：message为failMessage，error为底层错误文本，并记录error日志
func writeError(c *gin.Context, log *slog.Logger, err error, failMessage string) {
	appErr := apperrors.GetAppError(err)

	switch status := apperrors.HTTPStatus(err); status {
	case http.StatusBadRequest, http.StatusNotFound:
		response.Fail(c, status, appErr.Message, appErr.Detail)
	default:
		log.ErrorContext(c.Request.Context(), failMessage,
			"trace_id", response.TraceID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		response.Fail(c, http.StatusInternalServerError, failMessage, internalDetail(appErr))
	}
}

// internalDetail 500响应的error字段：优先使用最底层错误的文本
func internalDetail(appErr *apperrors.AppError) string {
	if appErr.Err != nil {
		return appErr.Err.Error()
	}
	return appErr.Message
}
