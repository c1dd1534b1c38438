package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xiebiao/book-restful-api/pkg/response"
	"github.com/xiebiao/book-restful-api/pkg/tracing"
)

// TraceIDHeader 响应头中的trace id
const TraceIDHeader = "X-Trace-Id"

// TraceID 为每个请求生成新的trace id
// 1. 写入gin.Context（response.TraceID读取）
// 2. 写入request Context（应用层日志、变更事件读取）
// 3. 写入响应头X-Trace-Id
// 请求头中携带的同名值会被忽略
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()

		c.Set(response.TraceIDKey, id)
		c.Request = c.Request.WithContext(tracing.ContextWithTraceID(c.Request.Context(), id))
		c.Header(TraceIDHeader, id)

		c.Next()
	}
}
