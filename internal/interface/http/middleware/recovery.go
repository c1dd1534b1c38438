package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/book-restful-api/pkg/response"
)

// Recovery 捕获panic，按统一Envelope返回500
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.ErrorContext(c.Request.Context(), "panic recovered",
			"trace_id", response.TraceID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		response.Fail(c, http.StatusInternalServerError, "Internal server error.", fmt.Sprint(recovered))
		c.Abort()
	})
}
