package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/book-restful-api/internal/interface/http/dto"
	"github.com/xiebiao/book-restful-api/pkg/response"
)

// Pinger 数据库连通性检查（*sql.DB实现）
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler 健康检查
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Ping 健康检查
// @Summary      健康检查
// @Tags         系统
// @Produce      json
// @Success      200 {object} response.Response{data=dto.HealthResponse}
// @Failure      503 {object} response.Response{data=dto.HealthResponse}
// @Router       /ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		response.JSON(c, http.StatusServiceUnavailable, response.StatusFail, "Service unavailable.",
			dto.HealthResponse{Message: "pong", Status: "unhealthy", Database: "down"}, err.Error())
		return
	}
	response.Success(c, "pong", dto.HealthResponse{Message: "pong", Status: "healthy", Database: "up"})
}
