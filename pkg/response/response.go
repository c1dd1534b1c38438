package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"

	// TraceIDKey gin.Context中保存trace id的键（由middleware.TraceID写入）
	TraceIDKey = "trace_id"
)

// Response 统一响应结构（Envelope）
// 设计说明：
// 1. TraceID只用于客户端关联日志，不持久化、不校验
// 2. Status为success/fail，HTTP状态码另行设置
// 3. Data在失败时为null；Error仅在有错误详情时出现
type Response struct {
	TraceID      string      `json:"traceId" example:"3f1c9b9e-8a57-4d0e-9d1c-1c6e2f7d2b4a"`
	Status       string      `json:"status" example:"success"`
	Message      string      `json:"message" example:"Book retrieved successfully."`
	Data         interface{} `json:"data"`
	Error        string      `json:"error,omitempty"`
	ResponseDate time.Time   `json:"responseDate"`
}

// TraceID 读取当前请求的trace id
func TraceID(c *gin.Context) string {
	return c.GetString(TraceIDKey)
}

// Success 200成功响应
func Success(c *gin.Context, message string, data interface{}) {
	JSON(c, http.StatusOK, StatusSuccess, message, data, "")
}

// Created 201创建成功响应
func Created(c *gin.Context, message string, data interface{}) {
	JSON(c, http.StatusCreated, StatusSuccess, message, data, "")
}

// Fail 失败响应，detail为空时不输出error字段
func Fail(c *gin.Context, statusCode int, message, detail string) {
	JSON(c, statusCode, StatusFail, message, nil, detail)
}

// JSON 写出完整的Envelope
func JSON(c *gin.Context, statusCode int, status, message string, data interface{}, detail string) {
	c.JSON(statusCode, Response{
		TraceID:      TraceID(c),
		Status:       status,
		Message:      message,
		Data:         data,
		Error:        detail,
		ResponseDate: time.Now(),
	})
}
