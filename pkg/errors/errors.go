package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于区分错误类别，HTTPStatus据此映射HTTP状态码
// 2. Message是返回给客户端的提示信息
// 3. Detail是可选的错误详情（如"The book with ID 5 does not exist."）
// 4. Err是底层错误，500响应时作为详情返回
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码比较，使预定义错误在WithDetail之后仍可被errors.Is识别
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// WithDetail 返回附带详情的副本（预定义错误是共享变量，不能原地修改）
func (e *AppError) WithDetail(format string, args ...interface{}) *AppError {
	cp := *e
	cp.Detail = fmt.Sprintf(format, args...)
	return &cp
}

// Wrap 包装系统错误（如数据库错误、网络错误）
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、资源不存在）
// - 5xxxx: 服务端错误（数据库异常、外部服务调用失败）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误
	ErrCodeMQError       = 50003 // 消息队列错误

	// 资源错误（40400-40499）
	ErrCodeNotFound           = 40400 // 资源不存在(通用)
	ErrCodeBookNotFound       = 40402 // 图书不存在
	ErrCodeBookDetailNotFound = 40405 // 图书详情不存在

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 参数错误(字段校验失败)
	ErrCodeBindError     = 40901 // 参数绑定失败(JSON格式、路径参数)
)

var (
	ErrInternal      = New(ErrCodeInternal, "Internal server error.")
	ErrDatabaseError = New(ErrCodeDatabaseError, "Database error.")
	ErrRedisError    = New(ErrCodeRedisError, "Cache error.")

	ErrNotFound = New(ErrCodeNotFound, "Resource not found.")

	ErrInvalidParams = New(ErrCodeInvalidParams, "Invalid parameters.")
	ErrBindError     = New(ErrCodeBindError, "Invalid request body.")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "Internal server error.")
}

// IsNotFound 判断是否为资源不存在类错误
func IsNotFound(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code >= 40400 && appErr.Code < 40500
}

// HTTPStatus 错误码 → HTTP状态码
//   - 409xx 参数类错误 → 400
//   - 404xx 资源不存在 → 404
//   - 其余（含非AppError） → 500
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch {
	case appErr.Code >= 40900 && appErr.Code < 41000:
		return http.StatusBadRequest
	case appErr.Code >= 40400 && appErr.Code < 40500:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
