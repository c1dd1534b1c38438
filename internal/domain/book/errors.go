package book

import (
	apperrors "github.com/xiebiao/book-restful-api/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "Book not found.")

	// 字段校验错误(按Validate的检查顺序排列)
	ErrTitleRequired  = apperrors.New(apperrors.ErrCodeInvalidParams, "Book title is required.")
	ErrAuthorRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "Book author is required.")
	ErrGenreRequired  = apperrors.New(apperrors.ErrCodeInvalidParams, "Book genre is required.")
	ErrInvalidPrice   = apperrors.New(apperrors.ErrCodeInvalidParams, "Book price must be a positive number.")
	ErrInvalidYear    = apperrors.New(apperrors.ErrCodeInvalidParams, "Book published year must be a valid 4-digit year.")
	ErrNonNumericYear = apperrors.New(apperrors.ErrCodeInvalidParams, "Book published year must be a numeric value.")
)

// NotFound 返回带ID详情的ErrBookNotFound
func NotFound(id uint) error {
	return ErrBookNotFound.WithDetail("The book with ID %d does not exist.", id)
}
