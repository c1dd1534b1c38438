package bookdetail

import (
	apperrors "github.com/xiebiao/book-restful-api/pkg/errors"
)

var (
	ErrBookDetailNotFound = apperrors.New(apperrors.ErrCodeBookDetailNotFound, "Book detail not found.")

	ErrTitleRequired       = apperrors.New(apperrors.ErrCodeInvalidParams, "Book detail title is required.")
	ErrAuthorRequired      = apperrors.New(apperrors.ErrCodeInvalidParams, "Book detail author is required.")
	ErrInvalidYear         = apperrors.New(apperrors.ErrCodeInvalidParams, "Book detail published year must be a valid 4-digit year.")
	ErrNonNumericYear      = apperrors.New(apperrors.ErrCodeInvalidParams, "Book detail published year must be a numeric value.")
	ErrDescriptionRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "Book detail description is required.")
	ErrDescriptionTooLong  = apperrors.New(apperrors.ErrCodeInvalidParams, "Book detail description must not exceed 1000 characters.")
)

// NotFound 返回带ID详情的ErrBookDetailNotFound
func NotFound(id uint) error {
	return ErrBookDetailNotFound.WithDetail("The book detail with ID %d does not exist.", id)
}
