package bookdetail

import (
	"strings"
	"unicode/utf8"
)

// Validate 按固定顺序校验图书详情字段,返回第一个不满足的规则
// 顺序:title → author → published_year → description
// genre为可选字段,不参与校验
func Validate(d *BookDetail) error {
	switch {
	case strings.TrimSpace(d.Title) == "":
		return ErrTitleRequired
	case strings.TrimSpace(d.Author) == "":
		return ErrAuthorRequired
	case utf8.RuneCountInString(d.PublishedYear) != 4:
		return ErrInvalidYear
	case strings.Trim(d.PublishedYear, "0123456789") != "":
		return ErrNonNumericYear
	case strings.TrimSpace(d.Description) == "":
		return ErrDescriptionRequired
	case utf8.RuneCountInString(d.Description) > MaxDescriptionLength:
		return ErrDescriptionTooLong
	}
	return nil
}
