package book

import (
	"strings"
	"unicode/utf8"
)

const yearLength = 4

// Validate 按固定顺序校验图书字段,返回第一个不满足的规则
// 顺序:title → author → genre → price → published_year
// 年份长度按字符计,"196é"报告非数字而不是长度错误
func Validate(b *Book) error {
	switch {
	case isBlank(b.Title):
		return ErrTitleRequired
	case isBlank(b.Author):
		return ErrAuthorRequired
	case isBlank(b.Genre):
		return ErrGenreRequired
	case b.Price <= 0:
		return ErrInvalidPrice
	case utf8.RuneCountInString(b.PublishedYear) != yearLength:
		return ErrInvalidYear
	case !isDigits(b.PublishedYear):
		return ErrNonNumericYear
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
