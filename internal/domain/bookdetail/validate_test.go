package bookdetail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDetail() *BookDetail {
	return NewBookDetail("Dune", "Herbert", "Sci-Fi", "1965", "Desert planet epic.")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *BookDetail)
		want   error
	}{
		{"合法详情", func(d *BookDetail) {}, nil},
		{"类型可选", func(d *BookDetail) { d.Genre = "" }, nil},
		{"缺少书名", func(d *BookDetail) { d.Title = "" }, ErrTitleRequired},
		{"缺少作者", func(d *BookDetail) { d.Author = " " }, ErrAuthorRequired},
		{"年份长度错误", func(d *BookDetail) { d.PublishedYear = "65" }, ErrInvalidYear},
		{"年份非数字", func(d *BookDetail) { d.PublishedYear = "19a5" }, ErrNonNumericYear},
		{"年份含非ASCII字符", func(d *BookDetail) { d.PublishedYear = "196é" }, ErrNonNumericYear},
		{"年份带首尾空白", func(d *BookDetail) { d.PublishedYear = " 1965 " }, ErrInvalidYear},
		{"缺少描述", func(d *BookDetail) { d.Description = "" }, ErrDescriptionRequired},
		{"描述恰好1000字", func(d *BookDetail) { d.Description = strings.Repeat("书", 1000) }, nil},
		{"描述超长", func(d *BookDetail) { d.Description = strings.Repeat("a", 1001) }, ErrDescriptionTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetail()
			tt.mutate(d)

			err := Validate(d)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, err)
		})
	}
}

func TestValidate_Order(t *testing.T) {
	d := validDetail()
	d.Title = ""
	d.Author = ""
	d.Description = ""
	assert.Equal(t, ErrTitleRequired, Validate(d))

	d = validDetail()
	d.PublishedYear = "abc"
	d.Description = ""
	assert.Equal(t, ErrInvalidYear, Validate(d))
}
