package bookdetail

import (
	"time"
)

// MaxDescriptionLength 描述的最大字符数(按rune计)
const MaxDescriptionLength = 1000

// BookDetail 图书详情实体
// 与Book是相互独立的表,字段有重叠但不完全相同:
// 没有价格,多了描述,类型(genre)可选
type BookDetail struct {
	ID            uint
	Title         string
	Author        string
	Genre         string
	PublishedYear string
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBookDetail 创建图书详情(工厂方法),字段按原样保存
func NewBookDetail(title, author, genre, publishedYear, description string) *BookDetail {
	return &BookDetail{
		Title:         title,
		Author:        author,
		Genre:         genre,
		PublishedYear: publishedYear,
		Description:   description,
	}
}

// Overwrite 覆盖除ID和CreatedAt以外的全部字段
func (d *BookDetail) Overwrite(incoming *BookDetail) {
	d.Title = incoming.Title
	d.Author = incoming.Author
	d.Genre = incoming.Genre
	d.PublishedYear = incoming.PublishedYear
	d.Description = incoming.Description
	d.UpdatedAt = time.Now()
}
