package book

import (
	"time"
)

// Book 图书实体
// 设计说明:
// 1. ID由数据库自增生成,创建后不可变
// 2. Price使用float64(与客户端JSON中的数值一致,如15.5)
// 3. PublishedYear保留为4位字符串(如"1965"),由Validate保证格式
type Book struct {
	ID            uint
	Title         string
	Author        string
	Genre         string
	Price         float64
	PublishedYear string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBook 创建新图书(工厂方法)
// 字段按原样保存,校验由调用方通过Validate完成
func NewBook(title, author, genre string, price float64, publishedYear string) *Book {
	return &Book{
		Title:         title,
		Author:        author,
		Genre:         genre,
		Price:         price,
		PublishedYear: publishedYear,
	}
}

// Overwrite 用incoming覆盖除ID和CreatedAt以外的全部字段(PUT语义)
func (b *Book) Overwrite(incoming *Book) {
	b.Title = incoming.Title
	b.Author = incoming.Author
	b.Genre = incoming.Genre
	b.Price = incoming.Price
	b.PublishedYear = incoming.PublishedYear
	b.UpdatedAt = time.Now()
}
