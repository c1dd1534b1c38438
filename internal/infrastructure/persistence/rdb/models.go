package rdb

import (
	"time"
)

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/book/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
// 4. 删除为物理删除(没有DeletedAt)
// 5. 文本字段没有长度上限,使用text;只有published_year固定4个字符
type BookModel struct {
	ID            uint      `gorm:"primaryKey"`
	Title         string    `gorm:"type:text;not null;comment:书名"`
	Author        string    `gorm:"type:text;not null;comment:作者"`
	Genre         string    `gorm:"type:text;not null;comment:类型"`
	Price         float64   `gorm:"not null;comment:价格"`
	PublishedYear string    `gorm:"column:published_year;size:4;not null;comment:出版年份"`
	CreatedAt     time.Time `gorm:"comment:创建时间"`
	UpdatedAt     time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// BookDetailModel GORM图书详情模型
type BookDetailModel struct {
	ID            uint      `gorm:"primaryKey"`
	Title         string    `gorm:"type:text;not null;comment:书名"`
	Author        string    `gorm:"type:text;not null;comment:作者"`
	Genre         string    `gorm:"type:text;comment:类型(可选)"`
	PublishedYear string    `gorm:"column:published_year;size:4;comment:出版年份"`
	Description   string    `gorm:"type:text;comment:描述(不超过1000字符)"`
	CreatedAt     time.Time `gorm:"comment:创建时间"`
	UpdatedAt     time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookDetailModel) TableName() string {
	return "book_details"
}
