package dto

import (
	appbook "github.com/xiebiao/book-restful-api/internal/application/book"
)

// BookRequest HTTP创建/更新图书请求
// 不使用binding tag：字段校验由领域层按固定顺序完成，
// 这里只负责JSON解码（类型不匹配时返回"Invalid request body."）
type BookRequest struct {
	Title         string  `json:"title" example:"Dune"`
	Author        string  `json:"author" example:"Frank Herbert"`
	Genre         string  `json:"genre" example:"Science Fiction"`
	Price         float64 `json:"price" example:"9.99"`
	PublishedYear string  `json:"published_year" example:"1965"`
}

// ToApp 转换为应用层请求
func (r BookRequest) ToApp() appbook.BookRequest {
	return appbook.BookRequest{
		Title:         r.Title,
		Author:        r.Author,
		Genre:         r.Genre,
		Price:         r.Price,
		PublishedYear: r.PublishedYear,
	}
}

// DeleteBookResponse 删除图书响应数据
type DeleteBookResponse struct {
	BookID uint `json:"bookId" example:"1"`
}
