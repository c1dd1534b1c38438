package book

import (
	"github.com/xiebiao/book-restful-api/internal/domain/book"
)

// BookRequest 创建/更新请求DTO
type BookRequest struct {
	Title         string
	Author        string
	Genre         string
	Price         float64
	PublishedYear string
}

func (r BookRequest) toEntity() *book.Book {
	return book.NewBook(r.Title, r.Author, r.Genre, r.Price, r.PublishedYear)
}

// BookResponse 图书响应DTO
type BookResponse struct {
	ID            uint    `json:"id" example:"1"`
	Title         string  `json:"title" example:"Dune"`
	Author        string  `json:"author" example:"Frank Herbert"`
	Genre         string  `json:"genre" example:"Science Fiction"`
	Price         float64 `json:"price" example:"9.99"`
	PublishedYear string  `json:"published_year" example:"1965"`
}

func toResponse(b *book.Book) *BookResponse {
	return &BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Genre:         b.Genre,
		Price:         b.Price,
		PublishedYear: b.PublishedYear,
	}
}
