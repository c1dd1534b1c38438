package dto

import (
	appbookdetail "github.com/xiebiao/book-restful-api/internal/application/bookdetail"
)

// BookDetailRequest HTTP创建/更新图书详情请求
type BookDetailRequest struct {
	Title         string `json:"title" example:"Dune"`
	Author        string `json:"author" example:"Frank Herbert"`
	Genre         string `json:"genre" example:"Science Fiction"`
	PublishedYear string `json:"published_year" example:"1965"`
	Description   string `json:"description" example:"A desert planet, a noble family and a precious spice."`
}

func (r BookDetailRequest) ToApp() appbookdetail.BookDetailRequest {
	return appbookdetail.BookDetailRequest{
		Title:         r.Title,
		Author:        r.Author,
		Genre:         r.Genre,
		PublishedYear: r.PublishedYear,
		Description:   r.Description,
	}
}

// DeleteBookDetailResponse 删除图书详情响应数据
type DeleteBookDetailResponse struct {
	BookDetailID uint `json:"bookDetailId" example:"1"`
}
