package bookdetail

import (
	"context"
	"log/slog"

	"github.com/xiebiao/book-restful-api/internal/domain/bookdetail"
)

// BookDetailRequest 创建/更新请求DTO
type BookDetailRequest struct {
	Title         string
	Author        string
	Genre         string
	PublishedYear string
	Description   string
}

func (r BookDetailRequest) toEntity() *bookdetail.BookDetail {
	return bookdetail.NewBookDetail(r.Title, r.Author, r.Genre, r.PublishedYear, r.Description)
}

// BookDetailResponse 图书详情响应DTO
type BookDetailResponse struct {
	ID            uint   `json:"id" example:"1"`
	Title         string `json:"title" example:"Dune"`
	Author        string `json:"author" example:"Frank Herbert"`
	Genre         string `json:"genre" example:"Science Fiction"`
	PublishedYear string `json:"published_year" example:"1965"`
	Description   string `json:"description" example:"A desert planet, a noble family and a precious spice."`
}

func toResponse(d *bookdetail.BookDetail) *BookDetailResponse {
	return &BookDetailResponse{
		ID:            d.ID,
		Title:         d.Title,
		Author:        d.Author,
		Genre:         d.Genre,
		PublishedYear: d.PublishedYear,
		Description:   d.Description,
	}
}

// Cache 单条图书详情读缓存
type Cache interface {
	Get(ctx context.Context, id uint) (*bookdetail.BookDetail, bool, error)
	Set(ctx context.Context, id uint, d *bookdetail.BookDetail) error
	Delete(ctx context.Context, id uint) error
}

// NoopCache 未启用Redis时使用
type NoopCache struct{}

func (NoopCache) Get(context.Context, uint) (*bookdetail.BookDetail, bool, error) {
	return nil, false, nil
}
func (NoopCache) Set(context.Context, uint, *bookdetail.BookDetail) error { return nil }
func (NoopCache) Delete(context.Context, uint) error                      { return nil }

func evict(ctx context.Context, cache Cache, log *slog.Logger, id uint) {
	if err := cache.Delete(ctx, id); err != nil {
		log.WarnContext(ctx, "删除图书详情缓存失败", "id", id, "error", err)
	}
}
