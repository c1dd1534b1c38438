package book

import (
	"context"
	"log/slog"

	"github.com/xiebiao/book-restful-api/internal/application/event"
	"github.com/xiebiao/book-restful-api/internal/application/track"
	"github.com/xiebiao/book-restful-api/internal/domain/book"
)

// UpdateBookUseCase 覆盖更新图书
type UpdateBookUseCase struct {
	bookService book.Service
	cache       Cache
	events      event.Publisher
	log         *slog.Logger
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service, cache Cache, events event.Publisher, log *slog.Logger) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
		cache:       cache,
		events:      events,
		log:         log,
	}
}

// Execute 更新成功后删除缓存并发布book.updated事件
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, req BookRequest) (resp *BookResponse, err error) {
	ctx, done := track.Start(ctx, event.ResourceBook, "update")
	defer func() { done(err) }()

	b, err := uc.bookService.UpdateBook(ctx, id, req.toEntity())
	if err != nil {
		return nil, err
	}

	evict(ctx, uc.cache, uc.log, id)
	uc.events.Publish(ctx, event.New(ctx, event.ResourceBook, event.TypeUpdated, id))
	return toResponse(b), nil
}
