package book

import (
	"context"
	"log/slog"

	"github.com/xiebiao/book-restful-api/internal/application/event"
	"github.com/xiebiao/book-restful-api/internal/application/track"
	"github.com/xiebiao/book-restful-api/internal/domain/book"
)

// DeleteBookUseCase 删除图书
type DeleteBookUseCase struct {
	bookService book.Service
	cache       Cache
	events      event.Publisher
	log         *slog.Logger
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service, cache Cache, events event.Publisher, log *slog.Logger) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
		cache:       cache,
		events:      events,
		log:         log,
	}
}

// Execute 删除成功后删除缓存并发布book.deleted事件
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) (err error) {
	ctx, done := track.Start(ctx, event.ResourceBook, "delete")
	defer func() { done(err) }()

	if err := uc.bookService.DeleteBook(ctx, id); err != nil {
		return err
	}

	evict(ctx, uc.cache, uc.log, id)
	uc.events.Publish(ctx, event.New(ctx, event.ResourceBook, event.TypeDeleted, id))
	return nil
}
