package book

import (
	"context"
	"log/slog"

	"github.com/xiebiao/book-restful-api/internal/application/event"
	"github.com/xiebiao/book-restful-api/internal/application/track"
	"github.com/xiebiao/book-restful-api/internal/domain/book"
	"github.com/xiebiao/book-restful-api/pkg/metrics"
)

// GetBookUseCase 按ID查询图书（读穿透缓存）
type GetBookUseCase struct {
	bookService book.Service
	cache       Cache
	log         *slog.Logger
}

// NewGetBookUseCase 创建查询用例
func NewGetBookUseCase(bookService book.Service, cache Cache, log *slog.Logger) *GetBookUseCase {
	return &GetBookUseCase{
		bookService: bookService,
		cache:       cache,
		log:         log,
	}
}

// Execute 执行查询
// 流程：
// 1. 查缓存，命中直接返回
// 2. 未命中（或缓存出错）查数据库
// 3. 回填缓存
// 缓存出错只记录日志，不影响结果
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (resp *BookResponse, err error) {
	ctx, done := track.Start(ctx, event.ResourceBook, "get")
	defer func() { done(err) }()

	cached, ok, cacheErr := uc.cache.Get(ctx, id)
	switch {
	case cacheErr != nil:
		metrics.RecordCache(event.ResourceBook, "error")
		uc.log.WarnContext(ctx, "读取图书缓存失败", "id", id, "error", cacheErr)
	case ok:
		metrics.RecordCache(event.ResourceBook, "hit")
		return toResponse(cached), nil
	default:
		metrics.RecordCache(event.ResourceBook, "miss")
	}

	b, err := uc.bookService.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, id, b); err != nil {
		uc.log.WarnContext(ctx, "写入图书缓存失败", "id", id, "error", err)
	}
	return toResponse(b), nil
}
