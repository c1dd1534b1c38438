package book

import (
	"context"
	"log/slog"

	"github.com/xiebiao/book-restful-api/internal/domain/book"
)

// Cache 单条图书读缓存
// 由infrastructure/persistence/redis.RecordCache实现
type Cache interface {
	Get(ctx context.Context, id uint) (*book.Book, bool, error)
	Set(ctx context.Context, id uint, b *book.Book) error
	Delete(ctx context.Context, id uint) error
}

// NoopCache 未启用Redis时使用，永远未命中
type NoopCache struct{}

func (NoopCache) Get(context.Context, uint) (*book.Book, bool, error) { return nil, false, nil }
func (NoopCache) Set(context.Context, uint, *book.Book) error         { return nil }
func (NoopCache) Delete(context.Context, uint) error                  { return nil }

// evict 删除缓存，失败只记录日志
func evict(ctx context.Context, cache Cache, log *slog.Logger, id uint) {
	if err := cache.Delete(ctx, id); err != nil {
		log.WarnContext(ctx, "删除图书缓存失败", "id", id, "error", err)
	}
}
