package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/book-restful-api/internal/domain/book"
	"github.com/xiebiao/book-restful-api/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/book-restful-api/pkg/errors"
	"github.com/xiebiao/book-restful-api/pkg/logger"
)

func newTestCache(t *testing.T) (*RecordCache[book.Book], *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{
		Addr:       mr.Addr(),
		MaxRetries: -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewRecordCache[book.Book](client, NewCacheBreaker(logger.Discard()), BookKeyPrefix, 5*time.Minute)
	return cache, mr
}

func TestRecordCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t)

	got, ok, err := cache.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRecordCache_SetAndGet(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	b := &book.Book{ID: 7, Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", Price: 9.99, PublishedYear: "1965"}
	require.NoError(t, cache.Set(ctx, 7, b))

	assert.True(t, mr.Exists("book:7"))
	assert.Equal(t, 5*time.Minute, mr.TTL("book:7"))

	got, ok, err := cache.Get(ctx, 7)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, b.Title, got.Title)
	assert.Equal(t, b.Price, got.Price)
	assert.Equal(t, b.PublishedYear, got.PublishedYear)
}

func TestRecordCache_Delete(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 3, &book.Book{ID: 3, Title: "Emma"}))
	require.NoError(t, cache.Delete(ctx, 3))
	assert.False(t, mr.Exists("book:3"))

	// 不存在的Key
	assert.NoError(t, cache.Delete(ctx, 404))
}

func TestRecordCache_CorruptValue(t *testing.T) {
	cache, mr := newTestCache(t)
	require.NoError(t, mr.Set("book:9", "not-json"))

	_, ok, err := cache.Get(context.Background(), 9)
	assert.False(t, ok)
	assert.ErrorIs(t, err, &apperrors.AppError{Code: apperrors.ErrCodeRedisError, Message: "缓存数据解析失败"})
}

// TestRecordCache_BreakerOpens Redis不可用时连续失败后熔断
func TestRecordCache_BreakerOpens(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	mr.Close()

	for i := 0; i < 5; i++ {
		_, _, err := cache.Get(ctx, 1)
		require.Error(t, err)
		assert.NotErrorIs(t, err, circuitbreaker.ErrOpenState)
	}

	_, _, err := cache.Get(ctx, 1)
	assert.ErrorIs(t, err, circuitbreaker.ErrOpenState)
	assert.Equal(t, circuitbreaker.StateOpen, cache.breaker.State())
}

func TestRecordCache_Key(t *testing.T) {
	cache := NewRecordCache[book.Book](nil, nil, BookDetailKeyPrefix, time.Minute)
	assert.Equal(t, "book_detail:12", cache.Key(12))
}
