package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/xiebiao/book-restful-api/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/book-restful-api/pkg/errors"
)

// 缓存Key前缀，完整Key为{prefix}:{id}
const (
	BookKeyPrefix       = "book"
	BookDetailKeyPrefix = "book_detail"
)

// RecordCache 单条记录的读缓存（JSON序列化）
// 所有Redis调用都经过熔断器，熔断期间直接返回ErrOpenState
type RecordCache[T any] struct {
	client  goredis.UniversalClient
	breaker *circuitbreaker.CircuitBreaker
	prefix  string
	ttl     time.Duration
}

// NewRecordCache 创建记录缓存
func NewRecordCache[T any](client goredis.UniversalClient, breaker *circuitbreaker.CircuitBreaker, prefix string, ttl time.Duration) *RecordCache[T] {
	return &RecordCache[T]{
		client:  client,
		breaker: breaker,
		prefix:  prefix,
		ttl:     ttl,
	}
}

// Key 记录的缓存Key
func (c *RecordCache[T]) Key(id uint) string {
	return fmt.Sprintf("%s:%d", c.prefix, id)
}

// Get 读取缓存
// 未命中返回(nil, false, nil)
func (c *RecordCache[T]) Get(ctx context.Context, id uint) (*T, bool, error) {
	var data []byte
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		data, err = c.client.Get(ctx, c.Key(id)).Bytes()
		return err
	})
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, cacheError(err, "读取缓存失败")
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, false, cacheError(err, "缓存数据解析失败")
	}
	return &v, true, nil
}

// Set 写入缓存（带TTL）
func (c *RecordCache[T]) Set(ctx context.Context, id uint, v *T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return cacheError(err, "缓存数据序列化失败")
	}

	err = c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.client.Set(ctx, c.Key(id), data, c.ttl).Err()
	})
	if err != nil {
		return cacheError(err, "写入缓存失败")
	}
	return nil
}

// Delete 删除缓存，Key不存在不算错误
func (c *RecordCache[T]) Delete(ctx context.Context, id uint) error {
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.client.Del(ctx, c.Key(id)).Err()
	})
	if err != nil {
		return cacheError(err, "删除缓存失败")
	}
	return nil
}

func cacheError(err error, message string) error {
	return &apperrors.AppError{
		Code:    apperrors.ErrCodeRedisError,
		Message: message,
		Err:     err,
	}
}
