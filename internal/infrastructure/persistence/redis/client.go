package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/xiebiao/book-restful-api/internal/infrastructure/config"
	"github.com/xiebiao/book-restful-api/pkg/circuitbreaker"
	"github.com/xiebiao/book-restful-api/pkg/metrics"
)

// NewClient 创建Redis客户端
// 1. redis.enabled=false时返回nil，调用方使用无缓存实现
// 2. 启动时Ping失败只记录警告，不阻止服务启动，后续请求由熔断器快速跳过
func NewClient(cfg *config.Config, log *slog.Logger) (*goredis.Client, func(), error) {
	if !cfg.Redis.Enabled {
		log.Info("Redis缓存未启用")
		return nil, func() {}, nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis连接失败，缓存将被熔断跳过", "addr", cfg.Redis.Addr(), "error", err)
	} else {
		log.Info("Redis连接成功", "addr", cfg.Redis.Addr())
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Error("关闭Redis连接失败", "error", err)
		}
	}
	return client, cleanup, nil
}

// NewCacheBreaker 缓存调用使用的熔断器
// redis.Nil（未命中）不算失败；状态变化写日志并更新circuit_breaker_state指标
func NewCacheBreaker(log *slog.Logger) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.NewCircuitBreaker("redis-cache", circuitbreaker.Config{
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     10 * time.Second,
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, goredis.Nil)
		},
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			log.Warn("熔断器状态变化", "name", name, "from", from.String(), "to", to.String())
			metrics.SetBreakerState(name, int(to))
		},
	})
}
