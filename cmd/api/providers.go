package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appbook "github.com/xiebiao/book-restful-api/internal/application/book"
	appbookdetail "github.com/xiebiao/book-restful-api/internal/application/bookdetail"
	"github.com/xiebiao/book-restful-api/internal/domain/book"
	"github.com/xiebiao/book-restful-api/internal/domain/bookdetail"
	"github.com/xiebiao/book-restful-api/internal/infrastructure/config"
	"github.com/xiebiao/book-restful-api/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/book-restful-api/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/book-restful-api/internal/interface/grpcserver"
	"github.com/xiebiao/book-restful-api/pkg/circuitbreaker"
	"github.com/xiebiao/book-restful-api/pkg/logger"
	"github.com/xiebiao/book-restful-api/pkg/mq"
	"github.com/xiebiao/book-restful-api/pkg/tracing"
)

// 有些依赖需要从Config中提取参数，或者在未启用时返回空实现，
// Wire无法自动推断，这里手写Provider

func provideLogger(cfg *config.Config) *slog.Logger {
	return logger.New(cfg.Log)
}

// provideDB 连接数据库，cleanup关闭连接池
func provideDB(cfg *config.Config, log *slog.Logger) (*gorm.DB, func(), error) {
	db, err := rdb.NewDB(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

func provideBookCache(cfg *config.Config, client *goredis.Client, breaker *circuitbreaker.CircuitBreaker) appbook.Cache {
	if client == nil {
		return appbook.NoopCache{}
	}
	return redis.NewRecordCache[book.Book](client, breaker, redis.BookKeyPrefix, cfg.Redis.RecordTTL)
}

func provideBookDetailCache(cfg *config.Config, client *goredis.Client, breaker *circuitbreaker.CircuitBreaker) appbookdetail.Cache {
	if client == nil {
		return appbookdetail.NoopCache{}
	}
	return redis.NewRecordCache[bookdetail.BookDetail](client, breaker, redis.BookDetailKeyPrefix, cfg.Redis.RecordTTL)
}

// provideMQPublisher mq.enabled=false时返回nil（event.NewPublisher据此使用空实现）
// 启用但连接失败时直接报错，不静默丢弃事件
func provideMQPublisher(cfg *config.Config, log *slog.Logger) (*mq.Publisher, func(), error) {
	if !cfg.MQ.Enabled {
		return nil, func() {}, nil
	}

	p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
	if err != nil {
		return nil, nil, err
	}
	log.Info("消息发布者已创建", "exchange", p.Exchange())

	return p, func() { _ = p.Close() }, nil
}

func provideTracer(cfg *config.Config) (tracing.ShutdownFunc, error) {
	return tracing.InitTracer(context.Background(), cfg.Tracing)
}

func provideHTTPServer(cfg *config.Config, engine *gin.Engine) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}

func provideHealthServer(db *sql.DB, log *slog.Logger) *grpcserver.HealthServer {
	return grpcserver.NewHealthServer(db, log, 15*time.Second)
}
