//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"database/sql"

	"github.com/google/wire"

	appbook "github.com/xiebiao/book-restful-api/internal/application/book"
	appbookdetail "github.com/xiebiao/book-restful-api/internal/application/bookdetail"
	"github.com/xiebiao/book-restful-api/internal/application/event"
	"github.com/xiebiao/book-restful-api/internal/domain/book"
	"github.com/xiebiao/book-restful-api/internal/domain/bookdetail"
	"github.com/xiebiao/book-restful-api/internal/infrastructure/config"
	"github.com/xiebiao/book-restful-api/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/book-restful-api/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/book-restful-api/internal/interface/http/handler"
	"github.com/xiebiao/book-restful-api/internal/interface/http/router"
)

// infrastructureSet 基础设施：日志、数据库、Redis、消息队列、Tracer
var infrastructureSet = wire.NewSet(
	provideLogger,
	provideDB,
	rdb.SQLDB,
	redis.NewClient,
	redis.NewCacheBreaker,
	provideMQPublisher,
	provideTracer,
)

// repositorySet 仓储与事务
var repositorySet = wire.NewSet(
	rdb.NewBookRepository,
	rdb.NewBookDetailRepository,
	rdb.NewTxManager,
	wire.Bind(new(book.Transactor), new(*rdb.TxManager)),
	wire.Bind(new(bookdetail.Transactor), new(*rdb.TxManager)),
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	book.NewService,
	bookdetail.NewService,
)

// applicationSet 用例、读缓存、变更事件
var applicationSet = wire.NewSet(
	provideBookCache,
	provideBookDetailCache,
	event.NewPublisher,

	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,

	appbookdetail.NewListBookDetailsUseCase,
	appbookdetail.NewGetBookDetailUseCase,
	appbookdetail.NewCreateBookDetailUseCase,
	appbookdetail.NewUpdateBookDetailUseCase,
	appbookdetail.NewDeleteBookDetailUseCase,
)

// interfaceSet HTTP与gRPC接口
var interfaceSet = wire.NewSet(
	wire.Bind(new(handler.Pinger), new(*sql.DB)),
	handler.NewHealthHandler,
	handler.NewBookHandler,
	handler.NewBookDetailHandler,
	router.New,
	provideHTTPServer,
	provideHealthServer,
)

// InitializeApp 组装整个应用
// cleanup按创建的逆序关闭消息队列、Redis、数据库连接
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		interfaceSet,
		newApp,
	)
	return nil, nil, nil
}
