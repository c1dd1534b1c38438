package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/book-restful-api/docs" // swagger文档
	"github.com/xiebiao/book-restful-api/internal/infrastructure/config"
	"github.com/xiebiao/book-restful-api/internal/interface/http/handler"
	"github.com/xiebiao/book-restful-api/internal/interface/http/middleware"
	"github.com/xiebiao/book-restful-api/pkg/response"
)

// New 创建Gin引擎并注册全部路由
//
// 中间件顺序：
// TraceID → AccessLog → Recovery → CORS → Metrics → Tracing
// AccessLog在Recovery外层，panic转成的500也会被记录
func New(
	cfg *config.Config,
	log *slog.Logger,
	health *handler.HealthHandler,
	books *handler.BookHandler,
	details *handler.BookDetailHandler,
) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(
		middleware.TraceID(),
		middleware.AccessLog(log),
		middleware.Recovery(log),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(),
		middleware.Tracing(),
	)

	r.GET("/ping", health.Ping)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 访问 http://localhost:8080/swagger/index.html
	if cfg.Server.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	{
		bookGroup := api.Group("/books")
		{
			bookGroup.GET("", books.ListBooks)
			bookGroup.GET("/:id", books.GetBook)
			bookGroup.POST("", books.CreateBook)
			bookGroup.PUT("/:id", books.UpdateBook)
			bookGroup.DELETE("/:id", books.DeleteBook)
		}

		detailGroup := api.Group("/book_detail")
		{
			detailGroup.GET("", details.ListBookDetails)
			detailGroup.GET("/:id", details.GetBookDetail)
			detailGroup.POST("", details.CreateBookDetail)
			detailGroup.PUT("/:id", details.UpdateBookDetail)
			detailGroup.DELETE("/:id", details.DeleteBookDetail)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, "Resource not found.", "")
	})

	return r
}
