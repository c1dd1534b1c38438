package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/xiebiao/book-restful-api/internal/infrastructure/config"
)

// @title           Book RESTful API
// @version         1.0
// @description     图书与图书详情的CRUD接口，所有响应使用统一Envelope
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	app, cleanup, err := InitializeApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化应用失败: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	// SIGINT/SIGTERM触发优雅关闭
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		app.log.Error("服务异常退出", "error", err)
		cleanup()
		os.Exit(1)
	}
}
