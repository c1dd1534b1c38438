package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/xiebiao/book-restful-api/internal/infrastructure/config"
	"github.com/xiebiao/book-restful-api/internal/interface/grpcserver"
	"github.com/xiebiao/book-restful-api/pkg/tracing"
)

// App 进程内所有长期运行的组件
type App struct {
	cfg            *config.Config
	log            *slog.Logger
	server         *http.Server
	health         *grpcserver.HealthServer
	shutdownTracer tracing.ShutdownFunc
}

func newApp(
	cfg *config.Config,
	log *slog.Logger,
	server *http.Server,
	health *grpcserver.HealthServer,
	shutdownTracer tracing.ShutdownFunc,
) *App {
	return &App{
		cfg:            cfg,
		log:            log,
		server:         server,
		health:         health,
		shutdownTracer: shutdownTracer,
	}
}

// Run 启动HTTP（及可选的gRPC健康检查）服务，ctx取消后优雅关闭
// 端口全部监听成功后才开始对外服务，任一端口失败时已打开的监听会被关闭
func (a *App) Run(ctx context.Context) error {
	var grpcLis net.Listener
	if a.cfg.GRPC.Enabled {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", a.cfg.GRPC.Port))
		if err != nil {
			return fmt.Errorf("监听gRPC端口失败: %w", err)
		}
		grpcLis = lis
	}

	httpLis, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		if grpcLis != nil {
			_ = grpcLis.Close()
		}
		return fmt.Errorf("监听HTTP端口失败: %w", err)
	}

	errCh := make(chan error, 2)

	go func() {
		a.log.Info("HTTP服务启动",
			"addr", httpLis.Addr().String(),
			"mode", a.cfg.Server.Mode,
			"database", a.cfg.Database.Driver,
			"redis", a.cfg.Redis.Enabled,
			"mq", a.cfg.MQ.Enabled,
			"tracing", a.cfg.Tracing.Enabled,
		)
		if err := a.server.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP服务启动失败: %w", err)
		}
	}()

	if grpcLis != nil {
		go func() {
			if err := a.health.Serve(ctx, grpcLis); err != nil {
				errCh <- fmt.Errorf("gRPC服务启动失败: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		a.log.Info("收到关闭信号，开始优雅关闭")
	case runErr = <-errCh:
	}

	return errors.Join(runErr, a.shutdown())
}

// shutdown 依次关闭HTTP、gRPC、Tracer
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("关闭HTTP服务失败: %w", err))
	}
	if a.cfg.GRPC.Enabled {
		a.health.Stop()
	}
	if err := a.shutdownTracer(ctx); err != nil {
		errs = append(errs, fmt.Errorf("关闭Tracer失败: %w", err))
	}

	a.log.Info("服务已关闭")
	return errors.Join(errs...)
}
