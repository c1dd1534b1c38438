// Package grpcserver gRPC健康检查服务（grpc.health.v1.Health）
//
// 数据库可用时报告SERVING，否则NOT_SERVING。
// 调试：grpcurl -plaintext localhost:9090 grpc.health.v1.Health/Check
package grpcserver

import (
	"context"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName 对外登记的服务名，空字符串代表整体状态
const ServiceName = "book_restful_api"

// Pinger 数据库连通性检查
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthServer gRPC服务器，只注册健康检查和反射
type HealthServer struct {
	server   *grpc.Server
	health   *health.Server
	db       Pinger
	log      *slog.Logger
	interval time.Duration
}

// NewHealthServer 创建健康检查服务器
// interval为数据库探测间隔
func NewHealthServer(db Pinger, log *slog.Logger, interval time.Duration) *HealthServer {
	server := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(server, hs)
	reflection.Register(server)

	s := &HealthServer{
		server:   server,
		health:   hs,
		db:       db,
		log:      log,
		interval: interval,
	}
	s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}

// Refresh 探测一次数据库并更新状态
func (s *HealthServer) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := s.db.PingContext(ctx); err != nil {
		s.log.WarnContext(ctx, "数据库健康检查失败", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.setStatus(status)
	return status
}

func (s *HealthServer) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Serve 阻塞运行，直到Stop或lis关闭
// 后台按interval刷新状态，ctx取消后停止刷新
func (s *HealthServer) Serve(ctx context.Context, lis net.Listener) error {
	s.Refresh(ctx)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Refresh(ctx)
			}
		}
	}()

	s.log.Info("gRPC健康检查服务启动", "addr", lis.Addr().String())
	return s.server.Serve(lis)
}

// Stop 标记所有服务为NOT_SERVING并等待现有调用结束
func (s *HealthServer) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}
