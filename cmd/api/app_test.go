package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/book-restful-api/internal/infrastructure/config"
	"github.com/xiebiao/book-restful-api/internal/interface/grpcserver"
	"github.com/xiebiao/book-restful-api/pkg/logger"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

// freePort 取一个当前空闲的本地端口
func freePort(t *testing.T) int {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := lis.Addr().(*net.TCPAddr).Port
	require.NoError(t, lis.Close())
	return port
}

// occupyPort 占用一个端口直到测试结束
func occupyPort(t *testing.T) int {
	t.Helper()
	lis, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = lis.Close() })
	return lis.Addr().(*net.TCPAddr).Port
}

func newTestApp(t *testing.T, httpPort, grpcPort int, grpcEnabled bool) (*App, *bool) {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: httpPort, Mode: "test", ShutdownTimeout: time.Second},
		GRPC:   config.GRPCConfig{Enabled: grpcEnabled, Port: grpcPort},
	}
	log := logger.Discard()
	server := &http.Server{
		Addr: fmt.Sprintf(":%d", httpPort),
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	}
	health := grpcserver.NewHealthServer(okPinger{}, log, time.Hour)

	tracerClosed := false
	app := newApp(cfg, log, server, health, func(context.Context) error {
		tracerClosed = true
		return nil
	})
	return app, &tracerClosed
}

// assertPortFree 端口可以再次监听,说明没有服务残留
func assertPortFree(t *testing.T, port int) {
	t.Helper()
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	require.NoError(t, err, "端口%d仍被占用", port)
	_ = lis.Close()
}

func TestApp_Run_GRPCPortBusy(t *testing.T) {
	httpPort := freePort(t)
	app, _ := newTestApp(t, httpPort, occupyPort(t), true)

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "监听gRPC端口失败")

	// HTTP服务不应已经启动
	assertPortFree(t, httpPort)
}

func TestApp_Run_HTTPPortBusy(t *testing.T) {
	grpcPort := freePort(t)
	app, _ := newTestApp(t, occupyPort(t), grpcPort, true)

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "监听HTTP端口失败")

	// 已打开的gRPC监听被释放
	assertPortFree(t, grpcPort)
}

func TestApp_Run_GracefulShutdown(t *testing.T) {
	httpPort := freePort(t)
	app, tracerClosed := newTestApp(t, httpPort, 0, false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/", httpPort)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Run没有在ctx取消后返回")
	}
	assert.True(t, *tracerClosed)
	assertPortFree(t, httpPort)
}
