// Package metrics 基于Prometheus的指标收集
//
// 指标一览:
//   - http_requests_total{method,path,status}            HTTP请求总数
//   - http_request_duration_seconds{method,path}         HTTP请求耗时
//   - http_requests_in_progress                          正在处理的请求数
//   - record_operations_total{resource,operation,result} 记录CRUD操作次数
//   - record_cache_requests_total{resource,result}       读缓存命中情况(hit/miss/error)
//   - circuit_breaker_state{name}                        熔断器状态(0=CLOSED,1=OPEN,2=HALF_OPEN)
//   - record_events_published_total{routing_key,result}  变更事件发布次数
//
// path标签使用gin的路由模板(如/api/books/:id)。
//
// 使用示例:
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	initOnce sync.Once

	// HTTPRequestsTotal HTTP请求总数（Counter）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// RecordOperationsTotal 记录操作总数
	// 标签：resource（book/book_detail）、operation（list/get/create/update/delete）、
	// result（success/invalid/not_found/error）
	RecordOperationsTotal *prometheus.CounterVec

	// RecordCacheRequests 读缓存请求数
	RecordCacheRequests *prometheus.CounterVec

	// CircuitBreakerState 熔断器状态（Gauge）
	CircuitBreakerState *prometheus.GaugeVec

	// EventsPublishedTotal 变更事件发布总数
	EventsPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 可重复调用,只有第一次生效(promauto重复注册会panic)
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		RecordOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "record_operations_total",
				Help: "记录CRUD操作总数",
			},
			[]string{"resource", "operation", "result"},
		)

		RecordCacheRequests = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "record_cache_requests_total",
				Help: "记录读缓存请求数",
			},
			[]string{"resource", "result"},
		)

		CircuitBreakerState = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
			},
			[]string{"name"},
		)

		EventsPublishedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "record_events_published_total",
				Help: "记录变更事件发布总数",
			},
			[]string{"routing_key", "result"},
		)
	})
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// SetGaugeVec 设置GaugeVec值（带标签）
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	gauge.With(labels).Set(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}

// RecordOperation 记录一次CRUD操作
func RecordOperation(resource, operation, result string) {
	InitMetrics()
	RecordOperationsTotal.WithLabelValues(resource, operation, result).Inc()
}

// RecordCache 记录一次读缓存结果
func RecordCache(resource, result string) {
	InitMetrics()
	RecordCacheRequests.WithLabelValues(resource, result).Inc()
}

// RecordEvent 记录一次事件发布结果
func RecordEvent(routingKey string, err error) {
	InitMetrics()
	result := "success"
	if err != nil {
		result = "failure"
	}
	EventsPublishedTotal.WithLabelValues(routingKey, result).Inc()
}

// SetBreakerState 更新熔断器状态
func SetBreakerState(name string, state int) {
	InitMetrics()
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
