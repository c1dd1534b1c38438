// Package circuitbreaker 熔断器
//
// 保护可降级的外部依赖(目前只有Redis读缓存)。连续失败达到阈值后熔断,
// 熔断期间调用立即返回ErrOpenState,调用方据此跳过缓存直接查库。
//
// 状态转换:closed → open → half-open → closed(探测成功) / open(探测失败)
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State 熔断器状态,数值同时作为circuit_breaker_state指标的取值
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

var stateNames = [...]string{"closed", "open", "half-open"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// ErrOpenState 熔断中,调用未执行
var ErrOpenState = errors.New("circuit breaker is open")

// Config 熔断器配置,零值字段使用默认值
type Config struct {
	MaxRequests   uint32        // half-open状态允许的探测请求数,默认1
	Interval      time.Duration // closed状态计数窗口,0表示不重置
	Timeout       time.Duration // open状态持续时间
	FailThreshold uint32        // 连续失败多少次熔断,默认5

	// IsSuccessful 判断调用结果是否算成功,默认err == nil
	IsSuccessful func(err error) bool

	OnStateChange func(name string, from, to State)
}

// Counts 当前窗口内的计数
type Counts struct {
	Requests            uint32
	Failures            uint32
	ConsecutiveFailures uint32
}

type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeFailure
	// 请求方取消或超时,与下游是否健康无关
	outcomeAbandoned
)

// CircuitBreaker 熔断器,并发安全
type CircuitBreaker struct {
	name string
	cfg  Config
	now  func() time.Time

	mu         sync.Mutex
	state      State
	generation uint64
	counts     Counts
	expiry     time.Time
}

// NewCircuitBreaker 创建熔断器
func NewCircuitBreaker(name string, cfg Config) *CircuitBreaker {
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = 1
	}
	if cfg.FailThreshold == 0 {
		cfg.FailThreshold = 5
	}
	if cfg.IsSuccessful == nil {
		cfg.IsSuccessful = func(err error) bool { return err == nil }
	}

	cb := &CircuitBreaker{name: name, cfg: cfg, now: time.Now}
	cb.startWindow(cb.now())
	return cb
}

// Execute 在熔断器保护下执行fn
// ctx已结束时不调用fn;fn因ctx取消而失败时不计入统计
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	generation, err := cb.acquire()
	if err != nil {
		return err
	}

	err = fn(ctx)
	cb.release(generation, cb.classify(ctx, err))
	return err
}

func (cb *CircuitBreaker) classify(ctx context.Context, err error) outcome {
	switch {
	case cb.cfg.IsSuccessful(err):
		return outcomeSuccess
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		return outcomeAbandoned
	default:
		return outcomeFailure
	}
}

func (cb *CircuitBreaker) acquire() (uint64, error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state := cb.refresh(cb.now())
	if state == StateOpen || (state == StateHalfOpen && cb.counts.Requests >= cb.cfg.MaxRequests) {
		return cb.generation, ErrOpenState
	}
	cb.counts.Requests++
	return cb.generation, nil
}

func (cb *CircuitBreaker) release(generation uint64, result outcome) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := cb.now()
	state := cb.refresh(now)
	// 执行期间状态已切换,结果属于上一代
	if generation != cb.generation {
		return
	}

	switch result {
	case outcomeAbandoned:
		// 归还探测名额
		cb.counts.Requests--
	case outcomeSuccess:
		cb.counts.ConsecutiveFailures = 0
		if state == StateHalfOpen {
			cb.transition(StateClosed, now)
		}
	case outcomeFailure:
		cb.counts.Failures++
		cb.counts.ConsecutiveFailures++
		if state == StateHalfOpen || cb.counts.ConsecutiveFailures >= cb.cfg.FailThreshold {
			cb.transition(StateOpen, now)
		}
	}
}

// refresh 处理到期:closed窗口到期清零,open到期转half-open
func (cb *CircuitBreaker) refresh(now time.Time) State {
	if cb.expiry.IsZero() || now.Before(cb.expiry) {
		return cb.state
	}
	switch cb.state {
	case StateClosed:
		cb.counts = Counts{}
		cb.startWindow(now)
	case StateOpen:
		cb.transition(StateHalfOpen, now)
	}
	return cb.state
}

func (cb *CircuitBreaker) transition(to State, now time.Time) {
	if cb.state == to {
		return
	}
	from := cb.state
	cb.state = to
	cb.generation++
	cb.counts = Counts{}

	switch to {
	case StateClosed:
		cb.startWindow(now)
	case StateOpen:
		cb.expiry = now.Add(cb.cfg.Timeout)
	case StateHalfOpen:
		cb.expiry = time.Time{}
	}

	if cb.cfg.OnStateChange != nil {
		cb.cfg.OnStateChange(cb.name, from, to)
	}
}

func (cb *CircuitBreaker) startWindow(now time.Time) {
	cb.expiry = time.Time{}
	if cb.cfg.Interval > 0 {
		cb.expiry = now.Add(cb.cfg.Interval)
	}
}

// State 当前状态
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.refresh(cb.now())
}

// Counts 当前窗口计数
func (cb *CircuitBreaker) Counts() Counts {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.counts
}
