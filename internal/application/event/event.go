// Package event 记录变更事件
package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/xiebiao/book-restful-api/pkg/metrics"
	"github.com/xiebiao/book-restful-api/pkg/mq"
	"github.com/xiebiao/book-restful-api/pkg/tracing"
)

// 资源名称（同时用作Routing Key前缀和指标标签）
const (
	ResourceBook       = "book"
	ResourceBookDetail = "book_detail"
)

// 事件类型
const (
	TypeCreated = "created"
	TypeUpdated = "updated"
	TypeDeleted = "deleted"
)

// Event 记录变更事件
type Event struct {
	Type       string    `json:"type"`
	Resource   string    `json:"resource"`
	ID         uint      `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
	TraceID    string    `json:"trace_id,omitempty"`
}

// New 创建事件，trace id取自请求Context
func New(ctx context.Context, resource, typ string, id uint) Event {
	return Event{
		Type:       typ,
		Resource:   resource,
		ID:         id,
		OccurredAt: time.Now().UTC(),
		TraceID:    tracing.TraceIDFromContext(ctx),
	}
}

// RoutingKey 如book.created、book_detail.deleted
func (e Event) RoutingKey() string {
	return e.Resource + "." + e.Type
}

// Publisher 事件发布接口
// 发布失败只记录日志，不影响请求结果，所以没有返回值
type Publisher interface {
	Publish(ctx context.Context, e Event)
}

// messagePublisher pkg/mq.Publisher满足的接口
type messagePublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// NewPublisher 基于消息队列的发布者，mp为nil（mq未启用）时返回空实现
func NewPublisher(mp *mq.Publisher, log *slog.Logger) Publisher {
	if mp == nil {
		return NoopPublisher{}
	}
	return &mqPublisher{mp: mp, log: log}
}

type mqPublisher struct {
	mp  messagePublisher
	log *slog.Logger
}

func (p *mqPublisher) Publish(ctx context.Context, e Event) {
	key := e.RoutingKey()
	err := p.mp.Publish(ctx, key, e)
	metrics.RecordEvent(key, err)
	if err != nil {
		p.log.WarnContext(ctx, "发布变更事件失败",
			"routing_key", key,
			"id", e.ID,
			"trace_id", e.TraceID,
			"error", err,
		)
		return
	}
	p.log.DebugContext(ctx, "变更事件已发布", "routing_key", key, "id", e.ID)
}

// NoopPublisher 不发布任何事件
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) {}
