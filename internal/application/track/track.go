// Package track 用例级的Span和操作计数
package track

import (
	"context"

	"github.com/xiebiao/book-restful-api/pkg/errors"
	"github.com/xiebiao/book-restful-api/pkg/metrics"
	"github.com/xiebiao/book-restful-api/pkg/tracing"
)

// 操作结果（record_operations_total的result标签）
const (
	ResultSuccess  = "success"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Start 开始一次操作，返回的done必须调用
//
//	ctx, done := track.Start(ctx, "book", "create")
//	defer func() { done(err) }()
func Start(ctx context.Context, resource, operation string) (context.Context, func(error)) {
	ctx, span := tracing.StartSpan(ctx, resource, resource+"."+operation)
	return ctx, func(err error) {
		metrics.RecordOperation(resource, operation, Result(err))
		tracing.EndSpan(span, err)
	}
}

// Result 错误 → 结果标签
func Result(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.IsNotFound(err):
		return ResultNotFound
	case errors.HTTPStatus(err) < 500:
		return ResultInvalid
	default:
		return ResultError
	}
}
