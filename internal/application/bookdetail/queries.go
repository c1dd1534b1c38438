package bookdetail

import (
	"context"
	"log/slog"

	"github.com/xiebiao/book-restful-api/internal/application/event"
	"github.com/xiebiao/book-restful-api/internal/application/track"
	"github.com/xiebiao/book-restful-api/internal/domain/bookdetail"
	"github.com/xiebiao/book-restful-api/pkg/metrics"
)

// ListBookDetailsUseCase 查询全部图书详情
type ListBookDetailsUseCase struct {
	service bookdetail.Service
}

func NewListBookDetailsUseCase(service bookdetail.Service) *ListBookDetailsUseCase {
	return &ListBookDetailsUseCase{service: service}
}

func (uc *ListBookDetailsUseCase) Execute(ctx context.Context) (list []*BookDetailResponse, err error) {
	ctx, done := track.Start(ctx, event.ResourceBookDetail, "list")
	defer func() { done(err) }()

	details, err := uc.service.ListBookDetails(ctx)
	if err != nil {
		return nil, err
	}

	list = make([]*BookDetailResponse, len(details))
	for i, d := range details {
		list[i] = toResponse(d)
	}
	return list, nil
}

// GetBookDetailUseCase 按ID查询图书详情（读穿透缓存，流程同GetBookUseCase）
type GetBookDetailUseCase struct {
	service bookdetail.Service
	cache   Cache
	log     *slog.Logger
}

func NewGetBookDetailUseCase(service bookdetail.Service, cache Cache, log *slog.Logger) *GetBookDetailUseCase {
	return &GetBookDetailUseCase{service: service, cache: cache, log: log}
}

func (uc *GetBookDetailUseCase) Execute(ctx context.Context, id uint) (resp *BookDetailResponse, err error) {
	ctx, done := track.Start(ctx, event.ResourceBookDetail, "get")
	defer func() { done(err) }()

	cached, ok, cacheErr := uc.cache.Get(ctx, id)
	switch {
	case cacheErr != nil:
		metrics.RecordCache(event.ResourceBookDetail, "error")
		uc.log.WarnContext(ctx, "读取图书详情缓存失败", "id", id, "error", cacheErr)
	case ok:
		metrics.RecordCache(event.ResourceBookDetail, "hit")
		return toResponse(cached), nil
	default:
		metrics.RecordCache(event.ResourceBookDetail, "miss")
	}

	d, err := uc.service.GetBookDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, id, d); err != nil {
		uc.log.WarnContext(ctx, "写入图书详情缓存失败", "id", id, "error", err)
	}
	return toResponse(d), nil
}
