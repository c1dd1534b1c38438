package bookdetail

import (
	"context"
	"log/slog"

	"github.com/xiebiao/book-restful-api/internal/application/event"
	"github.com/xiebiao/book-restful-api/internal/application/track"
	"github.com/xiebiao/book-restful-api/internal/domain/bookdetail"
)

// CreateBookDetailUseCase 创建图书详情
type CreateBookDetailUseCase struct {
	service bookdetail.Service
	events  event.Publisher
}

func NewCreateBookDetailUseCase(service bookdetail.Service, events event.Publisher) *CreateBookDetailUseCase {
	return &CreateBookDetailUseCase{service: service, events: events}
}

func (uc *CreateBookDetailUseCase) Execute(ctx context.Context, req BookDetailRequest) (resp *BookDetailResponse, err error) {
	ctx, done := track.Start(ctx, event.ResourceBookDetail, "create")
	defer func() { done(err) }()

	d, err := uc.service.CreateBookDetail(ctx, req.toEntity())
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, event.New(ctx, event.ResourceBookDetail, event.TypeCreated, d.ID))
	return toResponse(d), nil
}

// UpdateBookDetailUseCase 覆盖更新图书详情
type UpdateBookDetailUseCase struct {
	service bookdetail.Service
	cache   Cache
	events  event.Publisher
	log     *slog.Logger
}

func NewUpdateBookDetailUseCase(service bookdetail.Service, cache Cache, events event.Publisher, log *slog.Logger) *UpdateBookDetailUseCase {
	return &UpdateBookDetailUseCase{service: service, cache: cache, events: events, log: log}
}

func (uc *UpdateBookDetailUseCase) Execute(ctx context.Context, id uint, req BookDetailRequest) (resp *BookDetailResponse, err error) {
	ctx, done := track.Start(ctx, event.ResourceBookDetail, "update")
	defer func() { done(err) }()

	d, err := uc.service.UpdateBookDetail(ctx, id, req.toEntity())
	if err != nil {
		return nil, err
	}

	evict(ctx, uc.cache, uc.log, id)
	uc.events.Publish(ctx, event.New(ctx, event.ResourceBookDetail, event.TypeUpdated, id))
	return toResponse(d), nil
}

// DeleteBookDetailUseCase 删除图书详情
type DeleteBookDetailUseCase struct {
	service bookdetail.Service
	cache   Cache
	events  event.Publisher
	log     *slog.Logger
}

func NewDeleteBookDetailUseCase(service bookdetail.Service, cache Cache, events event.Publisher, log *slog.Logger) *DeleteBookDetailUseCase {
	return &DeleteBookDetailUseCase{service: service, cache: cache, events: events, log: log}
}

func (uc *DeleteBookDetailUseCase) Execute(ctx context.Context, id uint) (err error) {
	ctx, done := track.Start(ctx, event.ResourceBookDetail, "delete")
	defer func() { done(err) }()

	if err := uc.service.DeleteBookDetail(ctx, id); err != nil {
		return err
	}

	evict(ctx, uc.cache, uc.log, id)
	uc.events.Publish(ctx, event.New(ctx, event.ResourceBookDetail, event.TypeDeleted, id))
	return nil
}
