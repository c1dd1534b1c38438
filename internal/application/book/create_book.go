package book

import (
	"context"

	"github.com/xiebiao/book-restful-api/internal/application/event"
	"github.com/xiebiao/book-restful-api/internal/application/track"
	"github.com/xiebiao/book-restful-api/internal/domain/book"
)

// CreateBookUseCase 创建图书
type CreateBookUseCase struct {
	bookService book.Service
	events      event.Publisher
}

// NewCreateBookUseCase 创建用例
func NewCreateBookUseCase(bookService book.Service, events event.Publisher) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
		events:      events,
	}
}

// Execute 校验并保存，成功后发布book.created事件
func (uc *CreateBookUseCase) Execute(ctx context.Context, req BookRequest) (resp *BookResponse, err error) {
	ctx, done := track.Start(ctx, event.ResourceBook, "create")
	defer func() { done(err) }()

	b, err := uc.bookService.CreateBook(ctx, req.toEntity())
	if err != nil {
		return nil, err
	}

	uc.events.Publish(ctx, event.New(ctx, event.ResourceBook, event.TypeCreated, b.ID))
	return toResponse(b), nil
}
