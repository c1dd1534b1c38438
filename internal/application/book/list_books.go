package book

import (
	"context"

	"github.com/xiebiao/book-restful-api/internal/application/event"
	"github.com/xiebiao/book-restful-api/internal/application/track"
	"github.com/xiebiao/book-restful-api/internal/domain/book"
)

// ListBooksUseCase 查询全部图书
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

// Execute 返回按ID升序的全部图书，没有数据时返回空切片
func (uc *ListBooksUseCase) Execute(ctx context.Context) (list []*BookResponse, err error) {
	ctx, done := track.Start(ctx, event.ResourceBook, "list")
	defer func() { done(err) }()

	books, err := uc.bookService.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	list = make([]*BookResponse, len(books))
	for i, b := range books {
		list[i] = toResponse(b)
	}
	return list, nil
}
