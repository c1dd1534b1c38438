package bookdetail

import (
	"context"
)

// Repository 图书详情仓储接口
type Repository interface {
	List(ctx context.Context) ([]*BookDetail, error)
	FindByID(ctx context.Context, id uint) (*BookDetail, error)
	Create(ctx context.Context, detail *BookDetail) error
	Update(ctx context.Context, detail *BookDetail) error
	Delete(ctx context.Context, id uint) error
}

// Transactor 事务执行器
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
