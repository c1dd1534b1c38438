package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 由domain层定义接口,infrastructure/persistence/rdb实现
type Repository interface {
	// List 查询全部图书(按ID升序)
	List(ctx context.Context) ([]*Book, error)

	// FindByID 根据ID查找图书,不存在时返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// Create 创建图书并回填自增ID
	Create(ctx context.Context, book *Book) error

	// Update 覆盖保存图书的全部字段
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书,不存在时返回ErrBookNotFound
	Delete(ctx context.Context, id uint) error
}

// Transactor 事务执行器
// fn内的Repository调用共享同一事务(通过ctx传递)
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
