package book

import (
	"context"
)

// Service 图书领域服务接口
// 领域服务负责业务规则校验(Validate)和"不存在"判断
type Service interface {
	// ListBooks 查询全部图书
	ListBooks(ctx context.Context) ([]*Book, error)

	// GetBook 根据ID获取图书
	GetBook(ctx context.Context, id uint) (*Book, error)

	// CreateBook 校验并创建图书,ID由数据库分配
	CreateBook(ctx context.Context, b *Book) (*Book, error)

	// UpdateBook 校验后覆盖已存在图书的全部字段,ID保持不变
	UpdateBook(ctx context.Context, id uint, b *Book) (*Book, error)

	// DeleteBook 删除图书
	DeleteBook(ctx context.Context, id uint) error
}

// service 领域服务实现
type service struct {
	repo Repository
	tx   Transactor
}

// NewService 创建图书领域服务
func NewService(repo Repository, tx Transactor) Service {
	return &service{repo: repo, tx: tx}
}

// ListBooks 查询全部图书
func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}

// GetBook 根据ID获取图书
func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, b *Book) (*Book, error) {
	// 1. 字段校验
	if err := Validate(b); err != nil {
		return nil, err
	}

	// 2. 忽略客户端传入的ID,由数据库分配
	b.ID = 0

	// 3. 持久化
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateBook 更新图书
// 查询与保存在同一事务中执行
func (s *service) UpdateBook(ctx context.Context, id uint, b *Book) (*Book, error) {
	if err := Validate(b); err != nil {
		return nil, err
	}

	var updated *Book
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		existing.Overwrite(b)
		if err := s.repo.Update(ctx, existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
