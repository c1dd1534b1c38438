package bookdetail

import (
	"context"
)

// Service 图书详情领域服务接口
type Service interface {
	ListBookDetails(ctx context.Context) ([]*BookDetail, error)
	GetBookDetail(ctx context.Context, id uint) (*BookDetail, error)
	CreateBookDetail(ctx context.Context, d *BookDetail) (*BookDetail, error)
	UpdateBookDetail(ctx context.Context, id uint, d *BookDetail) (*BookDetail, error)
	DeleteBookDetail(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
	tx   Transactor
}

// NewService 创建图书详情领域服务
func NewService(repo Repository, tx Transactor) Service {
	return &service{repo: repo, tx: tx}
}

func (s *service) ListBookDetails(ctx context.Context) ([]*BookDetail, error) {
	return s.repo.List(ctx)
}

func (s *service) GetBookDetail(ctx context.Context, id uint) (*BookDetail, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) CreateBookDetail(ctx context.Context, d *BookDetail) (*BookDetail, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}
	d.ID = 0
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// UpdateBookDetail 查询与保存在同一事务中执行,ID保持不变
func (s *service) UpdateBookDetail(ctx context.Context, id uint, d *BookDetail) (*BookDetail, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}

	var updated *BookDetail
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		existing.Overwrite(d)
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

func (s *service) DeleteBookDetail(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
