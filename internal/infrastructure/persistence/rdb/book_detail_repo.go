package rdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/book-restful-api/internal/domain/bookdetail"
	apperrors "github.com/xiebiao/book-restful-api/pkg/errors"
)

// bookDetailRepository 图书详情仓储实现(GORM)
type bookDetailRepository struct {
	db *gorm.DB
}

// NewBookDetailRepository 创建图书详情仓储
func NewBookDetailRepository(db *gorm.DB) bookdetail.Repository {
	return &bookDetailRepository{db: db}
}

func (r *bookDetailRepository) List(ctx context.Context) ([]*bookdetail.BookDetail, error) {
	var models []BookDetailModel
	if err := dbFrom(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书详情列表失败")
	}

	details := make([]*bookdetail.BookDetail, len(models))
	for i := range models {
		details[i] = toBookDetailEntity(&models[i])
	}
	return details, nil
}

func (r *bookDetailRepository) FindByID(ctx context.Context, id uint) (*bookdetail.BookDetail, error) {
	var model BookDetailModel
	if err := dbFrom(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookdetail.NotFound(id)
		}
		return nil, apperrors.Wrap(err, "查询图书详情失败")
	}
	return toBookDetailEntity(&model), nil
}

func (r *bookDetailRepository) Create(ctx context.Context, d *bookdetail.BookDetail) error {
	model := toBookDetailModel(d)
	model.ID = 0

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书详情失败")
	}

	d.ID = model.ID
	d.CreatedAt = model.CreatedAt
	d.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *bookDetailRepository) Update(ctx context.Context, d *bookdetail.BookDetail) error {
	model := toBookDetailModel(d)

	result := dbFrom(ctx, r.db).Model(model).Select("*").Omit("created_at").Updates(model)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新图书详情失败")
	}

	d.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *bookDetailRepository) Delete(ctx context.Context, id uint) error {
	result := dbFrom(ctx, r.db).Delete(&BookDetailModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书详情失败")
	}
	if result.RowsAffected == 0 {
		return bookdetail.NotFound(id)
	}
	return nil
}

func toBookDetailEntity(m *BookDetailModel) *bookdetail.BookDetail {
	return &bookdetail.BookDetail{
		ID:            m.ID,
		Title:         m.Title,
		Author:        m.Author,
		Genre:         m.Genre,
		PublishedYear: m.PublishedYear,
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toBookDetailModel(d *bookdetail.BookDetail) *BookDetailModel {
	return &BookDetailModel{
		ID:            d.ID,
		Title:         d.Title,
		Author:        d.Author,
		Genre:         d.Genre,
		PublishedYear: d.PublishedYear,
		Description:   d.Description,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
