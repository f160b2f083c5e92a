package repository

import (
	"Beacon/internal/model"
	"context"

	"gorm.io/gorm"
)

type CategoryRepo interface {
	GetAllCategories(ctx context.Context) ([]*model.Category, error)
}

type CategoryRepoImpl struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepo {
	return &CategoryRepoImpl{db: db}
}

// GetAllCategories 按主键序返回全部分类，该顺序即关键词匹配的优先级
func (s *CategoryRepoImpl) GetAllCategories(ctx context.Context) ([]*model.Category, error) {
	categories := make([]*model.Category, 0)
	result := s.db.WithContext(ctx).
		Order("id ASC").
		Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}
