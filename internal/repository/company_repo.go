package repository

import (
	"Beacon/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CompanyRepo interface {
	GetCompanyBySlug(ctx context.Context, slug string) (*model.Company, error)
	GetCompanyById(ctx context.Context, id uint64) (*model.Company, error)
	GetTrackedCompanies(ctx context.Context) ([]*model.Company, error)
	CreateCompany(ctx context.Context, company *model.Company) error
	UpdateCompanyProfile(ctx context.Context, id uint64, logoURL *string, followerCount int, linkedinURL string) error
}

type CompanyRepoImpl struct {
	db *gorm.DB
}

func NewCompanyRepo(db *gorm.DB) CompanyRepo {
	return &CompanyRepoImpl{db: db}
}

func (s *CompanyRepoImpl) GetCompanyBySlug(ctx context.Context, slug string) (*model.Company, error) {
	company := &model.Company{}
	result := s.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(company)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return company, nil
}

func (s *CompanyRepoImpl) GetCompanyById(ctx context.Context, id uint64) (*model.Company, error) {
	company := &model.Company{}
	result := s.db.WithContext(ctx).First(company, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return company, nil
}

func (s *CompanyRepoImpl) GetTrackedCompanies(ctx context.Context) ([]*model.Company, error) {
	companies := make([]*model.Company, 0)
	result := s.db.WithContext(ctx).
		Where("is_tracked = ?", true).
		Order("name ASC").
		Find(&companies)
	if result.Error != nil {
		return nil, result.Error
	}
	return companies, nil
}

func (s *CompanyRepoImpl) CreateCompany(ctx context.Context, company *model.Company) error {
	return s.db.WithContext(ctx).Create(company).Error
}

// UpdateCompanyProfile 只刷新画像字段，name 和 slug 建档后不再变动
func (s *CompanyRepoImpl) UpdateCompanyProfile(ctx context.Context, id uint64, logoURL *string, followerCount int, linkedinURL string) error {
	return s.db.WithContext(ctx).
		Model(&model.Company{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"logo_url":       logoURL,
			"follower_count": followerCount,
			"linkedin_url":   linkedinURL,
		}).Error
}
