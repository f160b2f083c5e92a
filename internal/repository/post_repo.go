package repository

import (
	"Beacon/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type PostRepo interface {
	GetPostByActivityURN(ctx context.Context, activityURN string) (*model.Post, error)
	CreatePost(ctx context.Context, post *model.Post) error
	GetRecentPosts(ctx context.Context, since time.Time, companyID uint64) ([]*model.Post, error)
	GetTopPosts(ctx context.Context, limit int, since *time.Time) ([]*model.Post, error)
	GetPostsByCompanyId(ctx context.Context, companyID uint64) ([]*model.Post, error)
	GetCompanyEngagementTotals(ctx context.Context, companyID uint64) (int64, int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) GetPostByActivityURN(ctx context.Context, activityURN string) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).
		Where("activity_urn = ?", activityURN).
		First(post)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return post, nil
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetRecentPosts(ctx context.Context, since time.Time, companyID uint64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	query := s.db.WithContext(ctx).
		Preload("Company").
		Preload("Category").
		Where("posted_at >= ?", since).
		Order("posted_at DESC")

	if companyID > 0 {
		query = query.Where("company_id = ?", companyID)
	}

	result := query.Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) GetTopPosts(ctx context.Context, limit int, since *time.Time) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	query := s.db.WithContext(ctx).
		Preload("Company").
		Preload("Category").
		Order("engagement_score DESC").
		Limit(limit)

	if since != nil {
		query = query.Where("posted_at >= ?", *since)
	}

	result := query.Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) GetPostsByCompanyId(ctx context.Context, companyID uint64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.db.WithContext(ctx).
		Preload("Company").
		Preload("Category").
		Where("company_id = ?", companyID).
		Order("posted_at DESC").
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

// GetCompanyEngagementTotals 统计公司全量帖子数与互动分总和
func (s *PostRepoImpl) GetCompanyEngagementTotals(ctx context.Context, companyID uint64) (int64, int64, error) {
	var totals struct {
		PostCount       int64
		TotalEngagement int64
	}
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Select("COUNT(*) AS post_count, COALESCE(SUM(engagement_score), 0) AS total_engagement").
		Where("company_id = ?", companyID).
		Scan(&totals)
	if result.Error != nil {
		return 0, 0, result.Error
	}
	return totals.PostCount, totals.TotalEngagement, nil
}
