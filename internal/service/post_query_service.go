package service

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

const (
	DefaultRecentDays = 7
	DefaultTopLimit   = 10
)

type PostQueryService interface {
	GetRecentPosts(ctx context.Context, days int, companyID uint64) ([]*dto.PostDTO, error)
	GetTopPosts(ctx context.Context, limit int, days int) ([]*dto.PostDTO, error)
	GetCategories(ctx context.Context) ([]*dto.CategoryDTO, error)
}

type postQueryServiceImpl struct {
	postRepo     repository.PostRepo
	categoryRepo repository.CategoryRepo
}

func NewPostQueryService(postRepo repository.PostRepo, categoryRepo repository.CategoryRepo) PostQueryService {
	return &postQueryServiceImpl{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *postQueryServiceImpl) GetRecentPosts(ctx context.Context, days int, companyID uint64) ([]*dto.PostDTO, error) {
	if days <= 0 {
		days = DefaultRecentDays
	}
	since := time.Now().AddDate(0, 0, -days)

	posts, err := s.postRepo.GetRecentPosts(ctx, since, companyID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		items = append(items, postDTO(post))
	}
	return items, nil
}

// GetTopPosts 互动分榜单，days 为 0 时不限时间窗口
func (s *postQueryServiceImpl) GetTopPosts(ctx context.Context, limit int, days int) ([]*dto.PostDTO, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	var since *time.Time
	if days > 0 {
		t := time.Now().AddDate(0, 0, -days)
		since = &t
	}

	posts, err := s.postRepo.GetTopPosts(ctx, limit, since)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		items = append(items, postDTO(post))
	}
	return items, nil
}

func (s *postQueryServiceImpl) GetCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	categories, err := s.categoryRepo.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		item := &dto.CategoryDTO{}
		_ = copier.Copy(item, category)
		item.Keywords = category.Keywords
		items = append(items, item)
	}
	return items, nil
}
