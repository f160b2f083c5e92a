package service

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/model"
	"Beacon/internal/pkg/consts"
	"Beacon/internal/pkg/redis"
	"Beacon/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

// CompanyListCacheTTL 公司列表缓存时长
const CompanyListCacheTTL = 5 * time.Minute

type CompanyService interface {
	GetTrackedCompanies(ctx context.Context) ([]*dto.CompanyDTO, error)
	GetCompanyBySlug(ctx context.Context, slug string) (*dto.CompanyDTO, error)
	GetCompanyPosts(ctx context.Context, slug string) ([]*dto.PostDTO, error)
}

type companyServiceImpl struct {
	companyRepo repository.CompanyRepo
	postRepo    repository.PostRepo
}

func NewCompanyService(companyRepo repository.CompanyRepo, postRepo repository.PostRepo) CompanyService {
	return &companyServiceImpl{
		companyRepo: companyRepo,
		postRepo:    postRepo,
	}
}

func (s *companyServiceImpl) GetTrackedCompanies(ctx context.Context) ([]*dto.CompanyDTO, error) {
	cached, err := redis.GetValue(ctx, consts.CompanyTrackedListKey)
	if err != nil {
		log.WarnContext(ctx, "read company list cache failed", "err", err)
	}
	if cached != "" {
		items := make([]*dto.CompanyDTO, 0)
		if err = json.Unmarshal([]byte(cached), &items); err == nil {
			return items, nil
		}
	}

	companies, err := s.companyRepo.GetTrackedCompanies(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CompanyDTO, 0, len(companies))
	for _, company := range companies {
		items = append(items, companyDTO(company))
	}

	if data, err := json.Marshal(items); err == nil {
		_ = redis.SetWithExpiration(ctx, consts.CompanyTrackedListKey, string(data), CompanyListCacheTTL)
	}

	return items, nil
}

func (s *companyServiceImpl) GetCompanyBySlug(ctx context.Context, slug string) (*dto.CompanyDTO, error) {
	company, err := s.companyRepo.GetCompanyBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}
	return companyDTO(company), nil
}

func (s *companyServiceImpl) GetCompanyPosts(ctx context.Context, slug string) ([]*dto.PostDTO, error) {
	company, err := s.companyRepo.GetCompanyBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}

	posts, err := s.postRepo.GetPostsByCompanyId(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		items = append(items, postDTO(post))
	}
	return items, nil
}

func companyDTO(company *model.Company) *dto.CompanyDTO {
	item := &dto.CompanyDTO{}
	_ = copier.Copy(item, company)
	item.CreatedAt = company.CreatedAt.Format(time.RFC3339)
	item.UpdatedAt = company.UpdatedAt.Format(time.RFC3339)
	return item
}

func postDTO(post *model.Post) *dto.PostDTO {
	item := &dto.PostDTO{}
	_ = copier.Copy(item, post)
	_ = copier.Copy(&item.Stats, &post.Stats)
	item.PostedAt = post.PostedAt.Format(time.RFC3339)
	if post.TextContent != nil {
		item.TextContent = *post.TextContent
	}
	item.CompanyName = post.Company.Name
	item.CompanySlug = post.Company.Slug
	if post.Category != nil {
		item.CategorySlug = post.Category.Slug
		item.CategoryName = post.Category.Name
		item.CategoryColor = post.Category.Color
	}
	return item
}
