package service

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/model"
	"Beacon/internal/pkg/consts"
	"Beacon/internal/pkg/redis"
	"Beacon/internal/pkg/util"
	"Beacon/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/pkg/errors"
)

type ingestOutcome int

const (
	outcomeCreated ingestOutcome = iota
	outcomeSkipped
)

type IngestService interface {
	ProcessBatch(ctx context.Context, posts []*dto.LinkedInPostRaw) (*dto.WebhookResults, error)
}

type ingestServiceImpl struct {
	companyRepo  repository.CompanyRepo
	categoryRepo repository.CategoryRepo
	postRepo     repository.PostRepo
}

func NewIngestService(companyRepo repository.CompanyRepo, categoryRepo repository.CategoryRepo, postRepo repository.PostRepo) IngestService {
	return &ingestServiceImpl{
		companyRepo:  companyRepo,
		categoryRepo: categoryRepo,
		postRepo:     postRepo,
	}
}

// ProcessBatch 逐条处理一批帖子，单条失败不影响后续
// 分类目录整批只加载一次，保证同批内匹配规则一致
func (s *ingestServiceImpl) ProcessBatch(ctx context.Context, posts []*dto.LinkedInPostRaw) (*dto.WebhookResults, error) {
	categories, err := s.categoryRepo.GetAllCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load category catalog")
	}

	results := &dto.WebhookResults{Errors: make([]string, 0)}

	for _, raw := range posts {
		outcome, err := s.ingestPost(ctx, raw, categories)
		if err != nil {
			results.Failed++
			results.Errors = append(results.Errors, fmt.Sprintf("Post %s: %v", raw.ActivityURN, err))
			log.ErrorContext(ctx, "ingest post failed", "activity_urn", raw.ActivityURN, "err", err)
			continue
		}

		if outcome == outcomeSkipped {
			results.Skipped++
		} else {
			results.Success++
		}
	}

	return results, nil
}

func (s *ingestServiceImpl) ingestPost(ctx context.Context, raw *dto.LinkedInPostRaw, categories []*model.Category) (ingestOutcome, error) {
	company, err := s.resolveCompany(ctx, raw)
	if err != nil {
		return 0, err
	}

	// activity_urn 去重，已存在的帖子不做任何改动
	existing, err := s.postRepo.GetPostByActivityURN(ctx, raw.ActivityURN)
	if err != nil {
		return 0, errors.Wrap(err, "post lookup")
	}
	if existing != nil {
		return outcomeSkipped, nil
	}

	categorySlug := CategorizePost(raw.Text, categories)
	categoryID := CategoryIDBySlug(categorySlug, categories)

	stats := raw.Stats
	media := model.JSONMap(raw.Media)
	if media == nil {
		media = model.JSONMap{}
	}

	post := &model.Post{
		CompanyID:       company.ID,
		CategoryID:      categoryID,
		ActivityURN:     raw.ActivityURN,
		FullURN:         util.PtrString(raw.FullURN),
		PostURL:         raw.PostURL,
		TextContent:     util.PtrString(raw.Text),
		PostedAt:        time.UnixMilli(raw.PostedAt.Timestamp).UTC(),
		PostLanguage:    defaultString(raw.PostLanguageCode, consts.DefaultPostLanguage),
		PostType:        defaultString(raw.PostType, consts.DefaultPostType),
		EngagementScore: CalculateEngagementScore(&stats),
		Stats: model.PostStats{
			TotalReactions: stats.TotalReactions,
			Like:           stats.Like,
			Love:           stats.Love,
			Celebrate:      stats.Celebrate,
			Comments:       stats.Comments,
			Reposts:        stats.Reposts,
		},
		Media:    media,
		Document: documentModel(raw.Document),
		RawData:  model.JSONRaw(raw.Raw()),
	}

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return 0, errors.Wrap(err, "post create")
	}

	// 脏标记供每日指标任务消费，失败只记日志
	if err := redis.AddToSet(ctx, consts.CompanyDirtyKey, company.ID); err != nil {
		log.WarnContext(ctx, "mark company dirty failed", "company_id", company.ID, "err", err)
	}

	return outcomeCreated, nil
}

// resolveCompany 按 slug 找公司，没有就建档，有就刷新画像字段
// 刷新失败不阻断当前帖子，公司 ID 此时已经拿到
func (s *ingestServiceImpl) resolveCompany(ctx context.Context, raw *dto.LinkedInPostRaw) (*model.Company, error) {
	name := raw.SourceCompany
	if name == "" {
		name = raw.Author.Name
	}
	slug := util.Slugify(name)

	company, err := s.companyRepo.GetCompanyBySlug(ctx, slug)
	if err != nil {
		return nil, errors.Wrap(err, "company lookup")
	}

	if company == nil {
		company = &model.Company{
			Name:          name,
			Slug:          slug,
			LinkedinURL:   raw.Author.CompanyURL,
			LogoURL:       util.PtrString(raw.Author.LogoURL),
			FollowerCount: raw.Author.FollowerCount,
			IsTracked:     true,
		}
		if err := s.companyRepo.CreateCompany(ctx, company); err != nil {
			return nil, errors.Wrap(err, "company create")
		}
		return company, nil
	}

	if err := s.companyRepo.UpdateCompanyProfile(ctx, company.ID, util.PtrString(raw.Author.LogoURL), raw.Author.FollowerCount, raw.Author.CompanyURL); err != nil {
		log.ErrorContext(ctx, "update company profile failed", "company_id", company.ID, "err", err)
	}

	return company, nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func documentModel(doc *dto.DocumentRaw) *model.PostDocument {
	if doc == nil {
		return nil
	}
	return &model.PostDocument{
		Title:     doc.Title,
		PageCount: doc.PageCount,
		URL:       doc.URL,
		Thumbnail: doc.Thumbnail,
	}
}
