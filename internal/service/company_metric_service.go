package service

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/model"
	"Beacon/internal/repository"
	"context"
	"time"
)

type CompanyMetricService interface {
	SyncCompanyMetric(ctx context.Context, companyID uint64) error
	GetMetricsBy30Days(ctx context.Context, slug string) ([]*dto.CompanyMetricDTO, error)
}

type companyMetricServiceImpl struct {
	companyRepo       repository.CompanyRepo
	postRepo          repository.PostRepo
	companyMetricRepo repository.CompanyMetricRepo
}

func NewCompanyMetricService(companyRepo repository.CompanyRepo, postRepo repository.PostRepo, companyMetricRepo repository.CompanyMetricRepo) CompanyMetricService {
	return &companyMetricServiceImpl{
		companyRepo:       companyRepo,
		postRepo:          postRepo,
		companyMetricRepo: companyMetricRepo,
	}
}

// SyncCompanyMetric 把公司当前的帖子总量和互动分快照到当日指标
func (s *companyMetricServiceImpl) SyncCompanyMetric(ctx context.Context, companyID uint64) error {
	postCount, totalEngagement, err := s.postRepo.GetCompanyEngagementTotals(ctx, companyID)
	if err != nil {
		return err
	}

	var avg float64
	if postCount > 0 {
		avg = float64(totalEngagement) / float64(postCount)
	}

	metric := &model.CompanyMetric{
		CompanyID:       companyID,
		MetricDate:      getMidnight(time.Now()),
		PostCount:       int(postCount),
		TotalEngagement: int(totalEngagement),
		AvgEngagement:   avg,
	}
	return s.companyMetricRepo.SaveOrUpdateMetric(ctx, metric)
}

func (s *companyMetricServiceImpl) GetMetricsBy30Days(ctx context.Context, slug string) ([]*dto.CompanyMetricDTO, error) {
	company, err := s.companyRepo.GetCompanyBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}

	metrics, err := s.companyMetricRepo.GetMetricsBy30Days(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CompanyMetricDTO, 0, len(metrics))
	for _, metric := range metrics {
		items = append(items, &dto.CompanyMetricDTO{
			MetricDate:      metric.MetricDate.Format("2006-01-02"),
			PostCount:       metric.PostCount,
			TotalEngagement: metric.TotalEngagement,
			AvgEngagement:   metric.AvgEngagement,
		})
	}
	return items, nil
}

func getMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
