package repository

import (
	"Beacon/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompanyMetricRepo interface {
	SaveOrUpdateMetric(ctx context.Context, metric *model.CompanyMetric) error
	GetMetricsBy30Days(ctx context.Context, companyID uint64) ([]*model.CompanyMetric, error)
}

type companyMetricRepoImpl struct {
	db *gorm.DB
}

func NewCompanyMetricRepository(db *gorm.DB) CompanyMetricRepo {
	return &companyMetricRepoImpl{db: db}
}

// SaveOrUpdateMetric 采用 Upsert 逻辑。如果 company_id + metric_date 已存在，则更新各项数值
func (r *companyMetricRepoImpl) SaveOrUpdateMetric(ctx context.Context, metric *model.CompanyMetric) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "company_id"}, {Name: "metric_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"post_count",
			"total_engagement",
			"avg_engagement",
		}),
	}).Create(metric).Error
}

// GetMetricsBy30Days 获取公司最近 30 天的趋势数据
func (r *companyMetricRepoImpl) GetMetricsBy30Days(ctx context.Context, companyID uint64) ([]*model.CompanyMetric, error) {
	metrics := make([]*model.CompanyMetric, 0)
	result := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("metric_date >= ?", time.Now().AddDate(0, 0, -30)).
		Order("metric_date ASC").
		Find(&metrics)
	if result.Error != nil {
		return nil, result.Error
	}
	return metrics, nil
}
