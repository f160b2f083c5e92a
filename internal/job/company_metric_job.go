package job

import (
	"Beacon/internal/pkg/consts"
	"Beacon/internal/pkg/logger"
	"Beacon/internal/pkg/redis"
	"Beacon/internal/pkg/util"
	"Beacon/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// CompanyMetricsJob 把白天摄入时标脏的公司做每日指标快照
type CompanyMetricsJob struct {
	companyMetricSvc service.CompanyMetricService
}

func NewCompanyMetricsJob(companyMetricSvc service.CompanyMetricService) *CompanyMetricsJob {
	return &CompanyMetricsJob{
		companyMetricSvc: companyMetricSvc,
	}
}

func (s *CompanyMetricsJob) Run() {
	traceID := "job-company-metric-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.CompanyDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.CompanyDirtyKey, processingKey)
	if err != nil {
		// 脏集合不存在说明这个周期没有新帖子
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get company dirty set error", "err", err)
		return
	}

	companyIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert company set to int slice error", "err", err)
		return
	}

	for _, cid := range companyIDs {
		if err = s.companyMetricSvc.SyncCompanyMetric(ctx, cid); err != nil {
			log.ErrorContext(ctx, "sync company daily metric error", "cid", cid, "err", err)
		}
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete processing set error", "err", err)
	}

	log.InfoContext(ctx, "company metrics job finished", "count", len(companyIDs))
}
