package wire

import (
	"Beacon/internal/api"
	"Beacon/internal/api/handler"
	"Beacon/internal/job"
	"Beacon/internal/pkg/cron"
	"Beacon/internal/repository"
	"Beacon/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	companyRepo := repository.NewCompanyRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	postRepo := repository.NewPostRepository(db)
	companyMetricRepo := repository.NewCompanyMetricRepository(db)

	ingestService := service.NewIngestService(companyRepo, categoryRepo, postRepo)
	companyService := service.NewCompanyService(companyRepo, postRepo)
	postQueryService := service.NewPostQueryService(postRepo, categoryRepo)
	companyMetricService := service.NewCompanyMetricService(companyRepo, postRepo, companyMetricRepo)

	handlers := &api.HandlersGroup{
		WebhookHandler: handler.NewWebhookHandler(ingestService),
		CompanyHandler: handler.NewCompanyHandler(companyService, companyMetricService),
		PostHandler:    handler.NewPostHandler(postQueryService),
	}

	router := api.SetupRouter(handlers)

	companyMetricsJob := job.NewCompanyMetricsJob(companyMetricService)
	cronMgr := cron.NewCronManager(companyMetricsJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
