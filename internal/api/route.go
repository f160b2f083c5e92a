package api

import (
	"Beacon/internal/api/middleware"
	"Beacon/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		webhookGroup := apiGroup.Group("/webhook")
		{
			webhookGroup.GET("", group.WebhookHandler.Health)
			webhookGroup.POST("", group.WebhookHandler.Receive)
		}

		companyGroup := apiGroup.Group("/companies")
		{
			companyGroup.GET("", group.CompanyHandler.GetTrackedCompanies)
			companyGroup.GET("/:slug", group.CompanyHandler.GetCompanyBySlug)
			companyGroup.GET("/:slug/posts", group.CompanyHandler.GetCompanyPosts)
		}

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("/recent", group.PostHandler.GetRecentPosts)
			postGroup.GET("/top", group.PostHandler.GetTopPosts)
		}

		apiGroup.GET("/categories", group.PostHandler.GetCategories)

		metricsGroup := apiGroup.Group("/metrics")
		{
			metricsGroup.GET("/companies/:slug/30d", group.CompanyHandler.GetMetrics30Days)
		}
	}

	return r
}
