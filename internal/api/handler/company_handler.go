package handler

import (
	"Beacon/internal/pkg/response"
	"Beacon/internal/service"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companySvc service.CompanyService
	metricSvc  service.CompanyMetricService
}

func NewCompanyHandler(companySvc service.CompanyService, metricSvc service.CompanyMetricService) *CompanyHandler {
	return &CompanyHandler{
		companySvc: companySvc,
		metricSvc:  metricSvc,
	}
}

func (s *CompanyHandler) GetTrackedCompanies(c *gin.Context) {
	companies, err := s.companySvc.GetTrackedCompanies(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, companies)
}

func (s *CompanyHandler) GetCompanyBySlug(c *gin.Context) {
	slug := c.Param("slug")

	company, err := s.companySvc.GetCompanyBySlug(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, company)
}

func (s *CompanyHandler) GetCompanyPosts(c *gin.Context) {
	slug := c.Param("slug")

	posts, err := s.companySvc.GetCompanyPosts(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *CompanyHandler) GetMetrics30Days(c *gin.Context) {
	slug := c.Param("slug")

	metrics, err := s.metricSvc.GetMetricsBy30Days(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, metrics)
}
