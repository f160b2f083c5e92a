package handler

import (
	"Beacon/internal/api/dto"
	"Beacon/internal/pkg/response"
	"Beacon/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postQuerySvc service.PostQueryService
}

func NewPostHandler(postQuerySvc service.PostQueryService) *PostHandler {
	return &PostHandler{
		postQuerySvc: postQuerySvc,
	}
}

func (s *PostHandler) GetRecentPosts(c *gin.Context) {
	var listDTO dto.PostListDTO
	if err := c.ShouldBindQuery(&listDTO); err != nil {
		response.Error(c, err)
		return
	}

	posts, err := s.postQuerySvc.GetRecentPosts(c.Request.Context(), listDTO.Days, listDTO.CompanyID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) GetTopPosts(c *gin.Context) {
	var listDTO dto.PostListDTO
	if err := c.ShouldBindQuery(&listDTO); err != nil {
		response.Error(c, err)
		return
	}

	posts, err := s.postQuerySvc.GetTopPosts(c.Request.Context(), listDTO.Limit, listDTO.Days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) GetCategories(c *gin.Context) {
	categories, err := s.postQuerySvc.GetCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, categories)
}
