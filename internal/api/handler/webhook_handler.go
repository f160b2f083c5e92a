package handler

import (
	"Beacon/internal/api/config"
	"Beacon/internal/api/dto"
	"Beacon/internal/service"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WebhookHandler 接收 n8n 推送的抓取结果
// 上游按 HTTP 状态码判定投递结果，所以这里不走统一业务码封装
type WebhookHandler struct {
	ingestSvc service.IngestService
}

func NewWebhookHandler(ingestSvc service.IngestService) *WebhookHandler {
	return &WebhookHandler{
		ingestSvc: ingestSvc,
	}
}

func (s *WebhookHandler) Receive(c *gin.Context) {
	secret := config.Cfg.Webhook.Secret
	if secret == "" {
		log.ErrorContext(c.Request.Context(), "webhook secret not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook not configured"})
		return
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "Bearer "+secret {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No posts provided"})
		return
	}
	if len(req.Posts) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No posts provided"})
		return
	}

	results, err := s.ingestSvc.ProcessBatch(c.Request.Context(), req.Posts)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "webhook batch failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": err.Error(),
		})
		return
	}

	// 单条帖子的失败体现在 results 里，HTTP 层面整批算成功
	c.JSON(http.StatusOK, dto.WebhookResponse{
		Message: "Webhook processed",
		Results: results,
	})
}

// Health 存活探针
func (s *WebhookHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Webhook endpoint is active",
	})
}
