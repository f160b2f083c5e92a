package handler

import (
	"Beacon/internal/api/config"
	"Beacon/internal/api/dto"
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIngestService struct {
	results *dto.WebhookResults
	err     error
	calls   int
	gotLen  int
}

func (f *fakeIngestService) ProcessBatch(_ context.Context, posts []*dto.LinkedInPostRaw) (*dto.WebhookResults, error) {
	f.calls++
	f.gotLen = len(posts)
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func setupWebhookRouter(svc *fakeIngestService, secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.Cfg = &config.Config{Webhook: config.WebhookConfig{Secret: secret}}

	r := gin.New()
	h := NewWebhookHandler(svc)
	r.GET("/api/webhook", h.Health)
	r.POST("/api/webhook", h.Receive)
	return r
}

func webhookBody(t *testing.T, urns ...string) *bytes.Buffer {
	t.Helper()
	posts := make([]map[string]interface{}, 0, len(urns))
	for _, urn := range urns {
		posts = append(posts, map[string]interface{}{
			"activity_urn": urn,
			"text":         "hello",
			"posted_at":    map[string]interface{}{"timestamp": int64(1756100000000)},
			"author":       map[string]interface{}{"name": "Sequoia Capital"},
			"stats":        map[string]interface{}{"total_reactions": 1},
		})
	}
	b, err := json.Marshal(map[string]interface{}{"posts": posts})
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestWebhookReceive_SecretMissing(t *testing.T) {
	svc := &fakeIngestService{}
	r := setupWebhookRouter(svc, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/webhook", webhookBody(t, "urn-1"))
	req.Header.Set("Authorization", "Bearer anything")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Webhook not configured")
	assert.Equal(t, 0, svc.calls)
}

func TestWebhookReceive_Unauthorized(t *testing.T) {
	svc := &fakeIngestService{}
	r := setupWebhookRouter(svc, "top-secret")

	for name, header := range map[string]string{
		"wrong token":  "Bearer nope",
		"no bearer":    "top-secret",
		"empty header": "",
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/webhook", webhookBody(t, "urn-1"))
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
	assert.Equal(t, 0, svc.calls)
}

func TestWebhookReceive_EmptyPosts(t *testing.T) {
	svc := &fakeIngestService{}
	r := setupWebhookRouter(svc, "top-secret")

	for name, body := range map[string]string{
		"empty array":  `{"posts": []}`,
		"missing key":  `{}`,
		"invalid json": `{"posts": `,
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/webhook", bytes.NewBufferString(body))
			req.Header.Set("Authorization", "Bearer top-secret")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "No posts provided")
		})
	}
	assert.Equal(t, 0, svc.calls)
}

func TestWebhookReceive_Success(t *testing.T) {
	svc := &fakeIngestService{
		results: &dto.WebhookResults{Success: 2, Skipped: 1, Errors: []string{}},
	}
	r := setupWebhookRouter(svc, "top-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/webhook", webhookBody(t, "urn-1", "urn-2", "urn-3"))
	req.Header.Set("Authorization", "Bearer top-secret")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, 3, svc.gotLen)

	var resp dto.WebhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Webhook processed", resp.Message)
	require.NotNil(t, resp.Results)
	assert.Equal(t, 2, resp.Results.Success)
	assert.Equal(t, 1, resp.Results.Skipped)
}

func TestWebhookReceive_BatchError(t *testing.T) {
	svc := &fakeIngestService{err: errors.New("db gone")}
	r := setupWebhookRouter(svc, "top-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/webhook", webhookBody(t, "urn-1"))
	req.Header.Set("Authorization", "Bearer top-secret")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.Contains(t, w.Body.String(), "db gone")
}

func TestWebhookHealth(t *testing.T) {
	r := setupWebhookRouter(&fakeIngestService{}, "top-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/webhook", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Webhook endpoint is active")
}
