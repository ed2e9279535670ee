package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"careerdraft-backend/internal/llm"
)

type kindAwareLLM struct{}

func (kindAwareLLM) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	for _, m := range messages {
		if strings.Contains(m.Content, "cover letter") {
			return "Dear Hiring Manager,\n\nI am excited to apply.", nil
		}
	}
	return "EXPERIENCE\n- Built things", nil
}

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", "user-1")
		c.Next()
	})
	api := router.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api)
	return router
}

func TestGenerateEndpointSingleKind(t *testing.T) {
	rec := &fakeUsage{}
	router := newTestRouter(NewService(kindAwareLLM{}, nil, rec))

	body := `{"jobDescription":"Go engineer","documentType":"resume"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	var out GenerateResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Content == "" || len(out.Document.Lines) != 2 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if rec.records != 1 {
		t.Fatalf("usage records = %d, want 1", rec.records)
	}
}

func TestGenerateEndpointBoth(t *testing.T) {
	rec := &fakeUsage{}
	router := newTestRouter(NewService(kindAwareLLM{}, nil, rec))

	body := `{"jobDescription":"Go engineer","documentType":"both"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	var out BothResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out.Resume.Document.Lines) == 0 {
		t.Fatalf("resume missing lines: %+v", out.Resume)
	}
	if len(out.CoverLetter.Document.Paragraphs) == 0 {
		t.Fatalf("cover letter missing paragraphs: %+v", out.CoverLetter)
	}
	if rec.records != 2 {
		t.Fatalf("usage records = %d, want 2", rec.records)
	}
}

func TestGenerateEndpointRejectsUnknownKind(t *testing.T) {
	router := newTestRouter(NewService(kindAwareLLM{}, nil, &fakeUsage{}))

	body := `{"jobDescription":"Go engineer","documentType":"poem"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "error") {
		t.Fatalf("expected error envelope, got %s", resp.Body.String())
	}
}

type preambleOnlyLLM struct{}

func (preambleOnlyLLM) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	return "Here is a professional resume for you:", nil
}

func TestGenerateEndpointTreatsEmptyCompletionAsProviderError(t *testing.T) {
	router := newTestRouter(NewService(preambleOnlyLLM{}, nil, &fakeUsage{}))

	body := `{"jobDescription":"Go engineer","documentType":"resume"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.Code)
	}
	var out struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Code != "provider_error" {
		t.Fatalf("code = %q, want provider_error", out.Code)
	}
}
