package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testClient(serverURL string) *Client {
	c := NewClient("test-key", "test-model")
	c.baseURL = serverURL
	return c
}

func TestGenerateReturnsJoinedParts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "test-model") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.GenerationConfig.MaxOutputTokens != 800 {
			t.Errorf("MaxOutputTokens = %d, want 800", req.GenerationConfig.MaxOutputTokens)
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hello "},{"text":"farmer"}]}}]}`))
	}))
	defer srv.Close()

	text, err := testClient(srv.URL).Generate(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "Hello farmer" {
		t.Fatalf("Generate = %q, want %q", text, "Hello farmer")
	}
}

func TestGenerateSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Generate(context.Background(), "hi")
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected the quota error, got %v", err)
	}
}

func TestGenerateRejectsBlockedPrompt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"promptFeedback":{"blockReason":"SAFETY"}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Generate(context.Background(), "hi")
	if err == nil || !strings.Contains(err.Error(), "SAFETY") {
		t.Fatalf("expected a blocked-prompt error, got %v", err)
	}
}

func TestGenerateRejectsEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Generate(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected an error for an empty candidate list")
	}
}

func TestNewClientFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	if _, err := NewClientFromEnv(); err != ErrNoAPIKey {
		t.Fatalf("expected ErrNoAPIKey, got %v", err)
	}

	t.Setenv("GEMINI_API_KEY", "abc")
	t.Setenv("GEMINI_MODEL", "")
	c, err := NewClientFromEnv()
	if err != nil {
		t.Fatalf("NewClientFromEnv: %v", err)
	}
	if c.model != defaultModel {
		t.Fatalf("model = %q, want default", c.model)
	}
}
