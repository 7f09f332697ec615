package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/eladmint/whatsapp-analyzer/pkg/models"
)

func testMessages() []models.Message {
	at := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)
	return []models.Message{
		{Sender: "Alice", Content: "hello", Timestamp: at},
		{Sender: "Bob", Content: "hi", Timestamp: at.Add(time.Minute)},
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(Config{APIKey: "test-key", BaseURL: srv.URL, Model: "test-model", Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("err = %v, want ErrMissingAPIKey", err)
	}
}

func TestAnalyzeConversationSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"A detailed profile."}}]}`))
	})
	res := c.AnalyzeConversation(context.Background(), testMessages())
	if !res.Success {
		t.Fatalf("success = false, error = %q", res.Error)
	}
	if res.Content == nil || *res.Content != "A detailed profile." {
		t.Fatalf("content = %v", res.Content)
	}
}

func TestAnalyzeConversationRendersTranscript(t *testing.T) {
	var gotBody string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(buf)
		gotBody = string(buf)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	})
	c.AnalyzeConversation(context.Background(), testMessages())
	if !strings.Contains(gotBody, "Alice: hello") || !strings.Contains(gotBody, "Bob: hi") {
		t.Fatalf("request body missing flattened transcript: %s", gotBody)
	}
}

func TestAnalyzeConversationCredentialRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key"}}`))
	})
	res := c.AnalyzeConversation(context.Background(), testMessages())
	if res.Success || res.Content != nil {
		t.Fatalf("expected failure, got %+v", res)
	}
	if res.Error != "AI service rejected the configured credential" {
		t.Fatalf("error = %q", res.Error)
	}
}

func TestAnalyzeConversationRateLimited(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"slow down"}}`))
	})
	res := c.AnalyzeConversation(context.Background(), testMessages())
	if res.Success {
		t.Fatalf("expected failure")
	}
	if res.Error != "AI service rate limit exceeded, try again later" {
		t.Fatalf("error = %q", res.Error)
	}
}

func TestAnalyzeConversationMalformedResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})
	res := c.AnalyzeConversation(context.Background(), testMessages())
	if res.Success {
		t.Fatalf("expected failure")
	}
	if res.Error != "Invalid response format from AI service" {
		t.Fatalf("error = %q", res.Error)
	}
}

func TestAnalyzeConversationTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // connection refused from here on

	c, err := New(Config{APIKey: "test-key", BaseURL: url, Model: "test-model", Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res := c.AnalyzeConversation(context.Background(), testMessages())
	if res.Success {
		t.Fatalf("expected failure")
	}
	if res.Error != "could not reach the AI service" {
		t.Fatalf("error = %q", res.Error)
	}
}
