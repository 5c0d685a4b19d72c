package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestTimeframeWindow(t *testing.T) {
	cases := []struct {
		timeframe string
		want      time.Duration
	}{
		{"day", 24 * time.Hour},
		{"week", 7 * 24 * time.Hour},
		{"month", 30 * 24 * time.Hour},
	}
	for _, tc := range cases {
		window, err := TimeframeWindow(tc.timeframe)
		if err != nil {
			t.Fatalf("TimeframeWindow(%q): %v", tc.timeframe, err)
		}
		if window != tc.want {
			t.Fatalf("TimeframeWindow(%q) = %v, want %v", tc.timeframe, window, tc.want)
		}
	}
}

func TestTimeframeWindowInvalid(t *testing.T) {
	_, err := TimeframeWindow("year")
	serr, ok := err.(ServiceError)
	if !ok || serr.Status != 400 {
		t.Fatalf("expected 400 ServiceError, got %v", err)
	}
}

func moderationStub(t *testing.T, verdict string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "id": "chatcmpl-test",
  "object": "chat.completion",
  "choices": [
    {"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": ` + verdict + `}}
  ]
}`))
	}))
}

func TestClassifyDecodesVerdict(t *testing.T) {
	stub := moderationStub(t, `"{\"flagged\": true, \"category\": \"spam\", \"confidence\": 0.93, \"reason\": \"link farm\"}"`)
	defer stub.Close()

	m := NewModerator("test-key", stub.URL, "gpt-4o-mini")
	analysis, err := m.Classify(context.Background(), "Buy now", "cheap pills click here")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !analysis.Flagged || analysis.Category != "spam" {
		t.Fatalf("unexpected analysis: %+v", analysis)
	}
	if analysis.Confidence < 0.9 {
		t.Fatalf("unexpected confidence: %v", analysis.Confidence)
	}
}

func TestClassifyDefaultsEmptyCategory(t *testing.T) {
	stub := moderationStub(t, `"{\"flagged\": false, \"confidence\": 0.1, \"reason\": \"fine\"}"`)
	defer stub.Close()

	m := NewModerator("test-key", stub.URL, "gpt-4o-mini")
	analysis, err := m.Classify(context.Background(), "", "a normal paragraph")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if analysis.Flagged || analysis.Category != "none" {
		t.Fatalf("unexpected analysis: %+v", analysis)
	}
}

func TestClassifySurfacesServerError(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "overloaded"}}`, http.StatusServiceUnavailable)
	}))
	defer stub.Close()

	m := NewModerator("test-key", stub.URL, "gpt-4o-mini")
	if _, err := m.Classify(context.Background(), "", "content"); err == nil {
		t.Fatal("expected error from failing moderation service")
	}
}
