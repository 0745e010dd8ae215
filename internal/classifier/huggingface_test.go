package classifier

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(sentimentURL, emotionURL string) *HFClient {
	return NewHFClient(sentimentURL, emotionURL, "test-token", 2*time.Second, 0, nil)
}

func TestHFClient_ParsesNestedCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("expected bearer token header, got %q", got)
		}
		w.Write([]byte(`[[{"label":"positive","score":0.91},{"label":"neutral","score":0.06},{"label":"negative","score":0.03}]]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)
	candidates, err := client.ClassifySentiment(context.Background(), "great day")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 3 || candidates[0].Label != "positive" {
		t.Fatalf("unexpected candidates: %v", candidates)
	}
}

func TestHFClient_RetriesOnceOnModelLoading(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"Model is currently loading","estimated_time":20}`))
			return
		}
		w.Write([]byte(`[[{"label":"joy","score":0.8}]]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)
	candidates, err := client.ClassifyEmotions(context.Background(), "what a day")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Fatalf("expected exactly 2 calls, got %d", calls)
	}
	if len(candidates) != 1 || candidates[0].Label != "joy" {
		t.Fatalf("unexpected candidates: %v", candidates)
	}
}

func TestHFClient_SecondLoadingResponseIsUnavailable(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)
	_, err := client.ClassifySentiment(context.Background(), "hola")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Fatalf("expected exactly one retry (2 calls), got %d", calls)
	}
}

func TestHFClient_ErrorStatusIsUnavailableWithoutRetry(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)
	_, err := client.ClassifySentiment(context.Background(), "hola")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected single call for non-retryable status, got %d", calls)
	}
}

func TestHFClient_MalformedBodyIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":"shape"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)
	if _, err := client.ClassifySentiment(context.Background(), "hola"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestHFClient_UnreachableHostIsUnavailable(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1", "http://127.0.0.1:1")
	if _, err := client.ClassifyEmotions(context.Background(), "hola"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
