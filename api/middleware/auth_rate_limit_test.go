package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type countingStore struct {
	counts map[string]int64
}

func newCountingStore() *countingStore {
	return &countingStore{counts: map[string]int64{}}
}

func (s *countingStore) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	s.counts[key]++
	return s.counts[key], nil
}

func postLogin(handler http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthRateLimitBlocksAfterEmailLimit(t *testing.T) {
	store := newCountingStore()
	policy := NewAuthRateLimitPolicy("login", time.Minute, 100, 2)
	handler := AuthRateLimit(policy, store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	body := `{"email":"creator@example.com","password":"x"}`
	for i := 0; i < 2; i++ {
		if rec := postLogin(handler, body); rec.Code != http.StatusOK {
			t.Fatalf("attempt %d expected 200 got %d", i+1, rec.Code)
		}
	}
	if rec := postLogin(handler, body); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after limit got %d", rec.Code)
	}
}

func TestAuthRateLimitBlocksAfterIPLimit(t *testing.T) {
	store := newCountingStore()
	policy := NewAuthRateLimitPolicy("login", time.Minute, 1, 0)
	handler := AuthRateLimit(policy, store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	if rec := postLogin(handler, `{}`); rec.Code != http.StatusOK {
		t.Fatalf("first attempt expected 200 got %d", rec.Code)
	}
	if rec := postLogin(handler, `{}`); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 got %d", rec.Code)
	}
}

func TestAuthRateLimitHashesEmailKeys(t *testing.T) {
	store := newCountingStore()
	policy := NewAuthRateLimitPolicy("login", time.Minute, 0, 5)
	handler := AuthRateLimit(policy, store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	postLogin(handler, `{"email":"Creator@Example.com","password":"x"}`)

	for key := range store.counts {
		if strings.Contains(key, "creator@example.com") {
			t.Fatalf("raw email leaked into redis key %q", key)
		}
		if !strings.HasPrefix(key, "im:rate_limit:login:email:") {
			t.Fatalf("unexpected key format %q", key)
		}
	}
	if len(store.counts) != 1 {
		t.Fatalf("expected a single counter, got %d", len(store.counts))
	}
}

func TestAuthRateLimitDisabledPolicyPassesThrough(t *testing.T) {
	policy := NewAuthRateLimitPolicy("login", 0, 5, 5)
	handler := AuthRateLimit(policy, newCountingStore(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 20; i++ {
		if rec := postLogin(handler, `{}`); rec.Code != http.StatusOK {
			t.Fatalf("expected passthrough got %d", rec.Code)
		}
	}
}
