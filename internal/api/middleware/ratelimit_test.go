package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	limiter := NewRateLimiter(1, 3)
	handler := limiter.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/shoes", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i, rec.Code, http.StatusOK)
		}
	}
}

func TestRateLimiterRejectsBeyondBurst(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	handler := limiter.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/shoes", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	req = httptest.NewRequest("GET", "/shoes", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
}

func TestRateLimiterKeysAuthenticatedUsersSeparately(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	handler := limiter.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// two users behind the same address must not share a bucket
	reqA := httptest.NewRequest("GET", "/cart", nil)
	reqA.RemoteAddr = "10.0.0.1:1234"
	reqA = reqA.WithContext(WithUserID(reqA.Context(), 1))
	handler.ServeHTTP(httptest.NewRecorder(), reqA)

	reqB := httptest.NewRequest("GET", "/cart", nil)
	reqB.RemoteAddr = "10.0.0.1:1234"
	reqB = reqB.WithContext(WithUserID(reqB.Context(), 2))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, reqB)

	if rec.Code != http.StatusOK {
		t.Fatalf("second user throttled: status = %d, want %d", rec.Code, http.StatusOK)
	}

	reqA2 := httptest.NewRequest("GET", "/cart", nil)
	reqA2.RemoteAddr = "10.0.0.1:1234"
	reqA2 = reqA2.WithContext(WithUserID(reqA2.Context(), 1))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, reqA2)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("repeat user not throttled: status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
}

func TestRateLimiterKeysCallersSeparately(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	handler := limiter.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/shoes", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest("GET", "/shoes", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("second caller throttled: status = %d, want %d", rec.Code, http.StatusOK)
	}
}
