package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func okEnvelope(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok", "data": data})
}

func errEnvelope(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"status": "error", "message": message})
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return New(ts.URL, 5*time.Second, NewMemoryTokenStore(), nil), ts
}

func TestTokenAttachment(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		okEnvelope(w, map[string]string{"ok": "yes"})
	}))

	tests := []struct {
		name     string
		token    string
		wantAuth string
	}{
		{name: "token present", token: "abc123", wantAuth: "Bearer abc123"},
		{name: "token absent", token: "", wantAuth: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := client.Tokens.Save(TokenPair{Token: tt.token, RefreshToken: "r"}); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			if _, err := client.Do(context.Background(), http.MethodGet, "/Stations", nil, nil); err != nil {
				t.Fatalf("Do() error = %v", err)
			}
			if gotAuth != tt.wantAuth {
				t.Errorf("Authorization = %q, want %q", gotAuth, tt.wantAuth)
			}
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	var gotID string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		okEnvelope(w, nil)
	}))
	if _, err := client.Do(context.Background(), http.MethodGet, "/Stations", nil, nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if gotID == "" {
		t.Error("X-Request-ID header not set")
	}
}

func TestRefreshAndRetryOn401(t *testing.T) {
	var refreshCalls, retryAuth atomic.Int32
	var lastRetryAuth string
	var mu sync.Mutex

	mux := http.NewServeMux()
	mux.HandleFunc("/Auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["refreshToken"] != "good-refresh" {
			errEnvelope(w, http.StatusUnauthorized, "invalid token")
			return
		}
		okEnvelope(w, map[string]string{"token": "fresh-access"})
	})
	mux.HandleFunc("/Bookings", func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth != "Bearer fresh-access" {
			errEnvelope(w, http.StatusUnauthorized, "invalid token")
			return
		}
		retryAuth.Add(1)
		mu.Lock()
		lastRetryAuth = auth
		mu.Unlock()
		okEnvelope(w, []string{"b1"})
	})

	client, _ := newTestClient(t, mux)
	if err := client.Tokens.Save(TokenPair{Token: "stale-access", RefreshToken: "good-refresh"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	raw, err := client.Do(context.Background(), http.MethodGet, "/Bookings", nil, nil)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	var got []string
	if err := json.Unmarshal(raw, &got); err != nil || len(got) != 1 {
		t.Fatalf("unexpected body %s (err %v)", raw, err)
	}
	if n := refreshCalls.Load(); n != 1 {
		t.Errorf("refresh calls = %d, want 1", n)
	}
	if n := retryAuth.Load(); n != 1 {
		t.Errorf("successful retries = %d, want 1", n)
	}
	mu.Lock()
	if lastRetryAuth != "Bearer fresh-access" {
		t.Errorf("retry Authorization = %q, want new token", lastRetryAuth)
	}
	mu.Unlock()

	pair, _ := client.Tokens.Load()
	if pair.Token != "fresh-access" {
		t.Errorf("persisted token = %q, want fresh-access", pair.Token)
	}
	if pair.RefreshToken != "good-refresh" {
		t.Errorf("refresh token = %q, want kept", pair.RefreshToken)
	}
}

func TestSecond401DoesNotLoop(t *testing.T) {
	var refreshCalls, bookingCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/Auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		okEnvelope(w, map[string]string{"token": "fresh-access"})
	})
	mux.HandleFunc("/Bookings", func(w http.ResponseWriter, r *http.Request) {
		bookingCalls.Add(1)
		errEnvelope(w, http.StatusUnauthorized, "invalid token")
	})

	client, _ := newTestClient(t, mux)
	_ = client.Tokens.Save(TokenPair{Token: "stale", RefreshToken: "r"})

	_, err := client.Do(context.Background(), http.MethodGet, "/Bookings", nil, nil)
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("Do() error = %v, want 401 APIError", err)
	}
	if n := refreshCalls.Load(); n != 1 {
		t.Errorf("refresh calls = %d, want exactly 1", n)
	}
	if n := bookingCalls.Load(); n != 2 {
		t.Errorf("booking calls = %d, want original + one retry", n)
	}
}

func TestRefreshFailureExpiresSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/Auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		errEnvelope(w, http.StatusUnauthorized, "invalid token")
	})
	mux.HandleFunc("/Bookings", func(w http.ResponseWriter, r *http.Request) {
		errEnvelope(w, http.StatusUnauthorized, "invalid token")
	})

	client, _ := newTestClient(t, mux)
	_ = client.Tokens.Save(TokenPair{Token: "stale", RefreshToken: "bad"})

	_, err := client.Do(context.Background(), http.MethodGet, "/Bookings", nil, nil)
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("Do() error = %v, want ErrSessionExpired", err)
	}
	pair, _ := client.Tokens.Load()
	if pair.Token != "" || pair.RefreshToken != "" {
		t.Errorf("tokens not cleared after failed refresh: %+v", pair)
	}
}

func TestNoRefreshTokenExpiresSession(t *testing.T) {
	var refreshCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/Auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		okEnvelope(w, map[string]string{"token": "x"})
	})
	mux.HandleFunc("/Bookings", func(w http.ResponseWriter, r *http.Request) {
		errEnvelope(w, http.StatusUnauthorized, "invalid token")
	})

	client, _ := newTestClient(t, mux)
	_ = client.Tokens.Save(TokenPair{Token: "stale"})

	_, err := client.Do(context.Background(), http.MethodGet, "/Bookings", nil, nil)
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("Do() error = %v, want ErrSessionExpired", err)
	}
	if n := refreshCalls.Load(); n != 0 {
		t.Errorf("refresh endpoint hit %d times without a refresh token", n)
	}
}

func TestAuthEndpoint401DoesNotRefresh(t *testing.T) {
	var refreshCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/Auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		okEnvelope(w, map[string]string{"token": "x"})
	})
	mux.HandleFunc("/Auth/login", func(w http.ResponseWriter, r *http.Request) {
		errEnvelope(w, http.StatusUnauthorized, "invalid credentials")
	})

	client, _ := newTestClient(t, mux)
	_ = client.Tokens.Save(TokenPair{Token: "t", RefreshToken: "r"})

	_, err := client.Do(context.Background(), http.MethodPost, "/Auth/login", nil, map[string]string{"email": "x"})
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("Do() error = %v, want 401 APIError", err)
	}
	if n := refreshCalls.Load(); n != 0 {
		t.Errorf("login 401 triggered %d refresh calls, want 0", n)
	}
}

func TestConcurrent401sShareOneRefresh(t *testing.T) {
	var refreshCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/Auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		time.Sleep(50 * time.Millisecond) // keep the refresh in flight while others pile up
		okEnvelope(w, map[string]string{"token": "fresh-access"})
	})
	mux.HandleFunc("/Bookings", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer fresh-access" {
			okEnvelope(w, []string{})
			return
		}
		errEnvelope(w, http.StatusUnauthorized, "invalid token")
	})

	client, _ := newTestClient(t, mux)
	_ = client.Tokens.Save(TokenPair{Token: "stale", RefreshToken: "good"})

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.Do(context.Background(), http.MethodGet, "/Bookings", nil, nil)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("request %d failed: %v", i, err)
		}
	}
	if got := refreshCalls.Load(); got != 1 {
		t.Errorf("refresh calls = %d, want 1 shared refresh", got)
	}
}

func TestAPIErrorMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		errEnvelope(w, http.StatusConflict, "no charger available for that slot")
	}))
	_, err := client.Do(context.Background(), http.MethodPost, "/Bookings", nil, map[string]string{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Do() error = %v, want APIError", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("StatusCode = %d, want 409", apiErr.StatusCode)
	}
	if apiErr.Message != "no charger available for that slot" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}
