package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matzehuels/cargolicense/pkg/httputil"
	"github.com/matzehuels/cargolicense/pkg/observability"
)

type response struct {
	Message string `json:"message"`
}

func TestNewClient(t *testing.T) {
	c, _ := httputil.NewCache(t.TempDir(), time.Hour)
	client := NewClient(c, map[string]string{"User-Agent": "test"})

	if client.http == nil {
		t.Error("NewClient() http client is nil")
	}
	if client.cache != c {
		t.Error("NewClient() cache not set correctly")
	}
	if client.headers["User-Agent"] != "test" {
		t.Error("NewClient() headers not set correctly")
	}
}

func TestClientGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if got := r.Header.Get("User-Agent"); got != "test-agent" {
			t.Errorf("User-Agent = %q", got)
		}
		json.NewEncoder(w).Encode(response{Message: "hello"})
	}))
	defer server.Close()

	client := NewClient(nil, map[string]string{"User-Agent": "test-agent"})
	var got response
	if err := client.Get(context.Background(), server.URL, &got); err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Message != "hello" {
		t.Errorf("Message = %q, want hello", got.Message)
	}
}

func TestClientGetStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantErr   error
		retryable bool
	}{
		{"not found", http.StatusNotFound, ErrNotFound, false},
		{"server error", http.StatusBadGateway, ErrNetwork, true},
		{"rate limited", http.StatusTooManyRequests, ErrNetwork, true},
		{"forbidden", http.StatusForbidden, ErrNetwork, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			var got response
			err := NewClient(nil, nil).Get(context.Background(), server.URL, &got)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if httputil.IsRetryable(err) != tt.retryable {
				t.Errorf("retryable = %v, want %v", httputil.IsRetryable(err), tt.retryable)
			}
		})
	}
}

func TestClientCached(t *testing.T) {
	c, _ := httputil.NewCache(t.TempDir(), time.Hour)
	client := NewClient(c, nil)
	ctx := context.Background()

	var calls atomic.Int32
	fetch := func(v *response) func() error {
		return func() error {
			calls.Add(1)
			v.Message = "fresh"
			return nil
		}
	}

	var first response
	if err := client.Cached(ctx, "key", false, &first, fetch(&first)); err != nil {
		t.Fatalf("Cached() failed: %v", err)
	}
	var second response
	if err := client.Cached(ctx, "key", false, &second, fetch(&second)); err != nil {
		t.Fatalf("Cached() failed: %v", err)
	}
	if second.Message != "fresh" {
		t.Errorf("cached Message = %q", second.Message)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("fetch calls = %d, want 1", got)
	}

	var third response
	if err := client.Cached(ctx, "key", true, &third, fetch(&third)); err != nil {
		t.Fatalf("Cached() failed: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("fetch calls after refresh = %d, want 2", got)
	}
}

func TestClientCached_Error(t *testing.T) {
	client := NewClient(nil, nil)
	var v response
	err := client.Cached(context.Background(), "key", false, &v, func() error { return ErrNotFound })
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

type recordingHooks struct {
	observability.NoopHTTPHooks
	observability.NoopCacheHooks
	statuses []int
	hits     int
	misses   int
}

func (h *recordingHooks) OnResponse(_ context.Context, _, _, _ string, status int, _ time.Duration) {
	h.statuses = append(h.statuses, status)
}

func (h *recordingHooks) OnCacheHit(context.Context, string)  { h.hits++ }
func (h *recordingHooks) OnCacheMiss(context.Context, string) { h.misses++ }

func TestClientHooks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(response{Message: "hooked"})
	}))
	defer server.Close()

	hooks := &recordingHooks{}
	observability.SetHTTPHooks(hooks)
	observability.SetCacheHooks(hooks)
	t.Cleanup(observability.Reset)

	cache, err := httputil.NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	client := NewClient(cache, nil)
	ctx := context.Background()

	for range 2 {
		var got response
		err := client.Cached(ctx, "k", false, &got, func() error {
			return client.Get(ctx, server.URL, &got)
		})
		if err != nil {
			t.Fatalf("Cached() failed: %v", err)
		}
	}

	if len(hooks.statuses) != 1 || hooks.statuses[0] != http.StatusOK {
		t.Errorf("responses = %v, want [200]", hooks.statuses)
	}
	if hooks.misses != 1 || hooks.hits != 1 {
		t.Errorf("misses = %d, hits = %d, want 1 and 1", hooks.misses, hooks.hits)
	}
}
