package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestGetAssets_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/user-1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user_id": "user-1",
			"assets": []map[string]any{
				{"id": "a1", "type": "stock", "symbol": "INFY", "current_price": 1520.5, "details": map[string]any{"exchange": "NSE"}},
				{"id": "a2", "type": "crypto", "symbol": "BTC", "current_price": 61000},
			},
		})
	}))
	defer server.Close()

	c := NewPortfolioClient(server.URL+"/", server.Client())
	assets, err := c.GetAssets(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(assets))
	}
	if assets[0].ID != "a1" || assets[0].CurrentPrice != 1520.5 {
		t.Errorf("first asset mismatch: %+v", assets[0])
	}
	if assets[1].ID != "a2" || assets[1].CurrentPrice != 61000 {
		t.Errorf("second asset mismatch: %+v", assets[1])
	}
}

func TestGetAssets_EscapesUserID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawPath != "/a%2Fb" && r.URL.EscapedPath() != "/a%2Fb" {
			t.Errorf("user id should be escaped, got %s", r.URL.EscapedPath())
		}
		_, _ = w.Write([]byte(`{"assets":[]}`))
	}))
	defer server.Close()

	c := NewPortfolioClient(server.URL, server.Client())
	if _, err := c.GetAssets(context.Background(), "a/b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetAssets_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewPortfolioClient(server.URL, server.Client())
	_, err := c.GetAssets(context.Background(), "user-1")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if want := "unexpected status 404"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q should contain %q", err.Error(), want)
	}
}

func TestGetAssets_AcceptsAny2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNonAuthoritativeInfo)
		_, _ = w.Write([]byte(`{"assets":[{"id":"a1","current_price":10}]}`))
	}))
	defer server.Close()

	c := NewPortfolioClient(server.URL, server.Client())
	assets, err := c.GetAssets(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assets) != 1 || assets[0].CurrentPrice != 10 {
		t.Errorf("unexpected assets: %+v", assets)
	}
}

func TestGetAssets_DoesNotFollowRedirect(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/user-1" {
			http.Redirect(w, r, "/moved", http.StatusFound)
			return
		}
		_, _ = w.Write([]byte(`{"assets":[]}`))
	}))
	defer server.Close()

	c := NewPortfolioClient(server.URL, server.Client())
	_, err := c.GetAssets(context.Background(), "user-1")
	if err == nil || !strings.Contains(err.Error(), "unexpected status 302") {
		t.Fatalf("expected status 302 error, got %v", err)
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("expected a single request, got %d", n)
	}
}

func TestGetAssets_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"assets": [`))
	}))
	defer server.Close()

	c := NewPortfolioClient(server.URL, server.Client())
	if _, err := c.GetAssets(context.Background(), "user-1"); err == nil || !strings.Contains(err.Error(), "decoding") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestGetAssets_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	c := NewPortfolioClient(server.URL, &http.Client{Timeout: 50 * time.Millisecond})
	if _, err := c.GetAssets(context.Background(), "user-1"); err == nil {
		t.Fatal("expected timeout error, got nil")
	}
}

func TestGetAssets_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	c := NewPortfolioClient(addr, &http.Client{Timeout: time.Second})
	if _, err := c.GetAssets(context.Background(), "user-1"); err == nil {
		t.Fatal("expected connection error, got nil")
	}
}
