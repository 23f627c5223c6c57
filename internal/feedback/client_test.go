// ABOUTME: Tests for the feedback client's degraded modes and transport.
// ABOUTME: Uses httptest servers; no real API calls.
package feedback

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGenerateWithoutKeyNeverCallsTransport(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient("")
	c.baseURL = srv.URL

	_, err := c.Generate(context.Background(), map[string]string{"x": "y"}, ToneCoach)
	if err != ErrNotConfigured {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
	if called {
		t.Error("transport was called despite missing key")
	}
}

func TestGenerateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing auth header")
		}
		w.Write([]byte(`{"output_text": "  [Key Summary]\ngood week  "}`))
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.baseURL = srv.URL

	text, err := c.Generate(context.Background(), map[string]string{"x": "y"}, ToneCoach)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if text != "[Key Summary]\ngood week" {
		t.Errorf("text = %q, want trimmed summary", text)
	}
}

func TestGenerateTransportErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient("test-key")
	c.baseURL = srv.URL

	_, err := c.Generate(context.Background(), nil, ToneCoach)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestGenerateNonOKStatusIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad key"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.baseURL = srv.URL

	_, err := c.Generate(context.Background(), nil, ToneCoach)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestGenerateEmptyResponseIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"output_text": "   "}`))
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.baseURL = srv.URL

	_, err := c.Generate(context.Background(), nil, ToneCoach)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestGenerateRespectsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"output_text": "late"}`))
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.baseURL = srv.URL

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.Generate(ctx, nil, ToneCoach)
	if err == nil {
		t.Fatal("expected timeout error")
	}
}
