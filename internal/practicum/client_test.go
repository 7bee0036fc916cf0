package practicum

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHomeworkStatusesRequestShape(t *testing.T) {
	t.Parallel()
	var gotAuth, gotFrom string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotFrom = r.URL.Query().Get("from_date")
		_, _ = w.Write([]byte(`{"homeworks":[],"current_date":1700000000}`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{Token: "secret", Endpoint: srv.URL, Timeout: 2 * time.Second})
	raw, err := c.HomeworkStatuses(context.Background(), 1690000000)
	if err != nil {
		t.Fatalf("HomeworkStatuses error: %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("expected non-empty body")
	}
	if gotAuth != "OAuth secret" {
		t.Fatalf("Authorization = %q, want %q", gotAuth, "OAuth secret")
	}
	if gotFrom != "1690000000" {
		t.Fatalf("from_date = %q, want %q", gotFrom, "1690000000")
	}
}

func TestHomeworkStatusesNon200(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{Token: "x", Endpoint: srv.URL, Timeout: 2 * time.Second})
	_, err := c.HomeworkStatuses(context.Background(), 0)
	if !errors.Is(err, ErrEndpointUnavailable) {
		t.Fatalf("error = %v, want ErrEndpointUnavailable", err)
	}
}

func TestHomeworkStatusesBadBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"homeworks": [`)) // truncated JSON
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{Token: "x", Endpoint: srv.URL, Timeout: 2 * time.Second})
	_, err := c.HomeworkStatuses(context.Background(), 0)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("error = %v, want ErrDecode", err)
	}
}

func TestHomeworkStatusesUnreachable(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	c := NewClient(ClientConfig{Token: "x", Endpoint: srv.URL, Timeout: 2 * time.Second})
	_, err := c.HomeworkStatuses(context.Background(), 0)
	if !errors.Is(err, ErrEndpointUnreachable) {
		t.Fatalf("error = %v, want ErrEndpointUnreachable", err)
	}
}
