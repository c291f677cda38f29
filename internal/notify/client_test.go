package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientSendSuccess(t *testing.T) {
	var got Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	msg := Message{
		Username: "Market Pulse",
		Embeds:   []Embed{{Title: "🚨 test", Color: colorUrgent}},
	}
	if err := c.Send(context.Background(), msg); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if got.Username != msg.Username || len(got.Embeds) != 1 || got.Embeds[0].Title != "🚨 test" {
		t.Errorf("server received %+v", got)
	}
}

func TestClientSendNon204IsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Even 200 is a failure; Discord signals success with 204 only.
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.Send(context.Background(), Message{}); err == nil {
		t.Error("expected error for non-204 response")
	}
}

func TestClientSendErrorIncludesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Send(context.Background(), Message{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry the status code, got %v", err)
	}
}

func TestClientSendConnectionRefused(t *testing.T) {
	// A closed server: the POST itself fails.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url)
	if err := c.Send(context.Background(), Message{}); err == nil {
		t.Error("expected error when webhook is unreachable")
	}
}
