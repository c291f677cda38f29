package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Test Feed</title>
<item>
  <title>BREAKING: FOMC cuts rates</title>
  <link>https://example.com/1</link>
  <pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
  <description>&lt;p&gt;The Fed moved &lt;a href="https://example.com"&gt;fast&lt;/a&gt; today.&lt;/p&gt;</description>
</item>
<item>
  <title>Second story</title>
  <link>https://example.com/2</link>
</item>
<item>
  <title>Third story</title>
  <link>https://example.com/3</link>
</item>
</channel>
</rss>`

func TestFetchParsesEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "marketpulse") {
			t.Errorf("missing user agent, got %q", ua)
		}
		fmt.Fprint(w, sampleRSS)
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, 15)
	entries, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	first := entries[0]
	if first.Title != "BREAKING: FOMC cuts rates" {
		t.Errorf("title = %q", first.Title)
	}
	if first.Link != "https://example.com/1" {
		t.Errorf("link = %q", first.Link)
	}
	if first.Published != "Mon, 02 Jan 2006 15:04:05 GMT" {
		t.Errorf("published = %q", first.Published)
	}
	if first.Summary != "The Fed moved fast today." {
		t.Errorf("summary should be HTML-stripped, got %q", first.Summary)
	}
	if entries[1].Published != "" {
		t.Errorf("entry without pubDate should have empty published, got %q", entries[1].Published)
	}
}

func TestFetchCapsEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sampleRSS)
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, 2)
	entries, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want cap of 2", len(entries))
	}
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, 15)
	if _, err := f.Fetch(context.Background(), srv.URL); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestFetchMalformedFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "this is not a feed")
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, 15)
	if _, err := f.Fetch(context.Background(), srv.URL); err == nil {
		t.Error("expected error for unparseable feed")
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<p>Hello <b>world</b></p>", "Hello world"},
		{"plain text", "plain text"},
		{"a &amp; b", "a & b"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := stripTags(tt.in); got != tt.want {
			t.Errorf("stripTags(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Errorf("short string should be unchanged, got %q", got)
	}
	long := strings.Repeat("x", 300)
	got := truncate(long, 280)
	if len(got) != 280 {
		t.Errorf("truncated length = %d, want 280", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("truncated string should end with ellipsis")
	}
}

func TestTruncateMultiByte(t *testing.T) {
	// Truncation counts runes, not bytes: cutting a multi-byte title
	// mid-character would leave invalid UTF-8 in the output.
	long := strings.Repeat("é", 300)
	got := truncate(long, 280)
	if !utf8.ValidString(got) {
		t.Errorf("truncated string is not valid UTF-8: %q", got[len(got)-8:])
	}
	if n := utf8.RuneCountInString(got); n != 280 {
		t.Errorf("truncated rune count = %d, want 280", n)
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("truncated string should end with ellipsis")
	}
	if got := truncate("日本経済新聞", 6); got != "日本経済新聞" {
		t.Errorf("string at the rune cap should be unchanged, got %q", got)
	}
}
