package loader

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const sampleCatalogue = `[
	{"id": "x1", "title": "s1mple clutch vs Navi", "team": "NaVi", "map": "mirage", "player": "s1mple", "channel": "lim", "published": "2026-01-10"},
	{"id": "x2", "title": null, "map": "inferno"},
	{"id": 3, "title": "ZywOo POV"}
]`

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videos.json")
	if err := os.WriteFile(path, []byte(sampleCatalogue), 0644); err != nil {
		t.Fatal(err)
	}

	videos, err := FromFile(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if len(videos) != 3 {
		t.Fatalf("expected 3 videos, got %d", len(videos))
	}
	if videos[0].TokenLower != "s1mple" || videos[0].TokenDisplay != "s1mple" {
		t.Errorf("expected derived token for the first record, got %q/%q", videos[0].TokenLower, videos[0].TokenDisplay)
	}
	if videos[1].Title != "" || videos[1].Team != "" {
		t.Errorf("expected missing fields to normalize to empty strings, got %+v", videos[1])
	}
	if videos[2].Id != "" {
		t.Errorf("expected non-string id to normalize to empty, got %q", videos[2].Id)
	}
	if videos[2].TokenDisplay != "ZywOo" {
		t.Errorf("expected token ZywOo, got %q", videos[2].TokenDisplay)
	}
}

func TestFromFileMissing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Errorf("expected an error for a missing catalogue file")
	}
}

func TestFromURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleCatalogue))
	}))
	defer ts.Close()

	videos, err := FromURL(t.Context(), ts.URL)
	if err != nil {
		t.Fatalf("unexpected fetch error: %v", err)
	}
	if len(videos) != 3 {
		t.Errorf("expected 3 videos, got %d", len(videos))
	}
}

func TestFromURLBadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	if _, err := FromURL(t.Context(), ts.URL); err == nil {
		t.Errorf("expected an error for a failing source")
	}
}
