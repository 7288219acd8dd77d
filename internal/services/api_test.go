package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/desertthunder/predica/internal/models"
	"github.com/desertthunder/predica/internal/shared"
)

func TestFetchRegistry(t *testing.T) {
	t.Run("decodes well formed records", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/registry" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, `{
				"items": [
					{
						"id": "yc-2025",
						"youtube_playlist_id": "PLyc2025",
						"title": "Youth Conference 2025",
						"kind": "event",
						"content_type": "sermon",
						"series_id": "youth-conference",
						"year": 2025,
						"slug": "youth-conference-2025",
						"short_code": "yc"
					},
					{
						"id": "worship",
						"youtube_playlist_id": "PLworship",
						"title": "Worship Sets",
						"kind": "category",
						"content_type": "music",
						"tags": ["music", "worship"]
					}
				]
			}`)
		}))
		defer server.Close()

		client := NewClient(server.URL, nil, shared.NewLogger(io.Discard))

		records, err := client.FetchRegistry(context.Background())
		if err != nil {
			t.Fatalf("FetchRegistry failed: %v", err)
		}

		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		if records[0].ID != "yc-2025" {
			t.Errorf("record 0 ID = %s", records[0].ID)
		}
		if records[0].Year == nil || *records[0].Year != 2025 {
			t.Errorf("record 0 year not decoded: %v", records[0].Year)
		}
		if records[0].ShortCode != "yc" {
			t.Errorf("short_code not decoded: %q", records[0].ShortCode)
		}
		if records[1].Kind != models.KindCategory {
			t.Errorf("record 1 kind = %s", records[1].Kind)
		}
	})

	t.Run("excludes malformed records", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{
				"items": [
					{"id": "", "title": "No ID", "kind": "event", "content_type": "sermon"},
					{"id": "bad-kind", "title": "Bad Kind", "kind": "mixtape", "content_type": "sermon"},
					{"id": "ok", "title": "Fine", "kind": "series", "content_type": "podcast"}
				]
			}`)
		}))
		defer server.Close()

		client := NewClient(server.URL, nil, shared.NewLogger(io.Discard))

		records, err := client.FetchRegistry(context.Background())
		if err != nil {
			t.Fatalf("FetchRegistry failed: %v", err)
		}
		if len(records) != 1 || records[0].ID != "ok" {
			t.Errorf("expected only the valid record, got %v", records)
		}
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			io.WriteString(w, `{"detail": "database offline"}`)
		}))
		defer server.Close()

		client := NewClient(server.URL, nil, shared.NewLogger(io.Discard))

		_, err := client.FetchRegistry(context.Background())
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})

	t.Run("unreachable server", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", nil, shared.NewLogger(io.Discard))

		_, err := client.FetchRegistry(context.Background())
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})
}

func TestGetPlaylistItems(t *testing.T) {
	t.Run("decodes items", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/playlists/PLyc2025/items" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			io.WriteString(w, `{
				"items": [
					{"video_id": "v1", "title": "Session 1", "duration_seconds": 3600},
					{"video_id": "v2", "title": "Session 2", "duration_seconds": 2700}
				]
			}`)
		}))
		defer server.Close()

		client := NewClient(server.URL, nil, shared.NewLogger(io.Discard))

		items, err := client.GetPlaylistItems(context.Background(), "PLyc2025")
		if err != nil {
			t.Fatalf("GetPlaylistItems failed: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if items[0].VideoID != "v1" || items[0].DurationSec != 3600 {
			t.Errorf("item 0 not decoded: %+v", items[0])
		}
	})

	t.Run("unknown playlist", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(server.URL, nil, shared.NewLogger(io.Discard))

		_, err := client.GetPlaylistItems(context.Background(), "nope")
		if !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})

	t.Run("empty playlist ID", func(t *testing.T) {
		client := NewClient("", nil, shared.NewLogger(io.Discard))

		_, err := client.GetPlaylistItems(context.Background(), "")
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}
