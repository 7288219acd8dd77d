package models

import (
	"errors"
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func TestPlaylistRecordValidate(t *testing.T) {
	valid := PlaylistRecord{
		ID:                "sermons-2025",
		YouTubePlaylistID: "PLabc",
		Title:             "Sermons 2025",
		Kind:              KindYearBucket,
		ContentType:       ContentSermon,
		Year:              intPtr(2025),
	}

	tests := []struct {
		name    string
		mutate  func(*PlaylistRecord)
		wantErr error
	}{
		{"valid record", func(p *PlaylistRecord) {}, nil},
		{"missing id", func(p *PlaylistRecord) { p.ID = "" }, ErrMissingID},
		{"unknown kind", func(p *PlaylistRecord) { p.Kind = "album" }, ErrInvalidKind},
		{"empty kind", func(p *PlaylistRecord) { p.Kind = "" }, ErrInvalidKind},
		{"unknown content type", func(p *PlaylistRecord) { p.ContentType = "livestream" }, ErrInvalidContentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := valid
			tt.mutate(&record)
			err := record.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestYearValue(t *testing.T) {
	if _, ok := (PlaylistRecord{}).YearValue(); ok {
		t.Error("expected no year for zero record")
	}

	year, ok := (PlaylistRecord{Year: intPtr(2024)}).YearValue()
	if !ok || year != 2024 {
		t.Errorf("YearValue() = %d, %v, want 2024, true", year, ok)
	}
}

func TestSearchResult(t *testing.T) {
	t.Run("PlaylistIDs preserves rank order", func(t *testing.T) {
		result := SearchResult{Playlists: []PlaylistRecord{
			{ID: "a", YouTubePlaylistID: "PLa"},
			{ID: "b", YouTubePlaylistID: "PLb"},
		}}

		ids := result.PlaylistIDs()
		if len(ids) != 2 || ids[0] != "PLa" || ids[1] != "PLb" {
			t.Errorf("PlaylistIDs() = %v", ids)
		}
	})

	t.Run("HasMatches", func(t *testing.T) {
		if (SearchResult{}).HasMatches() {
			t.Error("empty result should have no matches")
		}
		if !(SearchResult{Playlists: []PlaylistRecord{{ID: "a"}}}).HasMatches() {
			t.Error("non-empty result should have matches")
		}
	})
}

func TestRegistryCacheIsValid(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		cache RegistryCache
		want  bool
	}{
		{
			"fresh snapshot",
			RegistryCache{CachedAt: now.Add(-time.Hour), SchemaVersion: CacheSchemaVersion},
			true,
		},
		{
			"just inside the TTL",
			RegistryCache{CachedAt: now.Add(-CacheTTL + time.Second), SchemaVersion: CacheSchemaVersion},
			true,
		},
		{
			"exactly at the TTL",
			RegistryCache{CachedAt: now.Add(-CacheTTL), SchemaVersion: CacheSchemaVersion},
			false,
		},
		{
			"expired snapshot",
			RegistryCache{CachedAt: now.Add(-8 * 24 * time.Hour), SchemaVersion: CacheSchemaVersion},
			false,
		},
		{
			"older schema version",
			RegistryCache{CachedAt: now.Add(-time.Hour), SchemaVersion: CacheSchemaVersion - 1},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cache.IsValid(now); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}
