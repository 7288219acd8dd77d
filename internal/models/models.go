package models

import (
	"time"
)

// Kind classifies the organizational role of a playlist within the registry.
type Kind string

const (
	KindYearBucket Kind = "year_bucket"
	KindEvent      Kind = "event"
	KindCategory   Kind = "category"
	KindSeries     Kind = "series"
	KindPodcast    Kind = "podcast"
)

// Valid reports whether k is one of the closed set of playlist kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindYearBucket, KindEvent, KindCategory, KindSeries, KindPodcast:
		return true
	}
	return false
}

// ContentType classifies what a playlist's items contain.
type ContentType string

const (
	ContentSermon       ContentType = "sermon"
	ContentAnnouncement ContentType = "announcement"
	ContentMusic        ContentType = "music"
	ContentSkit         ContentType = "skit"
	ContentPodcast      ContentType = "podcast"
	ContentOther        ContentType = "other"
)

// Valid reports whether c is one of the closed set of content types.
func (c ContentType) Valid() bool {
	switch c {
	case ContentSermon, ContentAnnouncement, ContentMusic, ContentSkit, ContentPodcast, ContentOther:
		return true
	}
	return false
}

// PlaylistRecord is a single entry in the playlist registry.
//
// Records are decoded from the backend API (or the bundled fallback) and are read-only
// for the lifetime of a search session. Identity is defined solely by ID.
type PlaylistRecord struct {
	ID                string      `json:"id"`
	YouTubePlaylistID string      `json:"youtube_playlist_id"`
	Title             string      `json:"title"`
	Kind              Kind        `json:"kind"`
	ContentType       ContentType `json:"content_type"`
	SeriesID          string      `json:"series_id,omitempty"`
	Year              *int        `json:"year,omitempty"`
	Slug              string      `json:"slug,omitempty"`
	Tags              []string    `json:"tags,omitempty"`
	Aliases           []string    `json:"aliases,omitempty"`
	ShortCode         string      `json:"short_code,omitempty"`
}

// Validate checks the fields the search core depends on.
// A record failing validation is excluded by the registry decoder, never handed to search.
func (p PlaylistRecord) Validate() error {
	if p.ID == "" {
		return ErrMissingID
	}
	if !p.Kind.Valid() {
		return ErrInvalidKind
	}
	if !p.ContentType.Valid() {
		return ErrInvalidContentType
	}
	return nil
}

// YearValue returns the record's year and whether one is set.
func (p PlaylistRecord) YearValue() (int, bool) {
	if p.Year == nil {
		return 0, false
	}
	return *p.Year, true
}

// ScoredPlaylist pairs a record with its relevance score during ranking.
// Scores are discarded before results reach the caller.
type ScoredPlaylist struct {
	Playlist PlaylistRecord `json:"playlist"`
	Score    int            `json:"score"`
}

// SearchResult is the ordered outcome of a registry search, most relevant first.
type SearchResult struct {
	Playlists []PlaylistRecord `json:"playlists"`
}

// PlaylistIDs returns the YouTube playlist IDs of the ranked records, in rank order.
// Callers use these to fetch the actual content items from the content store.
func (r SearchResult) PlaylistIDs() []string {
	ids := make([]string, len(r.Playlists))
	for i, p := range r.Playlists {
		ids[i] = p.YouTubePlaylistID
	}
	return ids
}

// HasMatches reports whether the search produced any results.
// The caller uses this to distinguish "zero matches" from "no registry available".
func (r SearchResult) HasMatches() bool {
	return len(r.Playlists) > 0
}

// ContentItem is a single piece of content fetched for a ranked playlist.
type ContentItem struct {
	VideoID     string    `json:"video_id"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at"`
	DurationSec int       `json:"duration_seconds"`
}

// CacheTTL is how long a persisted registry snapshot stays fresh.
const CacheTTL = 7 * 24 * time.Hour

// CacheSchemaVersion is bumped whenever the persisted record layout changes,
// invalidating older snapshots regardless of age.
const CacheSchemaVersion = 1

// RegistryCache is the persisted envelope around a registry snapshot.
type RegistryCache struct {
	Items         []PlaylistRecord `json:"items"`
	CachedAt      time.Time        `json:"cached_at"`
	SchemaVersion int              `json:"schema_version"`
}

// IsValid reports whether the snapshot is usable as-is: within TTL and written
// by the current schema version.
func (c RegistryCache) IsValid(now time.Time) bool {
	return now.Sub(c.CachedAt) < CacheTTL && c.SchemaVersion == CacheSchemaVersion
}
