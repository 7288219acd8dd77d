package services

import (
	"context"

	"github.com/desertthunder/predica/internal/models"
)

// RegistryAPI fetches the playlist registry from the backend.
type RegistryAPI interface {
	// FetchRegistry retrieves the full playlist registry.
	// Malformed records are excluded; transport failures return an error.
	FetchRegistry(ctx context.Context) ([]models.PlaylistRecord, error)
}

// ContentAPI fetches the content items behind a playlist.
// This is the follow-up step a caller performs with the ranked
// youtube_playlist_id list after a search.
type ContentAPI interface {
	// GetPlaylistItems retrieves the items of a single playlist by its YouTube playlist ID.
	GetPlaylistItems(ctx context.Context, playlistID string) ([]models.ContentItem, error)
}
