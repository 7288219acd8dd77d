// Package services defines the client interfaces for the church app backend API and
// implements them over HTTP.
//
// # Interfaces
//
// Two narrow interfaces keep collaborators mockable:
//   - [RegistryAPI] : fetches the playlist registry (the searchable catalog)
//   - [ContentAPI] : fetches the content items behind a ranked playlist
//
// [Client] implements both against the backend REST endpoints.
//
// # Decoding contract
//
// Registry payloads use snake_case wire names (youtube_playlist_id, content_type,
// series_id, short_code). Records that fail validation (missing id, unknown kind or
// content type) are excluded at decode time with a warning, so the search core only
// ever sees well-formed records. A payload where every record is malformed still
// succeeds with an empty registry; transport and HTTP failures are errors.
//
// # Error Handling
//
// Clients use typed errors from the shared package:
//   - [shared.ErrAPIRequest] : HTTP request failed or returned a non-2xx status
//   - [shared.ErrPlaylistNotFound] : content requested for an unknown playlist ID
package services
