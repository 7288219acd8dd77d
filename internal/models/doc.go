// Package models defines the domain entities shared by the predica registry and search packages.
//
// The package contains two categories of types:
//
// 1. Registry records: immutable content units decoded from the backend API or the bundled fallback
//   - [PlaylistRecord] : A named bucket of content (a conference year, a sermon series, a podcast)
//   - [Kind] / [ContentType] : Closed enumerations classifying a record's organizational role
//   - [ContentItem] : A single video/audio item fetched for a ranked playlist
//
// 2. Derived, ephemeral values produced by search
//   - [ScoredPlaylist] : A record paired with its integer relevance score
//   - [SearchResult] : The ranked record list returned to callers
//   - [RegistryCache] : The persisted cache envelope with TTL and schema-version validity
//
// PlaylistRecord identity is defined solely by ID: two records with the same ID are the same
// record regardless of any other field. A registry snapshot is replaced whole; records are
// never mutated in place.
package models
