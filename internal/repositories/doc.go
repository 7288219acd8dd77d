// Package repositories implements SQLite persistence for the registry cache and search history.
//
// Key Implementations:
//   - [CacheRepository] : Single-slot storage for the serialized registry snapshot,
//     carrying the cached_at timestamp and schema version the TTL validity rule consumes
//   - [SearchLogRepository] : Append-only log of executed searches backing the history command
//
// The search log uses atomic per-table sequence counters via [NextSequence] for stable,
// human-readable ordering independent of UUIDs and timestamps.
package repositories
