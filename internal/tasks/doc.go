// Package tasks orchestrates registry search operations end to end.
//
// The core abstraction is [SearchEngine], which resolves a query against the registry,
// ranks the results, and issues the follow-up content fetches for the ranked playlists.
// Operations emit progress updates via channels for non-blocking status reporting to the
// CLI layer.
//
// [Session] layers latest-query-wins ordering on top of the engine for interactive
// callers: when queries overlap in flight, only the most recently issued query's result
// is delivered, even if an older query's content fetch resolves later. The ranking
// itself is synchronous and pure; only the downstream fetches race.
//
// [SearchEngine.Warm] prefetches content listings for the whole registry with a bounded
// worker pool and a rate limiter, respecting backend API limits.
package tasks
