// Package registry supplies playlist registry snapshots to the search engine with
// cache-or-fetch-or-fallback semantics.
//
// [Provider.Get] resolution order:
//
//  1. in-memory snapshot, if still valid (TTL + schema version)
//  2. persisted snapshot from the [Store], if still valid
//  3. network fetch through [services.RegistryAPI], persisted on success
//  4. a stale persisted snapshot, preferred over failing outright
//  5. the bundled registry embedded in the binary
//
// Concurrent callers racing on a fetch share a single in-flight request via
// singleflight, so a burst of searches on a cold cache issues exactly one network
// call. Snapshots are immutable once loaded; a refresh replaces the snapshot whole.
package registry
