package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/desertthunder/predica/internal/models"
	"github.com/desertthunder/predica/internal/shared"
)

// registrySlot is the single named slot the registry snapshot lives under.
const registrySlot = "registry"

// CacheRepository persists the registry snapshot in a single keyed slot.
//
// The envelope's cached_at and schema_version columns are stored alongside the
// serialized items so validity can be judged without decoding the payload.
type CacheRepository struct {
	db *sql.DB
}

// NewCacheRepository creates a new CacheRepository with the given database connection
func NewCacheRepository(db *sql.DB) *CacheRepository {
	return &CacheRepository{db: db}
}

// Save replaces the stored snapshot with the given envelope.
func (r *CacheRepository) Save(cache models.RegistryCache) error {
	payload, err := json.Marshal(cache.Items)
	if err != nil {
		return fmt.Errorf("failed to serialize registry items: %w", err)
	}

	query := `
		INSERT INTO registry_cache (slot, payload, cached_at, schema_version)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			payload = excluded.payload,
			cached_at = excluded.cached_at,
			schema_version = excluded.schema_version
	`

	if _, err := r.db.Exec(query, registrySlot, payload, cache.CachedAt, cache.SchemaVersion); err != nil {
		return fmt.Errorf("failed to store registry snapshot: %w", err)
	}

	return nil
}

// Load returns the stored snapshot envelope regardless of validity.
// Returns [shared.ErrCacheMiss] when no snapshot has ever been saved.
func (r *CacheRepository) Load() (models.RegistryCache, error) {
	query := `
		SELECT payload, cached_at, schema_version
		FROM registry_cache
		WHERE slot = ?
	`

	var payload []byte
	var cachedAt time.Time
	var schemaVersion int

	err := r.db.QueryRow(query, registrySlot).Scan(&payload, &cachedAt, &schemaVersion)
	if err == sql.ErrNoRows {
		return models.RegistryCache{}, shared.ErrCacheMiss
	}
	if err != nil {
		return models.RegistryCache{}, fmt.Errorf("failed to load registry snapshot: %w", err)
	}

	var items []models.PlaylistRecord
	if err := json.Unmarshal(payload, &items); err != nil {
		return models.RegistryCache{}, fmt.Errorf("failed to decode registry snapshot: %w", err)
	}

	return models.RegistryCache{
		Items:         items,
		CachedAt:      cachedAt,
		SchemaVersion: schemaVersion,
	}, nil
}

// Clear removes the stored snapshot. Clearing an empty slot is not an error.
func (r *CacheRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM registry_cache WHERE slot = ?", registrySlot); err != nil {
		return fmt.Errorf("failed to clear registry snapshot: %w", err)
	}
	return nil
}
