package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/desertthunder/predica/internal/models"
)

// The bundled registry ships inside the binary as a last-resort fallback so search
// keeps working on first launch and through backend outages.
//
//go:embed data/registry.json
var bundledData []byte

// bundledRegistry decodes the embedded fallback into a snapshot envelope.
// CachedAt stays the zero time: the snapshot always reads as stale, so every
// later Get retries the network instead of pinning the bundled data.
func bundledRegistry() (models.RegistryCache, error) {
	var payload struct {
		Items []models.PlaylistRecord `json:"items"`
	}
	if err := json.Unmarshal(bundledData, &payload); err != nil {
		return models.RegistryCache{}, fmt.Errorf("failed to decode bundled registry: %w", err)
	}

	items := make([]models.PlaylistRecord, 0, len(payload.Items))
	for _, record := range payload.Items {
		if err := record.Validate(); err != nil {
			return models.RegistryCache{}, fmt.Errorf("bundled registry record %q: %w", record.ID, err)
		}
		items = append(items, record)
	}

	return models.RegistryCache{
		Items:         items,
		SchemaVersion: models.CacheSchemaVersion,
	}, nil
}
