// HTTP client for the church app backend API (registry + content endpoints).
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/predica/internal/models"
	"github.com/desertthunder/predica/internal/shared"
)

const defaultBaseURL string = "http://localhost:8080"

// Client implements [RegistryAPI] and [ContentAPI] against the backend REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a backend API client.
// The base URL defaults to the local development proxy; the HTTP client defaults
// to [http.DefaultClient]; a nil logger gets the shared default.
func NewClient(baseURL string, httpClient *http.Client, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *Client) doRequest(ctx context.Context, endpoint string, result any) error {
	apiURL := c.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, endpoint)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Detail != "" {
			return fmt.Errorf("%w: status %d: %s", shared.ErrAPIRequest, resp.StatusCode, errResp.Detail)
		}
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// FetchRegistry retrieves the playlist registry from GET /api/registry.
//
// Records failing validation are dropped with a warning rather than failing the fetch,
// so a single malformed entry cannot take down search.
func (c *Client) FetchRegistry(ctx context.Context) ([]models.PlaylistRecord, error) {
	var payload struct {
		Items []models.PlaylistRecord `json:"items"`
	}

	if err := c.doRequest(ctx, "/api/registry", &payload); err != nil {
		return nil, err
	}

	records := make([]models.PlaylistRecord, 0, len(payload.Items))
	for _, record := range payload.Items {
		if err := record.Validate(); err != nil {
			c.logger.Warn("excluding malformed registry record", "id", record.ID, "error", err)
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// GetPlaylistItems retrieves the items of one playlist from GET /api/playlists/{id}/items.
func (c *Client) GetPlaylistItems(ctx context.Context, playlistID string) ([]models.ContentItem, error) {
	if playlistID == "" {
		return nil, fmt.Errorf("%w: playlist ID is required", shared.ErrInvalidArgument)
	}

	var payload struct {
		Items []models.ContentItem `json:"items"`
	}

	endpoint := fmt.Sprintf("/api/playlists/%s/items", url.PathEscape(playlistID))
	if err := c.doRequest(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	return payload.Items, nil
}
