package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced consumers
}

// Operation phase enumeration
type Phase int

const (
	LoadRegistry Phase = iota
	RefreshRegistry
	RankPlaylists
	FetchItems
	WarmPlaylists
)

func (p Phase) String() string {
	switch p {
	case LoadRegistry:
		return "load_registry"
	case RefreshRegistry:
		return "refresh_registry"
	case RankPlaylists:
		return "rank_playlists"
	case FetchItems:
		return "fetch_items"
	case WarmPlaylists:
		return "warm_playlists"
	default:
		return ""
	}
}

func loadRegistryUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   LoadRegistry,
		Step:    1,
		Total:   1,
		Message: "Loading playlist registry...",
	}
}

func refreshRegistryUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   RefreshRegistry,
		Step:    1,
		Total:   1,
		Message: "Refreshing playlist registry from backend...",
	}
}

func rankPlaylistsUpdate(registrySize int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   RankPlaylists,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Ranking %d playlists...", registrySize),
		Data:    registrySize,
	}
}

func fetchItemsUpdate(step, total int, playlistID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchItems,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Fetching content for playlist %s...", playlistID),
		Data:    playlistID,
	}
}

func warmPlaylistsUpdate(step, total int, playlistID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WarmPlaylists,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Prefetching playlist %s...", playlistID),
		Data:    playlistID,
	}
}
