package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/predica/internal/shared"
)

// SearchLogEntry is one recorded search execution.
type SearchLogEntry struct {
	ID            string
	Sequence      int
	Query         string
	ResultCount   int
	TopPlaylistID string
	ExecutedAt    time.Time
}

// SearchLogRepository appends and lists executed searches for the history command.
type SearchLogRepository struct {
	db *sql.DB
}

// NewSearchLogRepository creates a new SearchLogRepository with the given database connection
func NewSearchLogRepository(db *sql.DB) *SearchLogRepository {
	return &SearchLogRepository{db: db}
}

// Record appends a search execution to the log with a generated ID and sequence.
func (r *SearchLogRepository) Record(query string, resultCount int, topPlaylistID string) (*SearchLogEntry, error) {
	sequence, err := NextSequence(r.db, "search_log")
	if err != nil {
		return nil, fmt.Errorf("failed to generate sequence: %w", err)
	}

	entry := &SearchLogEntry{
		ID:            shared.GenerateID(),
		Sequence:      sequence,
		Query:         query,
		ResultCount:   resultCount,
		TopPlaylistID: topPlaylistID,
		ExecutedAt:    time.Now(),
	}

	insert := `
		INSERT INTO search_log (id, sequence, query, result_count, top_playlist_id, executed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(insert,
		entry.ID,
		entry.Sequence,
		entry.Query,
		entry.ResultCount,
		entry.TopPlaylistID,
		entry.ExecutedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert search log entry: %w", err)
	}

	return entry, nil
}

// Recent returns the most recent entries, newest first, capped at limit.
func (r *SearchLogRepository) Recent(limit int) ([]SearchLogEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, sequence, query, result_count, top_playlist_id, executed_at
		FROM search_log
		ORDER BY sequence DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query search log: %w", err)
	}
	defer rows.Close()

	var entries []SearchLogEntry
	for rows.Next() {
		var entry SearchLogEntry
		if err := rows.Scan(&entry.ID, &entry.Sequence, &entry.Query, &entry.ResultCount, &entry.TopPlaylistID, &entry.ExecutedAt); err != nil {
			return nil, fmt.Errorf("failed to scan search log entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// SearchLogRecorder adapts [SearchLogRepository] to the search engine's
// history contract, which does not need the stored entry back.
type SearchLogRecorder struct {
	repo *SearchLogRepository
}

// NewSearchLogRecorder creates a recorder over the given database.
func NewSearchLogRecorder(db *sql.DB) *SearchLogRecorder {
	return &SearchLogRecorder{repo: NewSearchLogRepository(db)}
}

// RecordSearch appends one executed search to the log.
func (r *SearchLogRecorder) RecordSearch(query string, resultCount int, topPlaylistID string) error {
	_, err := r.repo.Record(query, resultCount, topPlaylistID)
	return err
}
