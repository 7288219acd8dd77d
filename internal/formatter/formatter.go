// package formatter exports search results to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/desertthunder/predica/internal/models"
)

// ExportToCSV converts ranked search results to CSV with columns:
// ID, Title, Kind, ContentType, Year, YouTubePlaylistID, Score
func ExportToCSV(ranked []models.ScoredPlaylist) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Kind", "ContentType", "Year", "YouTubePlaylistID", "Score"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, sp := range ranked {
		year := ""
		if y, ok := sp.Playlist.YearValue(); ok {
			year = strconv.Itoa(y)
		}
		record := []string{
			sp.Playlist.ID,
			sp.Playlist.Title,
			string(sp.Playlist.Kind),
			string(sp.Playlist.ContentType),
			year,
			sp.Playlist.YouTubePlaylistID,
			strconv.Itoa(sp.Score),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts ranked search results to a Markdown report.
func ExportToMarkdown(query string, ranked []models.ScoredPlaylist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# Search results for %q\n\n", query))
	buf.WriteString(fmt.Sprintf("**Matches**: %d\n\n", len(ranked)))

	if len(ranked) == 0 {
		buf.WriteString("No playlists matched this query.\n")
		return buf.Bytes(), nil
	}

	buf.WriteString("| # | Playlist | Kind | Year | Score |\n")
	buf.WriteString("|---|----------|------|------|-------|\n")
	for i, sp := range ranked {
		year := "-"
		if y, ok := sp.Playlist.YearValue(); ok {
			year = strconv.Itoa(y)
		}
		buf.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %d |\n",
			i+1, sp.Playlist.Title, sp.Playlist.Kind, year, sp.Score))
	}

	return buf.Bytes(), nil
}

// ExportToText converts ranked search results to plain text.
func ExportToText(query string, ranked []models.ScoredPlaylist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Query: %s\n", query))
	buf.WriteString(fmt.Sprintf("Matches: %d\n\n", len(ranked)))

	for i, sp := range ranked {
		line := fmt.Sprintf("%d. %s", i+1, sp.Playlist.Title)
		if y, ok := sp.Playlist.YearValue(); ok {
			line += fmt.Sprintf(" (%d)", y)
		}
		line += fmt.Sprintf(" [%s]\n", sp.Playlist.YouTubePlaylistID)
		buf.WriteString(line)
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts ranked search results to indented JSON, scores included.
func ExportToJSON(ranked []models.ScoredPlaylist) ([]byte, error) {
	data, err := json.MarshalIndent(ranked, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal results: %w", err)
	}
	return data, nil
}

// WriteExport renders ranked results in the given format and writes them to path.
// Supported formats: csv, markdown, txt, json.
func WriteExport(query string, ranked []models.ScoredPlaylist, format, path string) (string, error) {
	var data []byte
	var err error
	var ext string

	switch format {
	case "csv":
		data, err = ExportToCSV(ranked)
		ext = ".csv"
	case "markdown", "md":
		data, err = ExportToMarkdown(query, ranked)
		ext = ".md"
	case "txt", "text":
		data, err = ExportToText(query, ranked)
		ext = ".txt"
	case "json":
		data, err = ExportToJSON(ranked)
		ext = ".json"
	default:
		return "", fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		return "", err
	}

	if path == "" {
		path = "search_results" + ext
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}
