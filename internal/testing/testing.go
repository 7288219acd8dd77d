// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/predica/internal/models"
)

// StaticRegistry is a test double for the search engine's registry source.
// Get and Refresh both return the fixed record set.
type StaticRegistry struct {
	Records []models.PlaylistRecord
	Err     error
}

func (s *StaticRegistry) Get(ctx context.Context) ([]models.PlaylistRecord, error) {
	return s.Records, s.Err
}

func (s *StaticRegistry) Refresh(ctx context.Context) ([]models.PlaylistRecord, error) {
	return s.Records, s.Err
}

// SampleRecord builds a minimal valid playlist record for tests.
func SampleRecord(id, title string, kind models.Kind) models.PlaylistRecord {
	return models.PlaylistRecord{
		ID:                id,
		Title:             title,
		Kind:              kind,
		ContentType:       models.ContentSermon,
		YouTubePlaylistID: "PL" + id,
	}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
