package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DigestTracker remembers which videos have already been included in a digest
// email so repeated scheduled runs over the same search window do not resend
// the same content. Entries expire after maxAge.
type DigestTracker struct {
	filePath string
	digested map[string]time.Time
	mu       sync.RWMutex
	maxAge   time.Duration
}

func NewDigestTracker(dataDir string, maxAge time.Duration) (*DigestTracker, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	tracker := &DigestTracker{
		filePath: filepath.Join(dataDir, "digested_videos.json"),
		digested: make(map[string]time.Time),
		maxAge:   maxAge,
	}

	if err := tracker.load(); err != nil {
		return nil, fmt.Errorf("failed to load digest tracker data: %w", err)
	}
	tracker.prune()

	return tracker, nil
}

// IsDigested reports whether a video was included in a digest within maxAge.
func (dt *DigestTracker) IsDigested(videoID string) bool {
	dt.mu.RLock()
	defer dt.mu.RUnlock()

	digestedAt, exists := dt.digested[videoID]
	if !exists {
		return false
	}
	return time.Since(digestedAt) < dt.maxAge
}

// MarkDigested records a batch of video IDs as sent.
func (dt *DigestTracker) MarkDigested(videoIDs []string) error {
	dt.mu.Lock()
	defer dt.mu.Unlock()

	now := time.Now()
	for _, videoID := range videoIDs {
		dt.digested[videoID] = now
	}
	return dt.save()
}

func (dt *DigestTracker) Count() int {
	dt.mu.RLock()
	defer dt.mu.RUnlock()
	return len(dt.digested)
}

func (dt *DigestTracker) prune() {
	cutoff := time.Now().Add(-dt.maxAge)
	for videoID, digestedAt := range dt.digested {
		if digestedAt.Before(cutoff) {
			delete(dt.digested, videoID)
		}
	}
}

func (dt *DigestTracker) load() error {
	data, err := os.ReadFile(dt.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open tracker file: %w", err)
	}

	if err := json.Unmarshal(data, &dt.digested); err != nil {
		return fmt.Errorf("failed to decode tracker data: %w", err)
	}
	return nil
}

func (dt *DigestTracker) save() error {
	file, err := os.Create(dt.filePath)
	if err != nil {
		return fmt.Errorf("failed to create tracker file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(dt.digested)
}
