package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrEmptyDataDir is returned by [NewHandle] when no data directory is
// configured.
var ErrEmptyDataDir = errors.New("empty data directory")

// Handle is the application handle shared by the scheduler, the job runner
// and the toggle. It is created once at process start and is read-only
// afterwards, so it can be used from any goroutine without locking.
type Handle struct {
	dataDir string
	tracker Tracker
}

// NewHandle creates the data directory if needed and returns a Handle bound to
// it and to tracker.
func NewHandle(dataDir string, tracker Tracker) (*Handle, error) {
	if dataDir == "" {
		return nil, ErrEmptyDataDir
	}

	abs, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	if err = os.MkdirAll(abs, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	return &Handle{dataDir: abs, tracker: tracker}, nil
}

// DataDir returns the absolute private data directory.
func (h *Handle) DataDir() string {
	return h.dataDir
}

// Tracker returns the reporting sink.
func (h *Handle) Tracker() Tracker {
	return h.tracker
}
