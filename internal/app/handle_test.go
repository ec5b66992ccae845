package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandle_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	h, err := NewHandle(dir, NewLogTracker(logger.Nop()))
	require.NoError(t, err)

	info, err := os.Stat(h.DataDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.True(t, filepath.IsAbs(h.DataDir()))
	assert.NotNil(t, h.Tracker())
}

func TestNewHandle_EmptyDir(t *testing.T) {
	_, err := NewHandle("", nil)
	assert.ErrorIs(t, err, ErrEmptyDataDir)
}

func TestLogTracker_Track(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewLogger("test")
	l.Logger = l.Output(&buf)

	tr := NewLogTracker(l)
	ctx := context.WithValue(context.Background(), utils.TraceIDCtxKey, "trace-1")
	tr.Track(ctx, errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, true, entry["tracked"])
	assert.Equal(t, "tracker", entry["sink"])
	assert.Equal(t, "trace-1", entry["trace_id"])
}

func TestLogTracker_IgnoresNil(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewLogger("test")
	l.Logger = l.Output(&buf)

	NewLogTracker(l).Track(context.Background(), nil)
	assert.Empty(t, buf.String())
}
