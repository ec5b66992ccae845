package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRoute(t *testing.T) {
	tests := []struct {
		route string
		valid bool
	}{
		{"self", true},
		{"gfwlist", true},
		{"bypass-lan-china", true},
		{"", false},
		{".", false},
		{"..", false},
		{"../etc/passwd", false},
		{"a/b", false},
		{`a\b`, false},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			err := ValidateRoute(tt.route)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidRoute)
			}
		})
	}
}

func TestAclFileStorage_WriteOverwritesWholesale(t *testing.T) {
	dir := t.TempDir()
	s := NewAclFileStorage(dir, logger.Nop())
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "self", "allow 1.1.1.1/32\nallow 8.8.8.8/32\n"))
	require.NoError(t, s.Write(ctx, "self", "allow 1.1.1.1/32"))

	data, err := os.ReadFile(filepath.Join(dir, "self.acl"))
	require.NoError(t, err)
	assert.Equal(t, "allow 1.1.1.1/32", string(data))

	file, err := s.Read(ctx, "self")
	require.NoError(t, err)
	assert.Equal(t, "self", file.Route)
	assert.Equal(t, filepath.Join(dir, "self.acl"), file.Path)
	assert.Equal(t, "allow 1.1.1.1/32", file.Content)
}

func TestAclFileStorage_ReadMissing(t *testing.T) {
	s := NewAclFileStorage(t.TempDir(), logger.Nop())

	_, err := s.Read(context.Background(), "self")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAclFileStorage_WriteRejectsInvalidRoute(t *testing.T) {
	dir := t.TempDir()
	s := NewAclFileStorage(dir, logger.Nop())

	err := s.Write(context.Background(), "../escape", "x")
	assert.ErrorIs(t, err, ErrInvalidRoute)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAclFileStorage_WriteMissingDirIsPathError(t *testing.T) {
	s := NewAclFileStorage(filepath.Join(t.TempDir(), "gone"), logger.Nop())

	err := s.Write(context.Background(), "self", "x")
	require.Error(t, err)

	var pathErr *os.PathError
	assert.ErrorAs(t, err, &pathErr)
}

func TestAclFileStorage_WriteCanceled(t *testing.T) {
	s := NewAclFileStorage(t.TempDir(), logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Write(ctx, "self", "x"), context.Canceled)
}
