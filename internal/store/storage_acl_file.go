package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/models"
)

// aclFileStorage keeps rule lists as plain files in the data directory.
type aclFileStorage struct {
	dataDir string
	logger  *logger.Logger
}

// NewAclFileStorage constructs an [AclFileStorage] rooted at dataDir.
func NewAclFileStorage(dataDir string, logger *logger.Logger) AclFileStorage {
	return &aclFileStorage{dataDir: dataDir, logger: logger}
}

// ValidateRoute reports [ErrInvalidRoute] for routes that cannot be used as
// a file name inside the data directory.
func ValidateRoute(route string) error {
	if route == "" || route == "." || route == ".." ||
		strings.ContainsAny(route, `/\`) || strings.Contains(route, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidRoute, route)
	}
	return nil
}

// Path implements [AclFileStorage].
func (s *aclFileStorage) Path(route string) (string, error) {
	if err := ValidateRoute(route); err != nil {
		return "", err
	}
	return filepath.Join(s.dataDir, models.AclFileName(route)), nil
}

// Write implements [AclFileStorage]. The file is truncated and rewritten in
// place; a crash mid-write can leave a partial list behind.
// TODO: write to a temp file and rename so readers never see a partial list.
func (s *aclFileStorage) Write(ctx context.Context, route, content string) error {
	path, err := s.Path(route)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	if err = os.WriteFile(path, []byte(content), 0o600); err != nil {
		s.logger.Err(err).Str("route", route).Str("path", path).Msg("failed to write acl file")
		return fmt.Errorf("write acl file: %w", err)
	}

	s.logger.Debug().Str("route", route).Int("bytes", len(content)).Msg("acl file written")
	return nil
}

// Read implements [AclFileStorage].
func (s *aclFileStorage) Read(ctx context.Context, route string) (models.AclFile, error) {
	path, err := s.Path(route)
	if err != nil {
		return models.AclFile{}, err
	}
	if err = ctx.Err(); err != nil {
		return models.AclFile{}, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.AclFile{}, ErrNotFound
	}
	if err != nil {
		return models.AclFile{}, fmt.Errorf("read acl file: %w", err)
	}

	return models.AclFile{Route: route, Path: path, Content: string(data)}, nil
}
