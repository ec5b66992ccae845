package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-proxy-keeper/internal/config"
	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
)

// Storages groups the job request repository and the ACL file storage so
// they can be passed to the service layer as one value.
type Storages struct {
	JobRequestRepository JobRequestRepository
	AclFileStorage       AclFileStorage

	db *DB
}

// NewStorages initialises the storage layer:
//  1. opens the job database described by cfg.DB.DSN (SQLite or PostgreSQL);
//  2. runs pending schema migrations via [DB.Migrate];
//  3. wires the repository and an [AclFileStorage] rooted at dataDir.
func NewStorages(ctx context.Context, cfg config.ClientStorage, dataDir string, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		JobRequestRepository: NewJobRequestRepository(db, logger),
		AclFileStorage:       NewAclFileStorage(dataDir, logger),
		db:                   db,
	}, nil
}

// Close releases the database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
