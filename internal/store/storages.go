package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
)

// Storages groups all repositories and the asset storage into a single value
// that can be passed to the service layer.
type Storages struct {
	UserRepository        UserRepository
	TravelStoryRepository TravelStoryRepository
	AssetStorage          AssetStorage

	db *DB
}

// NewStorages initialises the storage layer. It performs the following steps:
//  1. Opens the database selected by cfg.DB (PostgreSQL or SQLite).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Opens the asset storage selected by cfg.Files.Backend.
//
// Returns an error if any step fails; a connection opened before the failure
// is closed.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	assets, err := NewAssetStorage(ctx, cfg.Files, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:        NewUserRepository(db, logger),
		TravelStoryRepository: NewTravelStoryRepository(db, logger),
		AssetStorage:          assets,
		db:                    db,
	}, nil
}

// NewAssetStorage opens the asset storage backend named by cfg.Backend.
func NewAssetStorage(ctx context.Context, cfg config.Files, logger *logger.Logger) (AssetStorage, error) {
	switch cfg.Backend {
	case config.FilesBackendS3:
		return NewS3AssetStorage(ctx, cfg.S3, logger)
	case config.FilesBackendLocal, "":
		return NewLocalAssetStorage(cfg.UploadsDir, logger)
	default:
		return nil, fmt.Errorf("unsupported files backend %q", cfg.Backend)
	}
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
