package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/models"
)

// localAssetStorage keeps assets as plain files in a single directory.
type localAssetStorage struct {
	dir    string
	logger *logger.Logger
}

// NewLocalAssetStorage returns an [AssetStorage] rooted at dir. The directory
// is created when it does not exist.
func NewLocalAssetStorage(dir string, logger *logger.Logger) (AssetStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewLocalAssetStorage").Msg("error creating uploads directory")
		return nil, fmt.Errorf("error creating uploads directory %q: %w", dir, err)
	}

	logger.Debug().Str("dir", dir).Msg("creating local asset storage")
	return &localAssetStorage{dir: dir, logger: logger}, nil
}

func (s *localAssetStorage) Save(ctx context.Context, name string, content io.Reader, _ int64, _ string) error {
	log := logger.FromContext(ctx)

	path, err := s.path(name)
	if err != nil {
		return err
	}

	// readers never observe a partially written asset
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "*localAssetStorage.Save").Msg("error creating temporary file")
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, content); err != nil {
		tmp.Close()
		log.Err(err).Str("func", "*localAssetStorage.Save").Msg("error writing asset")
		return fmt.Errorf("error writing asset %q: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing asset %q: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		log.Err(err).Str("func", "*localAssetStorage.Save").Msg("error moving asset into place")
		return fmt.Errorf("error saving asset %q: %w", name, err)
	}

	return nil
}

func (s *localAssetStorage) Open(_ context.Context, name string) (io.ReadCloser, models.AssetInfo, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, models.AssetInfo{}, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, models.AssetInfo{}, ErrAssetNotFound
	}
	if err != nil {
		return nil, models.AssetInfo{}, fmt.Errorf("error opening asset %q: %w", name, err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, models.AssetInfo{}, fmt.Errorf("error reading asset %q: %w", name, err)
	}
	if stat.IsDir() {
		f.Close()
		return nil, models.AssetInfo{}, ErrAssetNotFound
	}

	return f, models.AssetInfo{
		Name:        name,
		ContentType: contentTypeByName(name),
		Size:        stat.Size(),
	}, nil
}

func (s *localAssetStorage) Delete(ctx context.Context, name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	err = os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrAssetNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localAssetStorage.Delete").Msg("error removing asset")
		return fmt.Errorf("error removing asset %q: %w", name, err)
	}

	return nil
}

func (s *localAssetStorage) path(name string) (string, error) {
	if err := validateAssetName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name), nil
}

// validateAssetName accepts only flat file names.
func validateAssetName(name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || name[0] == '.' {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

func contentTypeByName(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
