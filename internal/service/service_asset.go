package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"path"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
)

const (
	// UploadsPath is the URL path uploaded images are served under.
	UploadsPath = "/uploads/"

	// AssetsPath is the URL path of bundled static files.
	AssetsPath = "/assets/"

	placeholderImage = "placeholder.png"
)

// storedExtensions lists the extensions an uploaded image may keep. Anything
// else is replaced by the extension of the declared image type, so a stored
// name never maps to an active content type such as text/html.
var storedExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
	".bmp": true, ".tif": true, ".tiff": true, ".avif": true, ".heic": true, ".heif": true,
}

var extensionByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
	"image/tiff": ".tiff",
	"image/avif": ".avif",
	"image/heic": ".heic",
	"image/heif": ".heif",
}

type assetService struct {
	storage store.AssetStorage

	// baseURL prefixes every issued image URL, without a trailing slash.
	baseURL string

	names  *utils.UUIDGenerator
	logger *logger.Logger
}

func NewAssetService(storage store.AssetStorage, cfg config.Files, logger *logger.Logger) AssetService {
	return &assetService{
		storage: storage,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		names:   utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

// UploadImage stores an image under a generated name and returns its public
// URL. Width and height are filled in when a registered decoder understands
// the content.
func (a *assetService) UploadImage(ctx context.Context, upload models.ImageUpload) (models.UploadedImage, error) {
	log := logger.FromContext(ctx)

	if upload.Content == nil {
		return models.UploadedImage{}, ErrNoImageProvided
	}

	contentType, _, err := mime.ParseMediaType(upload.ContentType)
	if err != nil || !strings.HasPrefix(contentType, "image/") || strings.HasPrefix(contentType, "image/svg") {
		log.Warn().Str("content_type", upload.ContentType).Str("file", upload.OriginalName).Msg("rejected non-image upload")
		return models.UploadedImage{}, ErrNotImage
	}

	width, height := imageSize(upload.Content)
	if _, err := upload.Content.Seek(0, io.SeekStart); err != nil {
		return models.UploadedImage{}, fmt.Errorf("rewinding uploaded image failed: %w", err)
	}

	name := a.fileName(upload.OriginalName, contentType)
	if err := a.storage.Save(ctx, name, upload.Content, upload.Size, contentType); err != nil {
		log.Err(err).Str("name", name).Msg("saving image failed")
		return models.UploadedImage{}, fmt.Errorf("saving image failed: %w", err)
	}

	log.Info().Str("name", name).Int64("size", upload.Size).Msg("image uploaded")

	return models.UploadedImage{
		ImageURL:    a.baseURL + UploadsPath + name,
		Name:        name,
		ContentType: contentType,
		Size:        upload.Size,
		Width:       width,
		Height:      height,
	}, nil
}

func (a *assetService) DeleteImage(ctx context.Context, imageURL string) error {
	if strings.TrimSpace(imageURL) == "" {
		return ErrImageURLRequired
	}

	name, ok := a.AssetName(imageURL)
	if !ok {
		return ErrInvalidImageURL
	}

	err := a.storage.Delete(ctx, name)
	switch {
	case errors.Is(err, store.ErrAssetNotFound):
		return fmt.Errorf("%w: %s", ErrImageNotFound, name)
	case errors.Is(err, store.ErrInvalidAssetName):
		return ErrInvalidImageURL
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("name", name).Msg("deleting image failed")
		return fmt.Errorf("deleting image failed: %w", err)
	}

	return nil
}

func (a *assetService) OpenImage(ctx context.Context, name string) (io.ReadCloser, models.AssetInfo, error) {
	rc, info, err := a.storage.Open(ctx, name)
	if errors.Is(err, store.ErrAssetNotFound) || errors.Is(err, store.ErrInvalidAssetName) {
		return nil, models.AssetInfo{}, fmt.Errorf("%w: %s", ErrImageNotFound, name)
	}
	if err != nil {
		return nil, models.AssetInfo{}, fmt.Errorf("opening image failed: %w", err)
	}

	return rc, info, nil
}

func (a *assetService) AssetName(imageURL string) (string, bool) {
	name, found := strings.CutPrefix(strings.TrimSpace(imageURL), a.baseURL+UploadsPath)
	if !found || name == "" || strings.HasPrefix(name, ".") || strings.ContainsAny(name, "/?#\\") || name != path.Base(name) {
		return "", false
	}

	return name, true
}

func (a *assetService) PlaceholderURL() string {
	return a.baseURL + AssetsPath + placeholderImage
}

// fileName generates a unique name keeping the original extension when it is
// a raster image one. Otherwise the extension follows the content type, and
// an unknown image type gets none.
func (a *assetService) fileName(originalName, contentType string) string {
	ext := strings.ToLower(path.Ext(originalName))
	if !storedExtensions[ext] {
		ext = extensionByType[contentType]
	}

	return a.names.GenerateFileName(ext)
}

func imageSize(r io.Reader) (int, int) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0
	}

	return cfg.Width, cfg.Height
}
