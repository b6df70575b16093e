package http

import (
	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/service"
)

type Handler struct {
	services *service.Services

	server config.Server

	// maxUploadSize caps the image part of POST /upload-image in bytes.
	maxUploadSize int64

	// staticDir is served under /assets/. Empty disables the route.
	staticDir string

	metrics *httpMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		server:        cfg.Server,
		maxUploadSize: cfg.Storage.Files.MaxUploadSize,
		staticDir:     cfg.Storage.Files.StaticDir,
		metrics:       newHTTPMetrics(),
		logger:        logger,
	}
}
