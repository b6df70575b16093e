package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
)

// getServerVersion answers with the build version as plain text. It is
// never cached so a redeploy is visible at once.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := io.WriteString(w, version); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("writing version failed")
	}
}
