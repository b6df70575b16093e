package http

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-travel-journal/internal/app"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
)

const (
	imageFormField = "image"

	// multipartOverhead is allowed on top of the image size for boundaries
	// and part headers.
	multipartOverhead = 1 << 20

	// multipartMemory is kept in memory before parts spill to temp files.
	multipartMemory = 8 << 20

	sniffLen = 512
)

func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, ErrImageTooLarge)
			return
		}
		writeError(w, r, ErrNoImageUploaded)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(imageFormField)
	if err != nil {
		writeError(w, r, ErrNoImageUploaded)
		return
	}
	defer file.Close()

	if h.maxUploadSize > 0 && header.Size > h.maxUploadSize {
		writeError(w, r, ErrImageTooLarge)
		return
	}

	uploaded, err := h.services.AssetService.UploadImage(r.Context(), models.ImageUpload{
		Content:      file,
		Size:         header.Size,
		ContentType:  partContentType(header, file),
		OriginalName: header.Filename,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("image_url", uploaded.ImageURL).Msg("image uploaded")

	utils.WriteJSON(w, models.ImageResponse{
		Response:      models.Response{Message: app.MsgImageUploaded},
		UploadedImage: uploaded,
	}, http.StatusCreated)
}

func (h *Handler) deleteImage(w http.ResponseWriter, r *http.Request) {
	imageURL := r.URL.Query().Get("imageUrl")

	if err := h.services.AssetService.DeleteImage(r.Context(), imageURL); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Message: app.MsgImageDeleted}, http.StatusOK)
}

// serveUpload streams a stored image. Seekable content is served with
// http.ServeContent so range and conditional requests work.
//
// Only raster image types are served inline. Anything else, including files
// stored before uploads were restricted, goes out as an attachment.
func (h *Handler) serveUpload(w http.ResponseWriter, r *http.Request) {
	rc, info, err := h.services.AssetService.OpenImage(r.Context(), chi.URLParam(r, "file"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer rc.Close()

	header := w.Header()
	if contentType, ok := inlineImageType(info.ContentType); ok {
		header.Set("Content-Type", contentType)
	} else {
		header.Set("Content-Type", "application/octet-stream")
		header.Set("Content-Disposition", "attachment")
	}
	header.Set("X-Content-Type-Options", "nosniff")
	header.Set("Content-Security-Policy", "default-src 'none'; sandbox")
	header.Set("Cache-Control", "public, max-age=31536000, immutable")

	if rs, ok := rc.(io.ReadSeeker); ok {
		http.ServeContent(w, r, info.Name, time.Time{}, rs)
		return
	}

	if info.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	w.WriteHeader(http.StatusOK)
	if _, err = io.Copy(w, rc); err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("name", info.Name).Msg("streaming image interrupted")
	}
}

// serveStatic serves bundled files from the static directory without
// directory listings.
func (h *Handler) serveStatic() http.HandlerFunc {
	fs := http.StripPrefix("/assets/", http.FileServer(http.Dir(h.staticDir)))

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			writeErrorStatus(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
			return
		}
		fs.ServeHTTP(w, r)
	}
}

// inlineImageType reports whether a stored content type is safe to render in
// a browser and returns its bare media type.
func inlineImageType(contentType string) (string, bool) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") || strings.HasPrefix(mediaType, "image/svg") {
		return "", false
	}
	return mediaType, true
}

// partContentType returns the declared type of the part, sniffing the
// content when the client sent none or a generic one.
func partContentType(header *multipart.FileHeader, file multipart.File) string {
	declared := header.Header.Get("Content-Type")
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}

	buf := make([]byte, sniffLen)
	n, _ := io.ReadFull(file, buf)
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return declared
	}
	return http.DetectContentType(buf[:n])
}
