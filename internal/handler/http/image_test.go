package http

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/models"
)

// multipartBody builds a form with a single file part. An empty field name
// produces a form without files.
func multipartBody(t *testing.T, field, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if field != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
		if contentType != "" {
			header.Set("Content-Type", contentType)
		}
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	} else {
		require.NoError(t, mw.WriteField("note", "no file"))
	}

	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func uploadRequest(body io.Reader, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer token")
	return req
}

func TestUploadImage(t *testing.T) {
	assets := &mockAssetService{
		uploadFn: func(_ context.Context, upload models.ImageUpload) (models.UploadedImage, error) {
			assert.Equal(t, "image/png", upload.ContentType)
			assert.Equal(t, "trip.png", upload.OriginalName)
			assert.Equal(t, int64(4), upload.Size)
			body, err := io.ReadAll(upload.Content)
			require.NoError(t, err)
			assert.Equal(t, "data", string(body))
			return models.UploadedImage{ImageURL: "http://x/uploads/u.png", Name: "u.png"}, nil
		},
	}
	h := newTestHandler(nil, nil, assets)
	body, ct := multipartBody(t, "image", "trip.png", "image/png", []byte("data"))

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, uploadRequest(body, ct))

	require.Equal(t, http.StatusCreated, rr.Code)
	resp := decodeJSON[models.ImageResponse](t, rr)
	assert.Equal(t, "http://x/uploads/u.png", resp.ImageURL)
}

func TestUploadImage_SniffsMissingContentType(t *testing.T) {
	gif := []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
	assets := &mockAssetService{
		uploadFn: func(_ context.Context, upload models.ImageUpload) (models.UploadedImage, error) {
			assert.Equal(t, "image/gif", upload.ContentType)
			body, _ := io.ReadAll(upload.Content)
			assert.Equal(t, gif, body, "content must be rewound after sniffing")
			return models.UploadedImage{}, nil
		},
	}
	h := newTestHandler(nil, nil, assets)
	body, ct := multipartBody(t, "image", "x", "", gif)

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, uploadRequest(body, ct))

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestUploadImage_Failures(t *testing.T) {
	notImage := &mockAssetService{
		uploadFn: func(context.Context, models.ImageUpload) (models.UploadedImage, error) {
			return models.UploadedImage{}, service.ErrNotImage
		},
	}

	t.Run("no file", func(t *testing.T) {
		body, ct := multipartBody(t, "", "", "", nil)
		rr := httptest.NewRecorder()
		newTestHandler(nil, nil, nil).Init().ServeHTTP(rr, uploadRequest(body, ct))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("not multipart", func(t *testing.T) {
		rr := httptest.NewRecorder()
		newTestHandler(nil, nil, nil).Init().ServeHTTP(rr, uploadRequest(strings.NewReader("{}"), "application/json"))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("not an image", func(t *testing.T) {
		body, ct := multipartBody(t, "image", "doc.pdf", "application/pdf", []byte("%PDF"))
		rr := httptest.NewRecorder()
		newTestHandler(nil, nil, notImage).Init().ServeHTTP(rr, uploadRequest(body, ct))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("too large", func(t *testing.T) {
		h := newTestHandler(nil, nil, nil)
		h.maxUploadSize = 10
		body, ct := multipartBody(t, "image", "big.png", "image/png", bytes.Repeat([]byte("x"), 11))
		rr := httptest.NewRecorder()
		h.Init().ServeHTTP(rr, uploadRequest(body, ct))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	})

	t.Run("far too large", func(t *testing.T) {
		h := newTestHandler(nil, nil, nil)
		h.maxUploadSize = 10
		body, ct := multipartBody(t, "image", "big.png", "image/png", bytes.Repeat([]byte("x"), 2<<20))
		rr := httptest.NewRecorder()
		h.Init().ServeHTTP(rr, uploadRequest(body, ct))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	})
}

func TestDeleteImage(t *testing.T) {
	assets := &mockAssetService{
		deleteFn: func(_ context.Context, imageURL string) error {
			switch imageURL {
			case "":
				return service.ErrImageURLRequired
			case "http://x/uploads/gone.png":
				return service.ErrImageNotFound
			}
			return nil
		},
	}
	h := newTestHandler(nil, nil, assets)

	assert.Equal(t, http.StatusOK, serve(h, http.MethodDelete, "/delete-image?imageUrl=http://x/uploads/a.png", "", "token").Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, http.MethodDelete, "/delete-image", "", "token").Code)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodDelete, "/delete-image?imageUrl=http://x/uploads/gone.png", "", "token").Code)
}

func TestServeUpload(t *testing.T) {
	assets := &mockAssetService{
		openFn: func(_ context.Context, name string) (io.ReadCloser, models.AssetInfo, error) {
			if name != "a.png" {
				return nil, models.AssetInfo{}, service.ErrImageNotFound
			}
			return io.NopCloser(strings.NewReader("png")), models.AssetInfo{Name: name, ContentType: "image/png", Size: 3}, nil
		},
	}
	h := newTestHandler(nil, nil, assets)

	rr := serve(h, http.MethodGet, "/uploads/a.png", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Empty(t, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "png", rr.Body.String())

	rr = serve(h, http.MethodGet, "/uploads/b.png", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestServeUpload_ActiveContentServedAsAttachment(t *testing.T) {
	const page = "<script>alert(document.cookie)</script>"

	for _, stored := range []string{"text/html; charset=utf-8", "image/svg+xml", ""} {
		t.Run(stored, func(t *testing.T) {
			assets := &mockAssetService{
				openFn: func(_ context.Context, name string) (io.ReadCloser, models.AssetInfo, error) {
					return io.NopCloser(strings.NewReader(page)), models.AssetInfo{Name: name, ContentType: stored}, nil
				},
			}
			h := newTestHandler(nil, nil, assets)

			rr := serve(h, http.MethodGet, "/uploads/x.html", "", "")
			require.Equal(t, http.StatusOK, rr.Code)

			assert.Equal(t, "application/octet-stream", rr.Header().Get("Content-Type"))
			assert.Equal(t, "attachment", rr.Header().Get("Content-Disposition"))
			assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
			assert.Contains(t, rr.Header().Get("Content-Security-Policy"), "sandbox")
		})
	}
}

func TestServeStatic(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "placeholder.png"), []byte("placeholder"), 0o644))

	h := newTestHandler(nil, nil, nil)
	h.staticDir = dir

	rr := serve(h, http.MethodGet, "/assets/placeholder.png", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "placeholder", rr.Body.String())

	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/assets/missing.png", "", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/assets/", "", "").Code)
}
