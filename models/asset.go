package models

import "io"

// ImageUpload is an image received from a multipart form, ready to be stored.
type ImageUpload struct {
	// Content is the raw file. It must support seeking so the image header can
	// be sniffed before the file is stored.
	Content io.ReadSeeker

	// Size is the length of Content in bytes.
	Size int64

	// ContentType is the MIME type announced by the client.
	ContentType string

	// OriginalName is the client-side file name. Only its extension is kept.
	OriginalName string
}

// UploadedImage describes a stored image asset.
type UploadedImage struct {
	ImageURL    string `json:"imageUrl"`
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`

	// Width and Height are zero when the image format could not be decoded.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// AssetInfo describes a stored asset opened for reading.
type AssetInfo struct {
	Name        string
	ContentType string
	Size        int64
}

// AssetCleanupStatus reports what happened to a story image after the story
// row was deleted.
type AssetCleanupStatus string

const (
	// AssetCleanupDeleted means the image file was removed.
	AssetCleanupDeleted AssetCleanupStatus = "deleted"

	// AssetCleanupMissing means the image file was already gone.
	AssetCleanupMissing AssetCleanupStatus = "missing"

	// AssetCleanupSkipped means the image URL does not point to an uploaded
	// asset of this service (placeholder or external URL).
	AssetCleanupSkipped AssetCleanupStatus = "skipped"

	// AssetCleanupFailed means the removal failed. The asset URL is logged so
	// the file can be removed out-of-band.
	AssetCleanupFailed AssetCleanupStatus = "failed"
)

// DeleteStoryResult is the outcome of the two-step story deletion. The row
// deletion is authoritative; AssetCleanup only reports the secondary step.
type DeleteStoryResult struct {
	StoryID      int64              `json:"storyId"`
	ImageURL     string             `json:"imageUrl"`
	AssetCleanup AssetCleanupStatus `json:"assetCleanup"`
}
