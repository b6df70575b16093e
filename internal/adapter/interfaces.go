// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed Go client for the travel journal HTTP API.
//
// The primary abstraction is [JournalClient], which hides the JSON envelope,
// the bearer-token header and the route layout from callers. It is used by
// smoke tests and tooling that drive a running server.
//
// Non-2xx responses are mapped to the sentinel errors in errors.go by
// mapHTTPError, so callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401). The server message is kept in the error text.
package adapter

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-travel-journal/models"
)

// JournalClient defines communication with the travel journal server.
// Every method except Register, Login and Version requires a token, set
// either explicitly via SetToken or implicitly by Register/Login.
type JournalClient interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, req models.CreateAccountRequest) (models.AuthResponse, error)

	// Login authenticates with e-mail and password and stores the issued token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	GetUser(ctx context.Context) (models.User, error)

	// UploadImage sends content as the "image" multipart field and returns
	// the stored asset, including its public URL.
	UploadImage(ctx context.Context, fileName string, content io.Reader) (models.UploadedImage, error)
	DeleteImage(ctx context.Context, imageURL string) error

	AddStory(ctx context.Context, req models.TravelStoryRequest) (models.TravelStory, error)
	ListStories(ctx context.Context) ([]models.TravelStory, error)
	EditStory(ctx context.Context, storyID int64, req models.TravelStoryRequest) (models.TravelStory, error)
	DeleteStory(ctx context.Context, storyID int64) (models.DeleteStoryResult, error)
	SetFavourite(ctx context.Context, storyID int64, isFavourite bool) (models.TravelStory, error)
	Search(ctx context.Context, query string) ([]models.TravelStory, error)

	// FilterByVisitedDate returns stories visited within [start, end].
	FilterByVisitedDate(ctx context.Context, start, end time.Time) ([]models.TravelStory, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
