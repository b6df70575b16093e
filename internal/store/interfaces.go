package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-travel-journal/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the generated ID and
	// creation time. A duplicate e-mail yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account registered with email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the account with the given ID or
	// [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TravelStoryRepository persists travel stories. Every method except
// CreateStory is scoped to the owner: a story of another user behaves
// exactly like a missing one and yields [ErrStoryNotFound].
//
// Lists are ordered favourites first, then newest first.
type TravelStoryRepository interface {
	CreateStory(ctx context.Context, story models.TravelStory) (models.TravelStory, error)
	ListStories(ctx context.Context, userID int64) ([]models.TravelStory, error)
	FindStory(ctx context.Context, storyID, userID int64) (models.TravelStory, error)
	UpdateStory(ctx context.Context, story models.TravelStory) (models.TravelStory, error)
	SetFavourite(ctx context.Context, storyID, userID int64, isFavourite bool) (models.TravelStory, error)

	// DeleteStory removes the story row and returns the deleted record.
	DeleteStory(ctx context.Context, storyID, userID int64) (models.TravelStory, error)

	// SearchStories returns stories whose title, story or any visited
	// location contains query, ignoring case.
	SearchStories(ctx context.Context, userID int64, query string) ([]models.TravelStory, error)

	// FilterStoriesByVisitedDate returns stories with start <= visited date <= end.
	FilterStoriesByVisitedDate(ctx context.Context, userID int64, start, end time.Time) ([]models.TravelStory, error)
}

// AssetStorage stores uploaded image files under flat, generated names.
type AssetStorage interface {
	// Save writes content under name, replacing nothing: names are unique.
	Save(ctx context.Context, name string, content io.Reader, size int64, contentType string) error

	// Open returns a reader over the stored asset. The caller must close it.
	// A missing asset yields [ErrAssetNotFound].
	Open(ctx context.Context, name string) (io.ReadCloser, models.AssetInfo, error)

	// Delete removes the asset. A missing asset yields [ErrAssetNotFound].
	Delete(ctx context.Context, name string) error
}
