package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-travel-journal/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.CreateAccountRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TravelStoryService manages the stories of a single owner per call. Stories
// of other users are reported as missing.
type TravelStoryService interface {
	CreateStory(ctx context.Context, userID int64, req models.TravelStoryRequest) (models.TravelStory, error)
	ListStories(ctx context.Context, userID int64) ([]models.TravelStory, error)
	EditStory(ctx context.Context, storyID, userID int64, req models.TravelStoryRequest) (models.TravelStory, error)
	DeleteStory(ctx context.Context, storyID, userID int64) (models.DeleteStoryResult, error)
	SetFavourite(ctx context.Context, storyID, userID int64, req models.FavouriteRequest) (models.TravelStory, error)
	Search(ctx context.Context, userID int64, req models.SearchRequest) ([]models.TravelStory, error)
	FilterByDateRange(ctx context.Context, userID int64, req models.DateRangeRequest) ([]models.TravelStory, error)
}

// TravelStoryServiceWrapper defines middleware composition for TravelStoryService.
// Implementations wrap an existing TravelStoryService to add behavior such as
// logging or validating.
type TravelStoryServiceWrapper interface {
	Wrap(TravelStoryService) TravelStoryService // returns a decorated TravelStoryService applying additional behavior
}

type AssetService interface {
	UploadImage(ctx context.Context, upload models.ImageUpload) (models.UploadedImage, error)
	DeleteImage(ctx context.Context, imageURL string) error
	OpenImage(ctx context.Context, name string) (io.ReadCloser, models.AssetInfo, error)

	// AssetName extracts the stored asset name from an image URL issued by
	// UploadImage. ok is false for any other URL.
	AssetName(imageURL string) (name string, ok bool)

	// PlaceholderURL is the image URL of stories without an uploaded image.
	PlaceholderURL() string
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
