package http

import (
	"context"
	"io"
	"net/http"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
)

// ─── Mock: AuthService ────────────────────────────────────────────────────────

type mockAuthService struct {
	registerFn    func(ctx context.Context, req models.CreateAccountRequest) (models.User, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	getUserFn     func(ctx context.Context, userID int64) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, token string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.CreateAccountRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return models.User{UserID: 1, FullName: req.FullName, Email: req.Email}, nil
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.User{UserID: 1, Email: req.Email}, nil
}

func (m *mockAuthService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if m.getUserFn != nil {
		return m.getUserFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token", UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, token)
	}
	return models.Token{UserID: 1}, nil
}

// ─── Mock: TravelStoryService ─────────────────────────────────────────────────

type mockTravelStoryService struct {
	createFn    func(ctx context.Context, userID int64, req models.TravelStoryRequest) (models.TravelStory, error)
	listFn      func(ctx context.Context, userID int64) ([]models.TravelStory, error)
	editFn      func(ctx context.Context, storyID, userID int64, req models.TravelStoryRequest) (models.TravelStory, error)
	deleteFn    func(ctx context.Context, storyID, userID int64) (models.DeleteStoryResult, error)
	favouriteFn func(ctx context.Context, storyID, userID int64, req models.FavouriteRequest) (models.TravelStory, error)
	searchFn    func(ctx context.Context, userID int64, req models.SearchRequest) ([]models.TravelStory, error)
	filterFn    func(ctx context.Context, userID int64, req models.DateRangeRequest) ([]models.TravelStory, error)
}

func (m *mockTravelStoryService) CreateStory(ctx context.Context, userID int64, req models.TravelStoryRequest) (models.TravelStory, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, req)
	}
	return models.TravelStory{ID: 1, UserID: userID, Title: req.Title}, nil
}

func (m *mockTravelStoryService) ListStories(ctx context.Context, userID int64) ([]models.TravelStory, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockTravelStoryService) EditStory(ctx context.Context, storyID, userID int64, req models.TravelStoryRequest) (models.TravelStory, error) {
	if m.editFn != nil {
		return m.editFn(ctx, storyID, userID, req)
	}
	return models.TravelStory{ID: storyID, UserID: userID, Title: req.Title}, nil
}

func (m *mockTravelStoryService) DeleteStory(ctx context.Context, storyID, userID int64) (models.DeleteStoryResult, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, storyID, userID)
	}
	return models.DeleteStoryResult{StoryID: storyID, AssetCleanup: models.AssetCleanupSkipped}, nil
}

func (m *mockTravelStoryService) SetFavourite(ctx context.Context, storyID, userID int64, req models.FavouriteRequest) (models.TravelStory, error) {
	if m.favouriteFn != nil {
		return m.favouriteFn(ctx, storyID, userID, req)
	}
	return models.TravelStory{ID: storyID, UserID: userID}, nil
}

func (m *mockTravelStoryService) Search(ctx context.Context, userID int64, req models.SearchRequest) ([]models.TravelStory, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, userID, req)
	}
	return nil, nil
}

func (m *mockTravelStoryService) FilterByDateRange(ctx context.Context, userID int64, req models.DateRangeRequest) ([]models.TravelStory, error) {
	if m.filterFn != nil {
		return m.filterFn(ctx, userID, req)
	}
	return nil, nil
}

// ─── Mock: AssetService ───────────────────────────────────────────────────────

type mockAssetService struct {
	uploadFn func(ctx context.Context, upload models.ImageUpload) (models.UploadedImage, error)
	deleteFn func(ctx context.Context, imageURL string) error
	openFn   func(ctx context.Context, name string) (io.ReadCloser, models.AssetInfo, error)
}

func (m *mockAssetService) UploadImage(ctx context.Context, upload models.ImageUpload) (models.UploadedImage, error) {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, upload)
	}
	return models.UploadedImage{ImageURL: "http://localhost:8000/uploads/x.png", Name: "x.png"}, nil
}

func (m *mockAssetService) DeleteImage(ctx context.Context, imageURL string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, imageURL)
	}
	return nil
}

func (m *mockAssetService) OpenImage(ctx context.Context, name string) (io.ReadCloser, models.AssetInfo, error) {
	if m.openFn != nil {
		return m.openFn(ctx, name)
	}
	return nil, models.AssetInfo{}, service.ErrImageNotFound
}

func (m *mockAssetService) AssetName(string) (string, bool) { return "", false }

func (m *mockAssetService) PlaceholderURL() string {
	return "http://localhost:8000/assets/placeholder.png"
}

// ─── Mock: AppInfoService ─────────────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string { return m.version }

func (m *mockAppInfoService) GetBuildInfo(context.Context) models.AppBuildInfo {
	return models.AppBuildInfo{Version: m.version}
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

// newTestHandler returns a Handler whose services fall back to the mocks'
// defaults for every nil argument.
func newTestHandler(auth *mockAuthService, stories *mockTravelStoryService, assets *mockAssetService) *Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if stories == nil {
		stories = &mockTravelStoryService{}
	}
	if assets == nil {
		assets = &mockAssetService{}
	}

	return &Handler{
		logger:        logger.Nop(),
		maxUploadSize: 1 << 20,
		services: &service.Services{
			AuthService:        auth,
			TravelStoryService: stories,
			AssetService:       assets,
			AppInfoService:     &mockAppInfoService{version: "test-version"},
		},
	}
}

// withUser returns r as the auth middleware would pass it on for userID.
func withUser(r *http.Request, userID int64) *http.Request {
	return r.WithContext(utils.WithUserID(r.Context(), userID))
}

// deadlineRecorder records whether the request context carries a deadline.
type deadlineRecorder struct {
	set *bool
}

func (p deadlineRecorder) GetAppVersion(ctx context.Context) string {
	_, *p.set = ctx.Deadline()
	return "deadline"
}

func (p deadlineRecorder) GetBuildInfo(context.Context) models.AppBuildInfo {
	return models.AppBuildInfo{}
}
