package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/mock"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/validators"
	"github.com/MKhiriev/go-travel-journal/models"
)

const testBaseURL = "http://journal.test"

type storyFixture struct {
	svc     TravelStoryService
	repo    *mock.MockTravelStoryRepository
	storage *mock.MockAssetStorage
}

// newStoryFixture builds the service the way NewServices does: the
// validation wrapper around the core service.
func newStoryFixture(t *testing.T) storyFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTravelStoryRepository(ctrl)
	storage := mock.NewMockAssetStorage(ctrl)

	assets := NewAssetService(storage, config.Files{PublicBaseURL: testBaseURL + "/"}, logger.Nop())
	svc := NewTravelStoryValidationService(validators.NewRequestValidator()).
		Wrap(NewTravelStoryService(repo, assets, logger.Nop()))

	return storyFixture{svc: svc, repo: repo, storage: storage}
}

func epoch(ms int64) *models.EpochMillis {
	e := models.EpochMillis(ms)
	return &e
}

func validStoryRequest() models.TravelStoryRequest {
	return models.TravelStoryRequest{
		Title:           "Trip",
		Story:           "Great",
		VisitedLocation: []string{"Paris", "Lyon"},
		ImageURL:        testBaseURL + "/uploads/a.jpg",
		VisitedDate:     epoch(1700000000000),
	}
}

// ── CreateStory ──

func TestCreateStory_Success(t *testing.T) {
	f := newStoryFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().CreateStory(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s models.TravelStory) (models.TravelStory, error) {
		assert.Equal(t, int64(9), s.UserID)
		assert.Equal(t, models.Locations{"Paris", "Lyon"}, s.VisitedLocation)
		assert.True(t, s.VisitedDate.Equal(time.UnixMilli(1700000000000)))
		assert.False(t, s.IsFavourite)
		s.ID = 1
		return s, nil
	})

	story, err := f.svc.CreateStory(ctx, 9, validStoryRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), story.ID)
}

func TestCreateStory_EmptyLocationsAllowed(t *testing.T) {
	f := newStoryFixture(t)
	req := validStoryRequest()
	req.VisitedLocation = []string{}

	f.repo.EXPECT().CreateStory(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s models.TravelStory) (models.TravelStory, error) {
		assert.Empty(t, s.VisitedLocation)
		return s, nil
	})

	_, err := f.svc.CreateStory(context.Background(), 1, req)
	require.NoError(t, err)
}

func TestCreateStory_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.TravelStoryRequest)
	}{
		{"title", func(r *models.TravelStoryRequest) { r.Title = "" }},
		{"story", func(r *models.TravelStoryRequest) { r.Story = "" }},
		{"locations", func(r *models.TravelStoryRequest) { r.VisitedLocation = nil }},
		{"image", func(r *models.TravelStoryRequest) { r.ImageURL = "" }},
		{"date", func(r *models.TravelStoryRequest) { r.VisitedDate = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newStoryFixture(t)
			req := validStoryRequest()
			tt.mutate(&req)

			_, err := f.svc.CreateStory(context.Background(), 1, req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

// ── EditStory ──

func TestEditStory_BlankImageBecomesPlaceholder(t *testing.T) {
	f := newStoryFixture(t)
	req := validStoryRequest()
	req.ImageURL = ""

	f.repo.EXPECT().UpdateStory(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s models.TravelStory) (models.TravelStory, error) {
		assert.Equal(t, int64(4), s.ID)
		assert.Equal(t, int64(2), s.UserID)
		assert.Equal(t, testBaseURL+"/assets/placeholder.png", s.ImageURL)
		return s, nil
	})

	story, err := f.svc.EditStory(context.Background(), 4, 2, req)
	require.NoError(t, err)
	assert.Equal(t, testBaseURL+"/assets/placeholder.png", story.ImageURL)
}

func TestEditStory_NotOwned(t *testing.T) {
	f := newStoryFixture(t)

	f.repo.EXPECT().UpdateStory(gomock.Any(), gomock.Any()).Return(models.TravelStory{}, store.ErrStoryNotFound)

	_, err := f.svc.EditStory(context.Background(), 4, 2, validStoryRequest())
	assert.ErrorIs(t, err, store.ErrStoryNotFound)
}

func TestEditStory_MissingTitle(t *testing.T) {
	f := newStoryFixture(t)
	req := validStoryRequest()
	req.Title = ""

	_, err := f.svc.EditStory(context.Background(), 4, 2, req)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── DeleteStory ──

func TestDeleteStory_CleanupOutcomes(t *testing.T) {
	uploaded := testBaseURL + "/uploads/a.jpg"

	tests := []struct {
		name     string
		imageURL string
		setup    func(*mock.MockAssetStorage)
		want     models.AssetCleanupStatus
	}{
		{
			name:     "deleted",
			imageURL: uploaded,
			setup: func(s *mock.MockAssetStorage) {
				s.EXPECT().Delete(gomock.Any(), "a.jpg").Return(nil)
			},
			want: models.AssetCleanupDeleted,
		},
		{
			name:     "missing",
			imageURL: uploaded,
			setup: func(s *mock.MockAssetStorage) {
				s.EXPECT().Delete(gomock.Any(), "a.jpg").Return(store.ErrAssetNotFound)
			},
			want: models.AssetCleanupMissing,
		},
		{
			name:     "failed",
			imageURL: uploaded,
			setup: func(s *mock.MockAssetStorage) {
				s.EXPECT().Delete(gomock.Any(), "a.jpg").Return(errors.New("disk is read-only"))
			},
			want: models.AssetCleanupFailed,
		},
		{
			name:     "placeholder skipped",
			imageURL: testBaseURL + "/assets/placeholder.png",
			setup:    func(*mock.MockAssetStorage) {},
			want:     models.AssetCleanupSkipped,
		},
		{
			name:     "foreign url skipped",
			imageURL: "https://elsewhere.example/uploads/a.jpg",
			setup:    func(*mock.MockAssetStorage) {},
			want:     models.AssetCleanupSkipped,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newStoryFixture(t)
			f.repo.EXPECT().DeleteStory(gomock.Any(), int64(4), int64(2)).
				Return(models.TravelStory{ID: 4, UserID: 2, ImageURL: tt.imageURL}, nil)
			tt.setup(f.storage)

			result, err := f.svc.DeleteStory(context.Background(), 4, 2)
			require.NoError(t, err)
			assert.Equal(t, int64(4), result.StoryID)
			assert.Equal(t, tt.imageURL, result.ImageURL)
			assert.Equal(t, tt.want, result.AssetCleanup)
		})
	}
}

func TestDeleteStory_NotFoundSkipsCleanup(t *testing.T) {
	f := newStoryFixture(t)
	f.repo.EXPECT().DeleteStory(gomock.Any(), int64(4), int64(2)).Return(models.TravelStory{}, store.ErrStoryNotFound)

	_, err := f.svc.DeleteStory(context.Background(), 4, 2)
	assert.ErrorIs(t, err, store.ErrStoryNotFound)
}

// ── SetFavourite ──

func TestSetFavourite(t *testing.T) {
	f := newStoryFixture(t)
	yes := true

	f.repo.EXPECT().SetFavourite(gomock.Any(), int64(4), int64(2), true).Return(models.TravelStory{ID: 4, IsFavourite: true}, nil)

	story, err := f.svc.SetFavourite(context.Background(), 4, 2, models.FavouriteRequest{IsFavourite: &yes})
	require.NoError(t, err)
	assert.True(t, story.IsFavourite)

	_, err = f.svc.SetFavourite(context.Background(), 4, 2, models.FavouriteRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSetFavourite_FalseIsAValue(t *testing.T) {
	f := newStoryFixture(t)
	no := false

	f.repo.EXPECT().SetFavourite(gomock.Any(), int64(4), int64(2), false).Return(models.TravelStory{ID: 4}, nil)

	_, err := f.svc.SetFavourite(context.Background(), 4, 2, models.FavouriteRequest{IsFavourite: &no})
	require.NoError(t, err)
}

// ── Search ──

func TestSearch(t *testing.T) {
	f := newStoryFixture(t)
	want := []models.TravelStory{{ID: 1, Title: "Paris"}}

	f.repo.EXPECT().SearchStories(gomock.Any(), int64(2), "paris").Return(want, nil)

	got, err := f.svc.Search(context.Background(), 2, models.SearchRequest{Query: "  paris "})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSearch_BlankQuery(t *testing.T) {
	for _, q := range []string{"", "   "} {
		f := newStoryFixture(t)

		_, err := f.svc.Search(context.Background(), 2, models.SearchRequest{Query: q})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

// ── FilterByDateRange ──

func TestFilterByDateRange(t *testing.T) {
	f := newStoryFixture(t)
	start, end := time.UnixMilli(1000).UTC(), time.UnixMilli(5000).UTC()

	f.repo.EXPECT().FilterStoriesByVisitedDate(gomock.Any(), int64(2), start, end).Return([]models.TravelStory{}, nil)

	got, err := f.svc.FilterByDateRange(context.Background(), 2, models.DateRangeRequest{StartDate: epoch(1000), EndDate: epoch(5000)})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterByDateRange_SameDayIsValid(t *testing.T) {
	f := newStoryFixture(t)
	f.repo.EXPECT().FilterStoriesByVisitedDate(gomock.Any(), int64(2), gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := f.svc.FilterByDateRange(context.Background(), 2, models.DateRangeRequest{StartDate: epoch(1000), EndDate: epoch(1000)})
	require.NoError(t, err)
}

func TestFilterByDateRange_Invalid(t *testing.T) {
	tests := []struct {
		name string
		req  models.DateRangeRequest
	}{
		{"missing start", models.DateRangeRequest{EndDate: epoch(1)}},
		{"missing end", models.DateRangeRequest{StartDate: epoch(1)}},
		{"reversed", models.DateRangeRequest{StartDate: epoch(5000), EndDate: epoch(1000)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newStoryFixture(t)

			_, err := f.svc.FilterByDateRange(context.Background(), 2, tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestListStories_RepositoryError(t *testing.T) {
	f := newStoryFixture(t)
	f.repo.EXPECT().ListStories(gomock.Any(), int64(2)).Return(nil, store.ErrExecutingQuery)

	_, err := f.svc.ListStories(context.Background(), 2)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}
