package http

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/models"
)

const storyBody = `{"title":"Rome","story":"Colosseum","visitedLocation":["Rome"],"imageUrl":"http://x/uploads/a.png","visitedDate":"1700000000000"}`

func TestAddTravelStory(t *testing.T) {
	stories := &mockTravelStoryService{
		createFn: func(_ context.Context, userID int64, req models.TravelStoryRequest) (models.TravelStory, error) {
			assert.Equal(t, int64(1), userID)
			require.NotNil(t, req.VisitedDate)
			assert.Equal(t, int64(1700000000000), req.VisitedDate.Time().UnixMilli())
			return models.TravelStory{ID: 3, UserID: userID, Title: req.Title, VisitedDate: req.VisitedDate.Time()}, nil
		},
	}
	h := newTestHandler(nil, stories, nil)

	rr := serve(h, http.MethodPost, "/add-travel-story", storyBody, "token")

	require.Equal(t, http.StatusCreated, rr.Code)
	resp := decodeJSON[models.StoryResponse](t, rr)
	assert.Equal(t, int64(3), resp.Story.ID)
	assert.True(t, resp.Story.VisitedDate.Equal(time.UnixMilli(1700000000000)))
}

func TestAddTravelStory_InvalidDate(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	rr := serve(h, http.MethodPost, "/add-travel-story", `{"title":"t","visitedDate":"yesterday"}`, "token")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAddTravelStory_BodyTooLarge(t *testing.T) {
	h := newTestHandler(nil, &mockTravelStoryService{
		createFn: func(context.Context, int64, models.TravelStoryRequest) (models.TravelStory, error) {
			t.Fatal("oversized story must not reach the service")
			return models.TravelStory{}, nil
		},
	}, nil)

	body := `{"title":"Long","story":"` + strings.Repeat("x", maxJSONBodySize) + `","visitedDate":1}`
	rr := serve(h, http.MethodPost, "/add-travel-story", body, "token")

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.True(t, decodeJSON[models.Response](t, rr).Error)
}

func TestAddTravelStory_RequiresToken(t *testing.T) {
	h := newTestHandler(nil, &mockTravelStoryService{
		createFn: func(context.Context, int64, models.TravelStoryRequest) (models.TravelStory, error) {
			t.Fatal("handler must not run without a token")
			return models.TravelStory{}, nil
		},
	}, nil)

	rr := serve(h, http.MethodPost, "/add-travel-story", storyBody, "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetAllStories_EmptyListIsArray(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	rr := serve(h, http.MethodGet, "/get-all-stories", "", "token")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"stories":[]`)
}

func TestGetAllStories_Error(t *testing.T) {
	h := newTestHandler(nil, &mockTravelStoryService{
		listFn: func(context.Context, int64) ([]models.TravelStory, error) {
			return nil, store.ErrExecutingQuery
		},
	}, nil)

	rr := serve(h, http.MethodGet, "/get-all-stories", "", "token")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestEditStory(t *testing.T) {
	h := newTestHandler(nil, &mockTravelStoryService{
		editFn: func(_ context.Context, storyID, userID int64, req models.TravelStoryRequest) (models.TravelStory, error) {
			assert.Equal(t, int64(12), storyID)
			assert.Equal(t, int64(1), userID)
			return models.TravelStory{ID: storyID, Title: req.Title}, nil
		},
	}, nil)

	rr := serve(h, http.MethodPut, "/edit-story/12", storyBody, "token")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Rome", decodeJSON[models.StoryResponse](t, rr).Story.Title)
}

func TestStoryIDRoutes_Failures(t *testing.T) {
	notFound := &mockTravelStoryService{
		editFn: func(context.Context, int64, int64, models.TravelStoryRequest) (models.TravelStory, error) {
			return models.TravelStory{}, store.ErrStoryNotFound
		},
		deleteFn: func(context.Context, int64, int64) (models.DeleteStoryResult, error) {
			return models.DeleteStoryResult{}, store.ErrStoryNotFound
		},
		favouriteFn: func(context.Context, int64, int64, models.FavouriteRequest) (models.TravelStory, error) {
			return models.TravelStory{}, store.ErrStoryNotFound
		},
	}

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{"edit missing", http.MethodPut, "/edit-story/99", storyBody, http.StatusNotFound},
		{"delete missing", http.MethodDelete, "/delete-story/99", "", http.StatusNotFound},
		{"favourite missing", http.MethodPut, "/update-isFavourite/99", `{"isFavourite":true}`, http.StatusNotFound},
		{"edit bad id", http.MethodPut, "/edit-story/abc", storyBody, http.StatusBadRequest},
		{"delete zero id", http.MethodDelete, "/delete-story/0", "", http.StatusBadRequest},
		{"favourite bad json", http.MethodPut, "/update-isFavourite/1", `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(newTestHandler(nil, notFound, nil), tt.method, tt.target, tt.body, "token")
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestDeleteStory_ReportsCleanup(t *testing.T) {
	h := newTestHandler(nil, &mockTravelStoryService{
		deleteFn: func(_ context.Context, storyID, _ int64) (models.DeleteStoryResult, error) {
			return models.DeleteStoryResult{StoryID: storyID, ImageURL: "http://x/uploads/a.png", AssetCleanup: models.AssetCleanupFailed}, nil
		},
	}, nil)

	rr := serve(h, http.MethodDelete, "/delete-story/4", "", "token")

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeJSON[models.DeleteStoryResponse](t, rr)
	assert.False(t, resp.Error)
	assert.Equal(t, int64(4), resp.StoryID)
	assert.Equal(t, models.AssetCleanupFailed, resp.AssetCleanup)
}

func TestUpdateIsFavourite(t *testing.T) {
	h := newTestHandler(nil, &mockTravelStoryService{
		favouriteFn: func(_ context.Context, storyID, _ int64, req models.FavouriteRequest) (models.TravelStory, error) {
			require.NotNil(t, req.IsFavourite)
			return models.TravelStory{ID: storyID, IsFavourite: *req.IsFavourite}, nil
		},
	}, nil)

	rr := serve(h, http.MethodPut, "/update-isFavourite/4", `{"isFavourite":true}`, "token")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decodeJSON[models.StoryResponse](t, rr).Story.IsFavourite)
}

func TestSearchStories(t *testing.T) {
	h := newTestHandler(nil, &mockTravelStoryService{
		searchFn: func(_ context.Context, _ int64, req models.SearchRequest) ([]models.TravelStory, error) {
			if req.Query == "" {
				return nil, service.ErrEmptySearchQuery
			}
			assert.Equal(t, "old town", req.Query)
			return []models.TravelStory{{ID: 1}}, nil
		},
	}, nil)

	rr := serve(h, http.MethodGet, "/search?query=old+town", "", "token")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeJSON[models.StoriesResponse](t, rr).Stories, 1)

	rr = serve(h, http.MethodGet, "/search", "", "token")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeJSON[models.Response](t, rr).Message, "search query is required")
}

func TestFilterStories(t *testing.T) {
	h := newTestHandler(nil, &mockTravelStoryService{
		filterFn: func(_ context.Context, _ int64, req models.DateRangeRequest) ([]models.TravelStory, error) {
			if req.StartDate == nil || req.EndDate == nil {
				return nil, service.ErrInvalidDataProvided
			}
			assert.Equal(t, models.EpochMillis(1000), *req.StartDate)
			assert.Equal(t, models.EpochMillis(2000), *req.EndDate)
			return []models.TravelStory{}, nil
		},
	}, nil)

	rr := serve(h, http.MethodGet, "/travel-stories/filter?startDate=1000&endDate=2000", "", "token")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(h, http.MethodGet, "/travel-stories/filter?startDate=1000", "", "token")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = serve(h, http.MethodGet, "/travel-stories/filter?startDate=soon&endDate=2000", "", "token")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
