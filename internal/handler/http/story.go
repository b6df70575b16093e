package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-travel-journal/internal/app"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
)

func (h *Handler) addTravelStory(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.TravelStoryRequest
	if err = decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	story, err := h.services.TravelStoryService.CreateStory(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StoryResponse{
		Response: models.Response{Message: app.MsgStoryAdded},
		Story:    story,
	}, http.StatusCreated)
}

func (h *Handler) getAllStories(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	stories, err := h.services.TravelStoryService.ListStories(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeStories(w, stories)
}

func (h *Handler) editStory(w http.ResponseWriter, r *http.Request) {
	userID, storyID, err := ownerAndStoryID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.TravelStoryRequest
	if err = decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	story, err := h.services.TravelStoryService.EditStory(r.Context(), storyID, userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StoryResponse{
		Response: models.Response{Message: app.MsgStoryUpdated},
		Story:    story,
	}, http.StatusOK)
}

func (h *Handler) deleteStory(w http.ResponseWriter, r *http.Request) {
	userID, storyID, err := ownerAndStoryID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.TravelStoryService.DeleteStory(r.Context(), storyID, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeleteStoryResponse{
		Response:          models.Response{Message: app.MsgStoryDeleted},
		DeleteStoryResult: result,
	}, http.StatusOK)
}

func (h *Handler) updateIsFavourite(w http.ResponseWriter, r *http.Request) {
	userID, storyID, err := ownerAndStoryID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.FavouriteRequest
	if err = decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	story, err := h.services.TravelStoryService.SetFavourite(r.Context(), storyID, userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StoryResponse{
		Response: models.Response{Message: app.MsgStoryUpdated},
		Story:    story,
	}, http.StatusOK)
}

func (h *Handler) searchStories(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	stories, err := h.services.TravelStoryService.Search(r.Context(), userID, models.SearchRequest{
		Query: r.URL.Query().Get("query"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeStories(w, stories)
}

// filterStories reads startDate and endDate as epoch milliseconds. A missing
// bound is left nil for the service to reject.
func (h *Handler) filterStories(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.DateRangeRequest
	if req.StartDate, err = epochParam(r, "startDate"); err != nil {
		writeError(w, r, err)
		return
	}
	if req.EndDate, err = epochParam(r, "endDate"); err != nil {
		writeError(w, r, err)
		return
	}

	stories, err := h.services.TravelStoryService.FilterByDateRange(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeStories(w, stories)
}

func writeStories(w http.ResponseWriter, stories []models.TravelStory) {
	if stories == nil {
		stories = []models.TravelStory{}
	}

	utils.WriteJSON(w, models.StoriesResponse{
		Response: models.Response{Message: app.MsgStoriesFetched},
		Stories:  stories,
	}, http.StatusOK)
}

func ownerAndStoryID(r *http.Request) (int64, int64, error) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return 0, 0, err
	}

	storyID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || storyID <= 0 {
		return 0, 0, ErrInvalidStoryID
	}

	return userID, storyID, nil
}

func epochParam(r *http.Request, name string) (*models.EpochMillis, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	ms, err := models.ParseEpochMillis(raw)
	if err != nil {
		return nil, err
	}
	return &ms, nil
}
