// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
)

// newTestClient returns a client pointed at a stub server running handler.
func newTestClient(t *testing.T, handler http.HandlerFunc) *httpJournalClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewHTTPJournalClient(srv.URL, time.Second, logger.Nop())
	require.NoError(t, err)
	return c.(*httpJournalClient)
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.Response{Error: true, Message: message}, status)
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8000", want: "http://localhost:8000"},
		{in: " https://journal.example.com/ ", want: "https://journal.example.com"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestRegister_StoresTokenForLaterRequests(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/create-account":
			assert.Equal(t, http.MethodPost, r.Method)
			var req models.CreateAccountRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "ann@example.com", req.Email)

			utils.WriteJSON(w, models.AuthResponse{
				User:        models.UserSummary{FullName: req.FullName, Email: req.Email},
				AccessToken: "tok-7",
			}, http.StatusCreated)
		case "/get-user":
			assert.Equal(t, "Bearer tok-7", r.Header.Get("Authorization"))
			utils.WriteJSON(w, models.UserResponse{User: models.User{UserID: 7, FullName: "Ann"}}, http.StatusOK)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	out, err := c.Register(context.Background(), models.CreateAccountRequest{FullName: "Ann", Email: "ann@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", out.User.Email)
	assert.Equal(t, "tok-7", c.Token())

	user, err := c.GetUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.FullName)
}

func TestLogin_FailureKeepsServerMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusBadRequest, "invalid credentials")
	})

	_, err := c.Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "bad"})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "invalid credentials")
	assert.Empty(t, c.Token())
}

func TestAuthedRequest_WithoutToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeFailure(w, http.StatusUnauthorized, "authorization header is empty")
	})

	_, err := c.ListStories(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── stories ──────────────────────────────────────────────────────────────────

func TestAddStory_SendsEpochMillis(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/add-travel-story", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"visitedDate":1700000000000`)

		utils.WriteJSON(w, models.StoryResponse{Story: models.TravelStory{ID: 3, Title: "Paris"}}, http.StatusCreated)
	})
	c.SetToken("tok")

	date := models.EpochMillis(1700000000000)
	story, err := c.AddStory(context.Background(), models.TravelStoryRequest{
		Title:           "Paris",
		Story:           "Tower",
		VisitedLocation: []string{"Paris"},
		ImageURL:        "http://x/assets/placeholder.png",
		VisitedDate:     &date,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), story.ID)
}

func TestSetFavourite_PathAndBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/update-isFavourite/42", r.URL.Path)
		var req struct {
			IsFavourite bool `json:"isFavourite"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.IsFavourite)

		utils.WriteJSON(w, models.StoryResponse{Story: models.TravelStory{ID: 42, IsFavourite: true}}, http.StatusOK)
	})
	c.SetToken("tok")

	story, err := c.SetFavourite(context.Background(), 42, true)
	require.NoError(t, err)
	assert.True(t, story.IsFavourite)
}

func TestDeleteStory(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Path == "/delete-story/1" {
			utils.WriteJSON(w, models.DeleteStoryResponse{
				DeleteStoryResult: models.DeleteStoryResult{AssetCleanup: models.AssetCleanupSkipped},
			}, http.StatusOK)
			return
		}
		writeFailure(w, http.StatusNotFound, "travel story not found")
	})
	c.SetToken("tok")

	res, err := c.DeleteStory(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.AssetCleanupSkipped, res.AssetCleanup)

	_, err = c.DeleteStory(context.Background(), 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchAndFilter_QueryParams(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search":
			assert.Equal(t, "new york", r.URL.Query().Get("query"))
		case "/travel-stories/filter":
			assert.Equal(t, "1600000000000", r.URL.Query().Get("startDate"))
			assert.Equal(t, "1700000000000", r.URL.Query().Get("endDate"))
		}
		utils.WriteJSON(w, models.StoriesResponse{Stories: []models.TravelStory{{ID: 1}}}, http.StatusOK)
	})
	c.SetToken("tok")

	found, err := c.Search(context.Background(), "new york")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	filtered, err := c.FilterByVisitedDate(context.Background(), time.UnixMilli(1600000000000), time.UnixMilli(1700000000000))
	require.NoError(t, err)
	assert.Len(t, filtered, 1)
}

// ── images ───────────────────────────────────────────────────────────────────

func TestUploadImage_Multipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload-image", r.URL.Path)
		file, header, err := r.FormFile("image")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		body, _ := io.ReadAll(file)
		assert.Equal(t, "trip.png", header.Filename)
		assert.Equal(t, "png-bytes", string(body))

		utils.WriteJSON(w, models.ImageResponse{
			UploadedImage: models.UploadedImage{ImageURL: "http://x/uploads/a.png", Name: "a.png"},
		}, http.StatusCreated)
	})
	c.SetToken("tok")

	img, err := c.UploadImage(context.Background(), "trip.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://x/uploads/a.png", img.ImageURL)
}

func TestUploadImage_TooLarge(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusRequestEntityTooLarge, "image is too large")
	})
	c.SetToken("tok")

	_, err := c.UploadImage(context.Background(), "big.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestDeleteImage_QueryParam(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "http://x/uploads/a.png", r.URL.Query().Get("imageUrl"))
		utils.WriteJSON(w, models.Response{Message: "ok"}, http.StatusOK)
	})
	c.SetToken("tok")

	assert.NoError(t, c.DeleteImage(context.Background(), "http://x/uploads/a.png"))
}

// ── misc ─────────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("v1.2.3"))
	})

	v, err := c.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", v)
}

func TestMapHTTPError_PlainBodyAndUnknownStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down\n"))
	})

	_, err := c.Version(context.Background())
	require.Error(t, err)
	assert.Equal(t, "http 502: upstream down", err.Error())
}
