package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/models"
)

const defaultRequestTimeout = 15 * time.Second

type httpJournalClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPJournalClient constructs an HTTP implementation of [JournalClient]
// for the server at address ("host:port" or a full URL). A non-positive
// timeout selects the default of 15s.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPJournalClient(address string, timeout time.Duration, logger *logger.Logger) (JournalClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid journal address: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	return &httpJournalClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpJournalClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpJournalClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpJournalClient) Register(ctx context.Context, req models.CreateAccountRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/create-account", req)
}

func (h *httpJournalClient) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/login", req)
}

func (h *httpJournalClient) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var out models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(out.AccessToken)
	h.logger.Debug().Msg("journal client authenticated")

	return out, nil
}

func (h *httpJournalClient) GetUser(ctx context.Context) (models.User, error) {
	var out models.UserResponse
	if err := h.do(h.authedRequest(ctx).SetResult(&out), resty.MethodGet, "/get-user"); err != nil {
		return models.User{}, err
	}
	return out.User, nil
}

func (h *httpJournalClient) UploadImage(ctx context.Context, fileName string, content io.Reader) (models.UploadedImage, error) {
	var out models.ImageResponse
	req := h.authedRequest(ctx).
		SetFileReader("image", fileName, content).
		SetResult(&out)
	if err := h.do(req, resty.MethodPost, "/upload-image"); err != nil {
		return models.UploadedImage{}, err
	}
	return out.UploadedImage, nil
}

func (h *httpJournalClient) DeleteImage(ctx context.Context, imageURL string) error {
	return h.do(h.authedRequest(ctx).SetQueryParam("imageUrl", imageURL), resty.MethodDelete, "/delete-image")
}

func (h *httpJournalClient) AddStory(ctx context.Context, req models.TravelStoryRequest) (models.TravelStory, error) {
	return h.story(h.authedRequest(ctx).SetBody(req), resty.MethodPost, "/add-travel-story")
}

func (h *httpJournalClient) ListStories(ctx context.Context) ([]models.TravelStory, error) {
	return h.stories(h.authedRequest(ctx), "/get-all-stories")
}

func (h *httpJournalClient) EditStory(ctx context.Context, storyID int64, req models.TravelStoryRequest) (models.TravelStory, error) {
	return h.story(h.authedRequest(ctx).SetBody(req), resty.MethodPut, "/edit-story/"+strconv.FormatInt(storyID, 10))
}

func (h *httpJournalClient) DeleteStory(ctx context.Context, storyID int64) (models.DeleteStoryResult, error) {
	var out models.DeleteStoryResponse
	req := h.authedRequest(ctx).SetResult(&out)
	if err := h.do(req, resty.MethodDelete, "/delete-story/"+strconv.FormatInt(storyID, 10)); err != nil {
		return models.DeleteStoryResult{}, err
	}
	return out.DeleteStoryResult, nil
}

func (h *httpJournalClient) SetFavourite(ctx context.Context, storyID int64, isFavourite bool) (models.TravelStory, error) {
	req := h.authedRequest(ctx).SetBody(models.FavouriteRequest{IsFavourite: &isFavourite})
	return h.story(req, resty.MethodPut, "/update-isFavourite/"+strconv.FormatInt(storyID, 10))
}

func (h *httpJournalClient) Search(ctx context.Context, query string) ([]models.TravelStory, error) {
	return h.stories(h.authedRequest(ctx).SetQueryParam("query", query), "/search")
}

func (h *httpJournalClient) FilterByVisitedDate(ctx context.Context, start, end time.Time) ([]models.TravelStory, error) {
	req := h.authedRequest(ctx).SetQueryParams(map[string]string{
		"startDate": strconv.FormatInt(start.UnixMilli(), 10),
		"endDate":   strconv.FormatInt(end.UnixMilli(), 10),
	})
	return h.stories(req, "/travel-stories/filter")
}

func (h *httpJournalClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("/api/version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpJournalClient) story(req *resty.Request, method, path string) (models.TravelStory, error) {
	var out models.StoryResponse
	if err := h.do(req.SetResult(&out), method, path); err != nil {
		return models.TravelStory{}, err
	}
	return out.Story, nil
}

func (h *httpJournalClient) stories(req *resty.Request, path string) ([]models.TravelStory, error) {
	var out models.StoriesResponse
	if err := h.do(req.SetResult(&out), resty.MethodGet, path); err != nil {
		return nil, err
	}
	return out.Stories, nil
}

func (h *httpJournalClient) do(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpJournalClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
