package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/models"
)

// travelStoryService is the concrete implementation of TravelStoryService.
// Request payloads are expected to be validated by a wrapping
// TravelStoryValidationService; this type only guards against values it
// cannot convert.
type travelStoryService struct {
	// travelStoryRepository is the data-access layer for stories.
	travelStoryRepository store.TravelStoryRepository

	// assetService resolves image URLs and removes images of deleted stories.
	assetService AssetService

	logger *logger.Logger
}

func NewTravelStoryService(travelStoryRepository store.TravelStoryRepository, assetService AssetService, logger *logger.Logger) TravelStoryService {
	return &travelStoryService{
		travelStoryRepository: travelStoryRepository,
		assetService:          assetService,
		logger:                logger,
	}
}

func (s *travelStoryService) CreateStory(ctx context.Context, userID int64, req models.TravelStoryRequest) (models.TravelStory, error) {
	log := logger.FromContext(ctx)

	story, err := storyFromRequest(req)
	if err != nil {
		return models.TravelStory{}, err
	}
	story.UserID = userID

	created, err := s.travelStoryRepository.CreateStory(ctx, story)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("story creation ended with error")
		return models.TravelStory{}, fmt.Errorf("story creation ended with error: %w", err)
	}

	return created, nil
}

func (s *travelStoryService) ListStories(ctx context.Context, userID int64) ([]models.TravelStory, error) {
	stories, err := s.travelStoryRepository.ListStories(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing stories failed")
		return nil, fmt.Errorf("listing stories failed: %w", err)
	}

	return stories, nil
}

// EditStory replaces every editable field of the story. A blank image URL
// resets the story to the placeholder image.
func (s *travelStoryService) EditStory(ctx context.Context, storyID, userID int64, req models.TravelStoryRequest) (models.TravelStory, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(req.ImageURL) == "" {
		req.ImageURL = s.assetService.PlaceholderURL()
	}

	story, err := storyFromRequest(req)
	if err != nil {
		return models.TravelStory{}, err
	}
	story.ID = storyID
	story.UserID = userID

	updated, err := s.travelStoryRepository.UpdateStory(ctx, story)
	if err != nil {
		log.Err(err).Int64("story_id", storyID).Int64("user_id", userID).Msg("story update ended with error")
		return models.TravelStory{}, fmt.Errorf("story update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteStory removes the story row and then tries to remove its image.
// Only the row deletion can fail the call; the image outcome is reported in
// the result.
func (s *travelStoryService) DeleteStory(ctx context.Context, storyID, userID int64) (models.DeleteStoryResult, error) {
	deleted, err := s.travelStoryRepository.DeleteStory(ctx, storyID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("story_id", storyID).Int64("user_id", userID).Msg("story deletion ended with error")
		return models.DeleteStoryResult{}, fmt.Errorf("story deletion ended with error: %w", err)
	}

	return models.DeleteStoryResult{
		StoryID:      deleted.ID,
		ImageURL:     deleted.ImageURL,
		AssetCleanup: s.cleanupImage(context.WithoutCancel(ctx), deleted),
	}, nil
}

func (s *travelStoryService) cleanupImage(ctx context.Context, story models.TravelStory) models.AssetCleanupStatus {
	if _, ok := s.assetService.AssetName(story.ImageURL); !ok {
		return models.AssetCleanupSkipped
	}

	err := s.assetService.DeleteImage(ctx, story.ImageURL)
	switch {
	case err == nil:
		return models.AssetCleanupDeleted
	case errors.Is(err, ErrImageNotFound):
		return models.AssetCleanupMissing
	default:
		logger.FromContext(ctx).Error().Err(err).
			Int64("story_id", story.ID).
			Str("asset_url", story.ImageURL).
			Msg("image of deleted story was not removed")
		return models.AssetCleanupFailed
	}
}

func (s *travelStoryService) SetFavourite(ctx context.Context, storyID, userID int64, req models.FavouriteRequest) (models.TravelStory, error) {
	if req.IsFavourite == nil {
		return models.TravelStory{}, fmt.Errorf("%w: isFavourite is required", ErrInvalidDataProvided)
	}

	updated, err := s.travelStoryRepository.SetFavourite(ctx, storyID, userID, *req.IsFavourite)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("story_id", storyID).Int64("user_id", userID).Msg("favourite update ended with error")
		return models.TravelStory{}, fmt.Errorf("favourite update ended with error: %w", err)
	}

	return updated, nil
}

func (s *travelStoryService) Search(ctx context.Context, userID int64, req models.SearchRequest) ([]models.TravelStory, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, ErrEmptySearchQuery
	}

	stories, err := s.travelStoryRepository.SearchStories(ctx, userID, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Str("query", query).Msg("story search failed")
		return nil, fmt.Errorf("story search failed: %w", err)
	}

	return stories, nil
}

// FilterByDateRange returns stories visited between the two bounds,
// both inclusive.
func (s *travelStoryService) FilterByDateRange(ctx context.Context, userID int64, req models.DateRangeRequest) ([]models.TravelStory, error) {
	if req.StartDate == nil || req.EndDate == nil {
		return nil, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidDataProvided)
	}

	start, end := req.StartDate.Time(), req.EndDate.Time()
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	stories, err := s.travelStoryRepository.FilterStoriesByVisitedDate(ctx, userID, start, end)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("story filtering failed")
		return nil, fmt.Errorf("story filtering failed: %w", err)
	}

	return stories, nil
}

func storyFromRequest(req models.TravelStoryRequest) (models.TravelStory, error) {
	if req.VisitedDate == nil {
		return models.TravelStory{}, fmt.Errorf("%w: visitedDate is required", ErrInvalidDataProvided)
	}

	locations := models.Locations(req.VisitedLocation)
	if locations == nil {
		locations = models.Locations{}
	}

	return models.TravelStory{
		Title:           req.Title,
		Story:           req.Story,
		VisitedLocation: locations,
		ImageURL:        req.ImageURL,
		VisitedDate:     req.VisitedDate.Time(),
	}, nil
}
