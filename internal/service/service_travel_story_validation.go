package service

import (
	"context"

	"github.com/MKhiriev/go-travel-journal/internal/validators"
	"github.com/MKhiriev/go-travel-journal/models"
)

// TravelStoryValidationService checks request payloads before handing them
// to the wrapped TravelStoryService.
type TravelStoryValidationService struct {
	inner     TravelStoryService
	validator validators.Validator
}

func NewTravelStoryValidationService(validator validators.Validator) TravelStoryServiceWrapper {
	return &TravelStoryValidationService{
		validator: validator,
	}
}

func (v *TravelStoryValidationService) CreateStory(ctx context.Context, userID int64, req models.TravelStoryRequest) (models.TravelStory, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.TravelStory{}, invalidData(err)
	}

	return v.inner.CreateStory(ctx, userID, req)
}

func (v *TravelStoryValidationService) ListStories(ctx context.Context, userID int64) ([]models.TravelStory, error) {
	return v.inner.ListStories(ctx, userID)
}

func (v *TravelStoryValidationService) EditStory(ctx context.Context, storyID, userID int64, req models.TravelStoryRequest) (models.TravelStory, error) {
	// imageUrl may be blank here
	if err := v.validator.Validate(ctx, req, validators.StoryEditFields...); err != nil {
		return models.TravelStory{}, invalidData(err)
	}

	return v.inner.EditStory(ctx, storyID, userID, req)
}

func (v *TravelStoryValidationService) DeleteStory(ctx context.Context, storyID, userID int64) (models.DeleteStoryResult, error) {
	return v.inner.DeleteStory(ctx, storyID, userID)
}

func (v *TravelStoryValidationService) SetFavourite(ctx context.Context, storyID, userID int64, req models.FavouriteRequest) (models.TravelStory, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.TravelStory{}, invalidData(err)
	}

	return v.inner.SetFavourite(ctx, storyID, userID, req)
}

func (v *TravelStoryValidationService) Search(ctx context.Context, userID int64, req models.SearchRequest) ([]models.TravelStory, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, invalidData(err)
	}

	return v.inner.Search(ctx, userID, req)
}

func (v *TravelStoryValidationService) FilterByDateRange(ctx context.Context, userID int64, req models.DateRangeRequest) ([]models.TravelStory, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, invalidData(err)
	}

	return v.inner.FilterByDateRange(ctx, userID, req)
}

func (v *TravelStoryValidationService) Wrap(wrapper TravelStoryService) TravelStoryService {
	v.inner = wrapper
	return v
}
