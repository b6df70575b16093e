package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/models"
)

// travelStoryRepository is the SQL implementation of [TravelStoryRepository]
// over the "travel_stories" table. Ownership is part of every WHERE clause,
// so a story of another user can neither be read nor changed.
type travelStoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTravelStoryRepository constructs a [TravelStoryRepository] backed by
// the provided database connection and logger.
func NewTravelStoryRepository(db *DB, logger *logger.Logger) TravelStoryRepository {
	logger.Debug().Msg("creating travel story repository")
	return &travelStoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *travelStoryRepository) CreateStory(ctx context.Context, story models.TravelStory) (models.TravelStory, error) {
	if story.CreatedOn.IsZero() {
		story.CreatedOn = time.Now().UTC()
	}
	story.VisitedDate = story.VisitedDate.UTC()

	query, args, err := r.db.dialect.createStory(story)
	if err != nil {
		return models.TravelStory{}, r.buildError(ctx, "*travelStoryRepository.CreateStory", err)
	}

	created, err := scanStory(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*travelStoryRepository.CreateStory").Msg("error creating story")
		if r.db.errorClassificator.Classify(err) == ForeignKeyViolation {
			return models.TravelStory{}, ErrNoUserWasFound
		}
		return models.TravelStory{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *travelStoryRepository) ListStories(ctx context.Context, userID int64) ([]models.TravelStory, error) {
	query, args, err := r.db.dialect.selectStories(userID)
	if err != nil {
		return nil, r.buildError(ctx, "*travelStoryRepository.ListStories", err)
	}

	return r.queryStories(ctx, "*travelStoryRepository.ListStories", query, args)
}

func (r *travelStoryRepository) FindStory(ctx context.Context, storyID, userID int64) (models.TravelStory, error) {
	query, args, err := r.db.dialect.findStory(storyID, userID)
	if err != nil {
		return models.TravelStory{}, r.buildError(ctx, "*travelStoryRepository.FindStory", err)
	}

	return r.queryStory(ctx, "*travelStoryRepository.FindStory", query, args)
}

// UpdateStory overwrites title, story, visited locations, image URL and
// visited date of the story identified by story.ID and story.UserID.
func (r *travelStoryRepository) UpdateStory(ctx context.Context, story models.TravelStory) (models.TravelStory, error) {
	story.VisitedDate = story.VisitedDate.UTC()

	query, args, err := r.db.dialect.updateStory(story)
	if err != nil {
		return models.TravelStory{}, r.buildError(ctx, "*travelStoryRepository.UpdateStory", err)
	}

	return r.queryStory(ctx, "*travelStoryRepository.UpdateStory", query, args)
}

func (r *travelStoryRepository) SetFavourite(ctx context.Context, storyID, userID int64, isFavourite bool) (models.TravelStory, error) {
	query, args, err := r.db.dialect.setFavourite(storyID, userID, isFavourite)
	if err != nil {
		return models.TravelStory{}, r.buildError(ctx, "*travelStoryRepository.SetFavourite", err)
	}

	return r.queryStory(ctx, "*travelStoryRepository.SetFavourite", query, args)
}

func (r *travelStoryRepository) DeleteStory(ctx context.Context, storyID, userID int64) (models.TravelStory, error) {
	query, args, err := r.db.dialect.deleteStory(storyID, userID)
	if err != nil {
		return models.TravelStory{}, r.buildError(ctx, "*travelStoryRepository.DeleteStory", err)
	}

	return r.queryStory(ctx, "*travelStoryRepository.DeleteStory", query, args)
}

func (r *travelStoryRepository) SearchStories(ctx context.Context, userID int64, query string) ([]models.TravelStory, error) {
	sqlQuery, args, err := r.db.dialect.searchStories(userID, query)
	if err != nil {
		return nil, r.buildError(ctx, "*travelStoryRepository.SearchStories", err)
	}

	return r.queryStories(ctx, "*travelStoryRepository.SearchStories", sqlQuery, args)
}

func (r *travelStoryRepository) FilterStoriesByVisitedDate(ctx context.Context, userID int64, start, end time.Time) ([]models.TravelStory, error) {
	query, args, err := r.db.dialect.filterStoriesByVisitedDate(userID, start.UTC(), end.UTC())
	if err != nil {
		return nil, r.buildError(ctx, "*travelStoryRepository.FilterStoriesByVisitedDate", err)
	}

	return r.queryStories(ctx, "*travelStoryRepository.FilterStoriesByVisitedDate", query, args)
}

// queryStory runs a statement returning at most one story row. An empty
// result means the story does not exist or belongs to somebody else.
func (r *travelStoryRepository) queryStory(ctx context.Context, funcName, query string, args []any) (models.TravelStory, error) {
	story, err := scanStory(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TravelStory{}, ErrStoryNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error querying story")
		return models.TravelStory{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return story, nil
}

func (r *travelStoryRepository) queryStories(ctx context.Context, funcName, query string, args []any) ([]models.TravelStory, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	stories := make([]models.TravelStory, 0)
	for rows.Next() {
		story, err := scanStory(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning story row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		stories = append(stories, story)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating story rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return stories, nil
}

func (r *travelStoryRepository) buildError(ctx context.Context, funcName string, err error) error {
	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error building query")
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}

func scanStory(row rowScanner) (models.TravelStory, error) {
	var story models.TravelStory
	err := row.Scan(
		&story.ID,
		&story.Title,
		&story.Story,
		&story.VisitedLocation,
		&story.IsFavourite,
		&story.UserID,
		&story.CreatedOn,
		&story.ImageURL,
		&story.VisitedDate,
	)
	if err != nil {
		return models.TravelStory{}, err
	}
	story.CreatedOn = story.CreatedOn.UTC()
	story.VisitedDate = story.VisitedDate.UTC()

	return story, nil
}
