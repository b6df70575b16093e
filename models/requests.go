package models

import (
	"bytes"
	"errors"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// ErrInvalidEpochMillis is returned when a visited date cannot be read as an
// integer number of milliseconds since the Unix epoch.
var ErrInvalidEpochMillis = errors.New("invalid epoch milliseconds")

// EpochMillis is a point in time transferred as milliseconds since the Unix
// epoch. Both JSON numbers and numeric strings are accepted.
type EpochMillis int64

// ParseEpochMillis parses a decimal millisecond timestamp (e.g. a query
// parameter).
func ParseEpochMillis(s string) (EpochMillis, error) {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidEpochMillis
	}
	return EpochMillis(ms), nil
}

// Time converts e to a UTC [time.Time].
func (e EpochMillis) Time() time.Time {
	return time.UnixMilli(int64(e)).UTC()
}

// UnmarshalJSON implements [json.Unmarshaler].
func (e *EpochMillis) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 1 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return ErrInvalidEpochMillis
		}
		b = []byte(s)
	}

	parsed, err := ParseEpochMillis(string(b))
	if err != nil {
		return err
	}

	*e = parsed
	return nil
}

// CreateAccountRequest is the body of POST /create-account.
type CreateAccountRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TravelStoryRequest is the body of POST /add-travel-story and
// PUT /edit-story/{id}. Edits validate every field except ImageURL.
type TravelStoryRequest struct {
	Title           string       `json:"title" validate:"required"`
	Story           string       `json:"story" validate:"required"`
	VisitedLocation []string     `json:"visitedLocation" validate:"required"`
	ImageURL        string       `json:"imageUrl" validate:"required"`
	VisitedDate     *EpochMillis `json:"visitedDate" validate:"required"`
}

// FavouriteRequest is the body of PUT /update-isFavourite/{id}.
type FavouriteRequest struct {
	IsFavourite *bool `json:"isFavourite" validate:"required"`
}

// SearchRequest carries the query of GET /search.
type SearchRequest struct {
	Query string `validate:"required"`
}

// DateRangeRequest carries the bounds of GET /travel-stories/filter.
// Both bounds are inclusive.
type DateRangeRequest struct {
	StartDate *EpochMillis `validate:"required"`
	EndDate   *EpochMillis `validate:"required"`
}
