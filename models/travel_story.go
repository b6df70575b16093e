package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// TravelStory is a single journal entry owned by exactly one user.
type TravelStory struct {
	// ID is the unique identifier of the story in the database.
	ID int64 `json:"id"`

	// Title is the short heading of the story.
	Title string `json:"title"`

	// Story is the free-form narrative text.
	Story string `json:"story"`

	// VisitedLocation is the ordered list of visited place names.
	VisitedLocation Locations `json:"visitedLocation"`

	// IsFavourite marks the story as a favourite. Favourites are always
	// listed before the other stories.
	IsFavourite bool `json:"isFavourite"`

	// UserID is the owner of the story. It never changes after creation.
	UserID int64 `json:"userId"`

	// CreatedOn is set by the database when the story is inserted.
	CreatedOn time.Time `json:"createdOn"`

	// ImageURL is the public URL of the story image.
	ImageURL string `json:"imageUrl"`

	// VisitedDate is the day of the trip.
	VisitedDate time.Time `json:"visitedDate"`
}

// TableName returns the name of the database table
// associated with the TravelStory model.
func (s TravelStory) TableName() string {
	return "travel_stories"
}

// Locations is the ordered list of visited place names. It is persisted as a
// JSON array so that both SQL dialects can store and search it.
type Locations []string

// Value implements [driver.Valuer].
func (l Locations) Value() (driver.Value, error) {
	if l == nil {
		l = Locations{}
	}

	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("error marshaling locations: %w", err)
	}

	return string(b), nil
}

// Scan implements [sql.Scanner].
func (l *Locations) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = Locations{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return errors.New("unsupported type for locations")
	}

	var locations []string
	if err := json.Unmarshal(raw, &locations); err != nil {
		return fmt.Errorf("error unmarshaling locations: %w", err)
	}
	if locations == nil {
		locations = []string{}
	}

	*l = locations
	return nil
}
