package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-travel-journal/models"
)

// dialect captures the SQL differences between PostgreSQL and SQLite.
type dialect struct {
	name        string
	placeholder sq.PlaceholderFormat
	// containsText matches stories whose title, story or any visited
	// location contains the escaped LIKE pattern, ignoring case.
	containsText func(pattern string) sq.Sqlizer
}

var postgresDialect = dialect{
	name:        "pgx",
	placeholder: sq.Dollar,
	containsText: func(pattern string) sq.Sqlizer {
		return sq.Expr(`(title ILIKE ? ESCAPE '\' OR story ILIKE ? ESCAPE '\' OR EXISTS (
			SELECT 1 FROM jsonb_array_elements_text(visited_location) AS loc(name)
			WHERE loc.name ILIKE ? ESCAPE '\'))`, pattern, pattern, pattern)
	},
}

var sqliteDialect = dialect{
	name:        "sqlite3",
	placeholder: sq.Question,
	containsText: func(pattern string) sq.Sqlizer {
		return sq.Expr(`(utf8_lower(title) LIKE utf8_lower(?) ESCAPE '\' OR utf8_lower(story) LIKE utf8_lower(?) ESCAPE '\' OR EXISTS (
			SELECT 1 FROM json_each(travel_stories.visited_location) AS loc
			WHERE utf8_lower(loc.value) LIKE utf8_lower(?) ESCAPE '\'))`, pattern, pattern, pattern)
	},
}

func (d dialect) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.placeholder)
}

var (
	usersTable   = models.User{}.TableName()
	storiesTable = models.TravelStory{}.TableName()

	userColumns  = []string{"id", "full_name", "email", "password_hash", "created_on"}
	storyColumns = []string{
		"id", "title", "story", "visited_location", "is_favourite",
		"user_id", "created_on", "image_url", "visited_date",
	}
	storyOrder = []string{"is_favourite DESC", "created_on DESC", "id DESC"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// likePattern turns free text into a "contains" LIKE pattern with the
// wildcards of the text escaped.
func likePattern(text string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(text)
	return "%" + escaped + "%"
}

// ─── users ────────────────────────────────────────────────────────────────────

func (d dialect) createUser(user models.User) (string, []any, error) {
	return d.builder().
		Insert(usersTable).
		Columns("full_name", "email", "password_hash", "created_on").
		Values(user.FullName, user.Email, user.PasswordHash, user.CreatedOn).
		Suffix(returning(userColumns)).
		ToSql()
}

func (d dialect) findUser(where sq.Eq) (string, []any, error) {
	return d.builder().
		Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

// ─── travel stories ───────────────────────────────────────────────────────────

func (d dialect) createStory(story models.TravelStory) (string, []any, error) {
	return d.builder().
		Insert(storiesTable).
		Columns("title", "story", "visited_location", "is_favourite", "user_id", "created_on", "image_url", "visited_date").
		Values(story.Title, story.Story, story.VisitedLocation, story.IsFavourite, story.UserID, story.CreatedOn, story.ImageURL, story.VisitedDate).
		Suffix(returning(storyColumns)).
		ToSql()
}

func (d dialect) selectStories(userID int64, filters ...sq.Sqlizer) (string, []any, error) {
	where := sq.And{sq.Eq{"user_id": userID}}
	where = append(where, filters...)

	return d.builder().
		Select(storyColumns...).
		From(storiesTable).
		Where(where).
		OrderBy(storyOrder...).
		ToSql()
}

func (d dialect) findStory(storyID, userID int64) (string, []any, error) {
	return d.builder().
		Select(storyColumns...).
		From(storiesTable).
		Where(sq.Eq{"id": storyID, "user_id": userID}).
		ToSql()
}

func (d dialect) updateStory(story models.TravelStory) (string, []any, error) {
	return d.builder().
		Update(storiesTable).
		Set("title", story.Title).
		Set("story", story.Story).
		Set("visited_location", story.VisitedLocation).
		Set("image_url", story.ImageURL).
		Set("visited_date", story.VisitedDate).
		Where(sq.Eq{"id": story.ID, "user_id": story.UserID}).
		Suffix(returning(storyColumns)).
		ToSql()
}

func (d dialect) setFavourite(storyID, userID int64, isFavourite bool) (string, []any, error) {
	return d.builder().
		Update(storiesTable).
		Set("is_favourite", isFavourite).
		Where(sq.Eq{"id": storyID, "user_id": userID}).
		Suffix(returning(storyColumns)).
		ToSql()
}

func (d dialect) deleteStory(storyID, userID int64) (string, []any, error) {
	return d.builder().
		Delete(storiesTable).
		Where(sq.Eq{"id": storyID, "user_id": userID}).
		Suffix(returning(storyColumns)).
		ToSql()
}

func (d dialect) searchStories(userID int64, query string) (string, []any, error) {
	return d.selectStories(userID, d.containsText(likePattern(query)))
}

func (d dialect) filterStoriesByVisitedDate(userID int64, start, end time.Time) (string, []any, error) {
	return d.selectStories(userID,
		sq.GtOrEq{"visited_date": start},
		sq.LtOrEq{"visited_date": end},
	)
}
