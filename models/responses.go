package models

// Response is the envelope shared by every JSON response of the API.
// Error is true for failed requests, Message is a human-readable status.
type Response struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// AuthResponse is returned by registration and login.
type AuthResponse struct {
	Response
	User        UserSummary `json:"user"`
	AccessToken string      `json:"accessToken"`
}

// UserResponse is returned by GET /get-user.
type UserResponse struct {
	Response
	User User `json:"user"`
}

// StoryResponse wraps a single travel story.
type StoryResponse struct {
	Response
	Story TravelStory `json:"story"`
}

// StoriesResponse wraps a list of travel stories.
type StoriesResponse struct {
	Response
	Stories []TravelStory `json:"stories"`
}

// ImageResponse is returned by POST /upload-image.
type ImageResponse struct {
	Response
	UploadedImage
}

// DeleteStoryResponse is returned by DELETE /delete-story/{id}.
type DeleteStoryResponse struct {
	Response
	DeleteStoryResult
}
