package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// ErrEmptyBody is returned by DecodeJSON when the request carries no body.
var ErrEmptyBody = errors.New("empty request body")

// WriteJSON serializes data to JSON and writes it to the response with the
// given status code and an "application/json" Content-Type.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.Response{Message: "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON decodes the JSON body r into dst. Unknown fields are ignored.
// An absent or blank body yields [ErrEmptyBody]. Read errors, such as
// [http.MaxBytesError] from a capped body, are wrapped and returned.
func DecodeJSON(r io.Reader, dst any) error {
	if r == nil {
		return ErrEmptyBody
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading body: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyBody
	}

	if err = json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("error decoding JSON: %w", err)
	}

	return nil
}
