package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-travel-journal/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusRequestEntityTooLarge: ErrTooLarge,
	http.StatusTooManyRequests:       ErrTooManyRequests,
	http.StatusInternalServerError:   ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := responseMessage(resp.Body())
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}

	if target, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", target, msg)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
}

// responseMessage extracts "message" from a JSON envelope and falls back to
// the raw body.
func responseMessage(body []byte) string {
	var envelope models.Response
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return strings.TrimSpace(string(body))
}
