package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-travel-journal/internal/app"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/service"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/models"
)

// maxJSONBodySize caps JSON request bodies. Stories are text only, images
// travel through /upload-image.
const maxJSONBodySize = 1 << 20

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateAccountRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("account created")

	utils.WriteJSON(w, models.AuthResponse{
		Response:    models.Response{Message: app.MsgRegistrationSuccessful},
		User:        registeredUser.Summary(),
		AccessToken: token.SignedString,
	}, http.StatusCreated)
}

// login answers 400 for every credential problem, unknown e-mail included.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Debug().Err(err).Msg("no user was found")
			writeErrorStatus(w, http.StatusBadRequest, app.MsgUserNotFound)
		case errors.Is(err, service.ErrWrongPassword):
			log.Debug().Err(err).Msg("wrong password")
			writeErrorStatus(w, http.StatusBadRequest, app.MsgInvalidCredentials)
		default:
			writeError(w, r, err)
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{
		Response:    models.Response{Message: app.MsgLoginSuccessful},
		User:        foundUser.Summary(),
		AccessToken: token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{
		Response: models.Response{Message: app.MsgUserFound},
		User:     user,
	}, http.StatusOK)
}

// decodeBody decodes the JSON request body into dst. Bodies over
// maxJSONBodySize yield ErrBodyTooLarge, every other failure ErrInvalidJSON.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	var body io.Reader
	if r.Body != nil {
		body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)
	}

	err := utils.DecodeJSON(body, dst)
	if err == nil {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return ErrBodyTooLarge
	}
	return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
}

func userIDFromRequest(r *http.Request) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, ErrNoUserInContext
	}
	return userID, nil
}
