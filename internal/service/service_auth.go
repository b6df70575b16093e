package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/MKhiriev/go-travel-journal/internal/validators"
	"github.com/MKhiriev/go-travel-journal/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks registration and login payloads before any lookup.
	validator validators.Validator

	// hashCost is the bcrypt cost used for new password hashes. Existing
	// hashes keep the cost they were created with.
	hashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		hashCost:       cfg.PasswordHashCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new account.
//
// The e-mail is trimmed and lower-cased before it is checked and stored, so
// addresses differing only in case belong to the same account.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if a field is missing or the e-mail is malformed.
//   - store.ErrEmailAlreadyExists if the e-mail is taken.
//   - A wrapped storage error if the repository call fails.
func (a *authService) RegisterUser(ctx context.Context, req models.CreateAccountRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("invalid account data provided")
		return models.User{}, invalidData(err)
	}

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Warn().Str("email", req.Email).Msg("e-mail is already registered")
		return models.User{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("email", req.Email).Msg("user search by e-mail failed")
		return models.User{}, fmt.Errorf("user search by e-mail failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return models.User{}, ErrPasswordTooLong
	}
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing account.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if the e-mail or password is empty.
//   - store.ErrNoUserWasFound (wrapped) if no account uses the e-mail.
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("invalid login data provided")
		return models.User{}, invalidData(err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by e-mail failed")
		return models.User{}, fmt.Errorf("user search by e-mail failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// GetUser returns the account of userID or a wrapped store.ErrNoUserWasFound.
func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// An expired token yields ErrTokenIsExpired. Every other failure (bad
// signature, wrong issuer, malformed) yields ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// invalidData marks a validator error as ErrInvalidDataProvided.
func invalidData(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
