// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDataProvided is the parent of every input validation error.
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrImageNotFound = errors.New("image not found")
)

// Validation errors. Each one matches [ErrInvalidDataProvided] as well.
var (
	ErrEmptySearchQuery = fmt.Errorf("%w: search query is required", ErrInvalidDataProvided)
	ErrInvalidDateRange = fmt.Errorf("%w: end date is before start date", ErrInvalidDataProvided)
	ErrNotImage         = fmt.Errorf("%w: uploaded file is not an image", ErrInvalidDataProvided)
	ErrNoImageProvided  = fmt.Errorf("%w: no image provided", ErrInvalidDataProvided)
	ErrImageURLRequired = fmt.Errorf("%w: image URL is required", ErrInvalidDataProvided)
	ErrInvalidImageURL  = fmt.Errorf("%w: image URL does not point to an uploaded image", ErrInvalidDataProvided)
	ErrPasswordTooLong  = fmt.Errorf("%w: password is too long", ErrInvalidDataProvided)
)
