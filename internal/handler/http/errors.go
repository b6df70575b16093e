// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the HTTP layer. Callers can match against them with
// [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrBodyTooLarge is returned when a JSON body exceeds maxJSONBodySize.
	ErrBodyTooLarge = errors.New("request body is too large")

	// ErrInvalidStoryID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidStoryID = errors.New("invalid travel story id")

	// ErrNoImageUploaded is returned when a multipart upload lacks the
	// "image" field.
	ErrNoImageUploaded = errors.New("no image uploaded")

	// ErrImageTooLarge is returned when an upload exceeds the configured limit.
	ErrImageTooLarge = errors.New("image is too large")

	// ErrNoUserInContext is returned when a protected handler runs without
	// the user id the auth middleware stores.
	ErrNoUserInContext = errors.New("no authenticated user")
)
