// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// travel journal HTTP handlers and middleware.
//
// All Msg* constants are human-readable strings written into the "message"
// field of JSON response bodies. Keeping them in one place keeps the wording
// consistent throughout the API.
package app

// Success messages.
const (
	MsgRegistrationSuccessful = "Registration Successful"
	MsgLoginSuccessful        = "Login Successful"
	MsgUserFound              = "User found"

	MsgStoryAdded     = "Added Successfully"
	MsgStoryUpdated   = "Update Successful"
	MsgStoryDeleted   = "Travel story deleted successfully"
	MsgStoriesFetched = "Stories fetched successfully"
	MsgImageUploaded  = "Image uploaded successfully"
	MsgImageDeleted   = "Image deleted successfully"
)

// Failure messages that are not derived from a Go error.
const (
	// MsgUserNotFound is returned by login for an unknown e-mail.
	MsgUserNotFound = "user not found"

	// MsgInvalidCredentials is returned by login for a wrong password.
	MsgInvalidCredentials = "invalid credentials"

	// MsgInvalidGzipData is returned when a gzip-encoded body cannot be read.
	MsgInvalidGzipData = "invalid gzip data"

	// MsgTooManyRequests is returned when a client exceeds the auth rate limit.
	MsgTooManyRequests = "too many requests, try again later"
)
