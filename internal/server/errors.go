// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHTTPHandler = errors.New("no HTTP handler to serve the journal API")
	errNoHTTPAddress = errors.New("no HTTP listen address configured")

	// errListen wraps failures to bind the listen address.
	errListen = errors.New("HTTP server cannot listen")
)
