// Package server runs the travel journal HTTP server.
//
// It owns the server lifecycle: startup, stop-signal handling and graceful
// shutdown that lets in-flight requests finish before the process exits.
package server
