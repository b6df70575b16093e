package server

import "context"

// Server defines the lifecycle contract of the journal server.
//
// Implementations block in [RunServer] until a stop signal arrives and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Run serves requests until ctx is cancelled or the listener fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
