package server

// Server is the lifecycle contract for the sync server process.
//
// RunServer blocks until the process receives a stop signal or Shutdown is
// called from another goroutine.
type Server interface {
	// RunServer starts serving sync requests and blocks until the server
	// stops.
	RunServer()

	// Shutdown gracefully stops the server, letting in-flight sync
	// deliveries finish.
	Shutdown()
}
