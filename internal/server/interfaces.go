package server

// Server is the lifecycle of the API process.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives or
	// the listener fails.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
