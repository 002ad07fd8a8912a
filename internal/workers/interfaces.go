// Package workers groups the client's background processes (currently the
// sync worker) behind one startup contract so cmd/client launches them in a
// single place.
package workers

// Worker is a background process started at application startup.
//
// Run is expected to return quickly after spawning the worker's goroutines;
// long-running loops belong inside the worker, not in Run itself.
type Worker interface {
	Run()
}
