// Package workers provides abstractions for managing background workers
// in the client. It defines the Worker interface and a Workers aggregate
// that starts and stops a set of workers as one unit.
package workers

// Worker is the interface implemented by any background worker. Run starts
// the worker and returns immediately; work happens in goroutines the
// implementation owns. Stop signals the worker to exit and blocks until it
// has fully terminated.
type Worker interface {
	Run()
	Stop()
}
