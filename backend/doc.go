// Package backend abstracts the host primitives the dispatch engine needs
// for asynchronous operation: binary semaphores, background tasks, delays
// and a monotonic millisecond clock.
//
// The engine never assumes a backend exists. Constructing a hub without one
// is fully supported and simply keeps dispatch synchronous.
//
// Go() returns the goroutine-based backend used in ordinary Go programs.
// Ports to constrained hosts implement Backend against their own task and
// semaphore primitives; TaskConfig's stack size, priority and core affinity
// are passed through untouched for them to interpret.
package backend
