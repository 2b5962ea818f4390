// Package dispatch implements the hub that distributes log records to
// registered sinks.
//
// A Sinker is constructed explicitly with New and threaded through to
// producers; there is no hidden process-wide instance. Out of the box it
// runs synchronously: Dispatch filters by severity and fans the record out
// to every sink on the calling goroutine, in registration order.
//
// Given a backend, Init switches the hub to asynchronous mode: producers
// enqueue onto a bounded drop-oldest queue and return immediately, and a
// single worker task pops, filters and fans out. Producers are never
// blocked and never see an error; when consumers fall behind, the oldest
// queued record is evicted and counted in Metrics.
//
// Shutdown flushes the queue within a bounded timeout, waits for the worker
// to exit its final drain pass, and returns the hub to synchronous mode.
// Init and Shutdown are idempotent and safe to race.
package dispatch
