// Package core defines the shared types used across the sinker module.
//
// It provides the Level type for severity filtering and the Record type
// that represents a single log event.
//
// Levels are ordered by increasing verbosity (None < Error < Warning <
// Info < Debug < Verbose), so a record is delivered iff its level is
// numerically at most the configured threshold. LevelNone as a threshold
// disables all output.
//
// Records are plain values. They carry a creation timestamp, a severity,
// a producer tag and the already-formatted message text; every consumer
// receives its own copy.
package core
