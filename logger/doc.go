// Package logger is the producer-facing API. A Logger is an immutable
// value holding a hub reference and a tag; it formats messages with the
// fmt verbs and dispatches the resulting records.
//
// Level checks happen before any formatting, so filtered-out messages cost
// a single atomic load and an integer comparison.
//
// Loggable can be embedded by components that want a dedicated tagged
// logger without threading one through every call.
package logger
