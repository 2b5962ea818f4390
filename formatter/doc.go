// Package formatter renders log records into bytes for writer-backed sinks.
//
// Two formatters are provided: TextFormatter for human-readable single-line
// output and JSONFormatter for one JSON object per record. Both implement
// the Formatter interface; FormatTo writes straight to the destination and
// should be preferred on hot paths.
package formatter
