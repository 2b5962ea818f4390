// Package hook adapts an existing line-oriented logging stream into the
// dispatch hub. It reconstructs complete lines from fragmented, possibly
// ANSI-colorized writes, parses the common "L (TIMESTAMP) TAG: MESSAGE"
// shape, and ingests each line as a structured record while preserving the
// original output path.
package hook
