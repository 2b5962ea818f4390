package core

import "time"

// Record is a single fully-formatted log message. Records are immutable
// values: they are copied into the dispatch queue and copied again per sink
// at fan-out, so consumers never share mutable state with a producer.
type Record struct {
	Time    time.Time
	Level   Level
	Tag     string
	Message string
}

// NewRecord builds a record stamped with the current time.
func NewRecord(level Level, tag, message string) Record {
	return Record{
		Time:    time.Now(),
		Level:   level,
		Tag:     tag,
		Message: message,
	}
}
