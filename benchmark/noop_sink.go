package benchmark

import "github.com/embedlog/sinker/core"

type noopSink struct{}

func (noopSink) Consume(rec core.Record) {
	_ = len(rec.Message)
}
