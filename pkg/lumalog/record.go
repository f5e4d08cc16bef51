package lumalog

import "time"

// TimestampLayout is used for timestamps in every sink.
const TimestampLayout = "2006-01-02T15:04:05"

// Record is one eligible message on its way to the sinks. It is never stored.
type Record struct {
	Level   Level
	Message string
	// Time is nil when timestamps are disabled.
	Time *time.Time
}

func (r Record) HasTime() bool {
	return r.Time != nil
}

func (r Record) Timestamp() string {
	if !r.HasTime() {
		return ""
	}
	return r.Time.Format(TimestampLayout)
}

// Renderer delivers a record to one sink.
type Renderer interface {
	Render(rec Record) error
}
