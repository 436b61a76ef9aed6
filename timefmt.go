package logkit

import (
	"time"

	"go.uber.org/atomic"
)

// TimeFormat renders a record's time. Formats built with NewTimeFormat carry
// an identity that keys the render cache; a TimeFormat literal has none, so
// lines using it are rendered afresh for every transport.
type TimeFormat struct {
	Name   string
	Format func(time.Time) string

	id uint64
}

var timeFormatIDs atomic.Uint64

// NewTimeFormat returns a formatter with its own render cache identity.
func NewTimeFormat(name string, format func(time.Time) string) TimeFormat {
	return TimeFormat{Name: name, Format: format, id: timeFormatIDs.Inc()}
}

// Built-in time formats, all in UTC.
var (
	DateTimeMs = NewTimeFormat("dateTimeMs", layout("2006-01-02 15:04:05.000"))
	DateTime   = NewTimeFormat("dateTime", layout("2006-01-02 15:04:05"))
	TimeMs     = NewTimeFormat("timeMs", layout("15:04:05.000"))
	TimeOnly   = NewTimeFormat("time", layout("15:04:05"))
)

var timeFormats = map[string]TimeFormat{
	DateTimeMs.Name: DateTimeMs,
	DateTime.Name:   DateTime,
	TimeMs.Name:     TimeMs,
	TimeOnly.Name:   TimeOnly,
}

// TimeFormatByName returns a built-in time format.
func TimeFormatByName(name string) (TimeFormat, bool) {
	tf, ok := timeFormats[name]
	return tf, ok
}

func layout(l string) func(time.Time) string {
	return func(t time.Time) string { return t.UTC().Format(l) }
}
