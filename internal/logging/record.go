package logging

import "strings"

// Standard field names of a JSON log record.
const (
	LevelField   = "level"
	MessageField = "message"
)

// Record is a single structured log record.
//
// Level is the display label and Key is the canonical severity used to pick
// a style. They start out equal modulo case, but upstream stages (padding,
// upper-casing, coloring) may rewrite Level while Key stays put.
type Record struct {
	Key     string
	Level   string
	Message string
	Fields  map[string]any
}

// NewRecord creates a record whose dispatch key is derived from level.
func NewRecord(level, message string) *Record {
	return &Record{
		Key:     KeyOf(level),
		Level:   level,
		Message: message,
	}
}

// KeyOf returns the dispatch key for a display level.
func KeyOf(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}
