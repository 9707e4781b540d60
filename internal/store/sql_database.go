package store

import (
	"database/sql"
	"time"

	"github.com/vitalog/vitalog/internal/logger"
)

// DB wraps the standard sql.DB with the application logger and, on the
// server side, an error classifier for driver-specific failures.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Timestamps are stored as RFC 3339 strings in SQLite; the empty string
// stands for "no server revision yet".
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

func parseTimePtr(s string) (*time.Time, error) {
	t, err := parseTime(s)
	if err != nil || t.IsZero() {
		return nil, err
	}
	return &t, nil
}
