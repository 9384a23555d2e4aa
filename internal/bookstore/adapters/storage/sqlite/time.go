package sqlite

import (
	"fmt"
	"time"
)

// Timestamp layouts used in TEXT columns. Publishing dates carry no time of
// day; order times keep full precision.
const (
	dateLayout = "2006-01-02"
	timeLayout = "2006-01-02T15:04:05.999999999Z"
)

func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("sqlite: parse date %q: %w", s, err)
	}
	return t, nil
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("sqlite: parse time %q: %w", s, err)
	}
	return t, nil
}
