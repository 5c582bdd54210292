package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the ISO-8601 form used for generated_at: UTC with
// millisecond precision, e.g. 2024-05-01T10:20:30.123Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// safeTimestampLen is the length of a sanitised timestamp such as
// 2024-05-01T10-20-30-123Z.
const safeTimestampLen = len("2006-01-02T15-04-05-000Z")

// Timestamp formats t as an ISO-8601 UTC string.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// SafeTimestamp formats t for use inside a filename. The ':' and '.'
// separators of the time portion are replaced with '-'.
func SafeTimestamp(t time.Time) string {
	return strings.NewReplacer(":", "-", ".", "-").Replace(Timestamp(t))
}

// ParseSafeTimestamp reverses SafeTimestamp.
func ParseSafeTimestamp(s string) (time.Time, error) {
	if len(s) != safeTimestampLen || s[10] != 'T' {
		return time.Time{}, fmt.Errorf("%w: not a filename timestamp: %q", ErrInvalidInput, s)
	}
	b := []byte(s)
	b[13], b[16], b[19] = ':', ':', '.'
	t, err := time.Parse(TimestampLayout, string(b))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return t, nil
}
