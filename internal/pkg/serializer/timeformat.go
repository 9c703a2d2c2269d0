package serializer

import (
	"fmt"
	"time"

	"github.com/sirboldilox/hrsdb/internal/domain/records"
)

// CanonicalTimeFormat is the single textual date/time representation used
// for all external serialization and parsing.
const CanonicalTimeFormat = "2006/01/02 15:04:05"

// FormatTime renders a time in the canonical format.
func FormatTime(t time.Time) string {
	return t.Format(CanonicalTimeFormat)
}

// ParseTime is the inverse of FormatTime. A string that does not match the
// canonical format is a validation failure.
func ParseTime(value string) (time.Time, error) {
	t, err := time.Parse(CanonicalTimeFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid datetime %q: expected format %s", records.ErrValidation, value, CanonicalTimeFormat)
	}
	return t, nil
}
