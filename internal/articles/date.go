package articles

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	aerrors "git.home.luguber.info/inful/orgsite/internal/articles/errors"
)

// timestampPattern matches org-mode active date stamps such as "<2019-02-06 Wed>".
var timestampPattern = regexp.MustCompile(`^<(\d{4}-\d{2}-\d{2}) ([A-Za-z]{3})>$`)

const (
	dateLayout       = "2006-01-02"
	feedDateLayout   = "Mon, 02 Jan 2006"
	feedMidnightZone = " 00:00:00 +0000"
)

// parseTimestamp converts an org timestamp into UTC midnight of its date.
func parseTimestamp(raw string) (time.Time, error) {
	m := timestampPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q", aerrors.ErrTimestampPattern, raw)
	}
	date, err := time.ParseInLocation(dateLayout, m[1], time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %w", aerrors.ErrInvalidCalendarDate, m[1], err)
	}
	if want := date.Weekday().String()[:3]; !strings.EqualFold(want, m[2]) {
		return time.Time{}, fmt.Errorf("%w: %s is a %s, not %s", aerrors.ErrWeekdayMismatch, m[1], want, m[2])
	}
	return date, nil
}

// formatPublishDate renders the date the way feed readers expect (RFC 1123Z at midnight).
func formatPublishDate(t time.Time) string {
	return t.UTC().Format(feedDateLayout) + feedMidnightZone
}
