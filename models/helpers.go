package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DisplayDateLayout is the layout of every Date field in the view models.
const DisplayDateLayout = "Jan 2, 2006"

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify lowercases name and replaces whitespace runs with a hyphen,
// e.g. "Platform Engineering" -> "platform-engineering".
func Slugify(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

// FormatDate renders t in UTC with DisplayDateLayout.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DisplayDateLayout)
}

// ParseDate accepts ISO timestamps, plain dates and display strings.
// Strings without a zone are read as UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DisplayDateLayout, s); err == nil {
		return t, true
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatRawDate converts a raw CMS date into its display form.
// Unparseable or empty input yields "".
func FormatRawDate(raw string) string {
	t, ok := ParseDate(raw)
	if !ok {
		return ""
	}
	return FormatDate(t)
}
