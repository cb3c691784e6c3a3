package normalize

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotADate is returned when a string cannot be normalized into a date.
var ErrNotADate = errors.New("not a date")

// Layout of NormalizeDateTime output.
const isoMillisLayout = "2006-01-02T15:04:05.000Z"

// ParseDateTime normalizes text and builds a UTC time from it. Calendar
// errors the normalizer lets through, such as February 30, fail here.
func ParseDateTime(text string, opts *FormatOptions, timeSep rune) (time.Time, error) {
	n := Default()
	n.Options = opts
	n.TimeSeparator = timeSep
	t, _, err := n.Parse(text)
	return t, err
}

// Parse normalizes text with n's format settings and builds a UTC time from
// the result, which is also returned. Joiner and Zone are ignored.
func (n Normalizer) Parse(text string) (time.Time, string, error) {
	n.Joiner, n.Zone = 'T', true
	s, ok := n.DateTime(text)
	if !ok {
		return time.Time{}, "", fmt.Errorf("%q: %w", text, ErrNotADate)
	}
	t, err := time.Parse(isoMillisLayout, s)
	if err != nil {
		return time.Time{}, s, fmt.Errorf("parse normalized %q: %w", s, err)
	}
	return t, s, nil
}

// ParseDate guesses the format of s and returns the calendar date at midnight UTC.
// Returns nil if the input is empty, unparseable or not a real calendar day.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, ok := NormalizeDate(s, nil)
	if !ok {
		return nil
	}
	t, err := time.Parse(time.DateOnly, d)
	if err != nil {
		return nil
	}
	return &t
}
