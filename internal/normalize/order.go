package normalize

import (
	"fmt"
	"strings"
)

// FieldOrder is the arrangement of year, month and day within a date string.
type FieldOrder uint8

const (
	YMD FieldOrder = iota
	DMY
	MDY
)

// Indices returns the source positions of the year, month and day fields.
func (o FieldOrder) Indices() (year, month, day int) {
	switch o {
	case DMY:
		return 2, 1, 0
	case MDY:
		return 2, 0, 1
	default:
		return 0, 1, 2
	}
}

func (o FieldOrder) String() string {
	switch o {
	case DMY:
		return "dmy"
	case MDY:
		return "mdy"
	default:
		return "ymd"
	}
}

// ParseFieldOrder accepts "ymd", "dmy" or "mdy" in any case.
func ParseFieldOrder(s string) (FieldOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ymd":
		return YMD, nil
	case "dmy":
		return DMY, nil
	case "mdy":
		return MDY, nil
	}
	return YMD, fmt.Errorf("unknown field order %q (expected ymd, dmy or mdy)", s)
}

// OrderGuess is the verdict of GuessOrder for a single date string.
type OrderGuess uint8

const (
	NotADate OrderGuess = iota
	YearFirst
	DayFirst
	MonthFirst
	// DayOrMonthFirst means both day-first and month-first remain plausible.
	DayOrMonthFirst
)

// Order maps a guess to a field order. Ambiguous guesses resolve to day-first.
func (g OrderGuess) Order() FieldOrder {
	switch g {
	case MonthFirst:
		return MDY
	case DayFirst, DayOrMonthFirst:
		return DMY
	default:
		return YMD
	}
}

// Conclusive reports whether the guess fixes a single field order.
func (g OrderGuess) Conclusive() bool {
	return g == YearFirst || g == DayFirst || g == MonthFirst
}

func (g OrderGuess) String() string {
	switch g {
	case YearFirst:
		return "year-first"
	case DayFirst:
		return "day-first"
	case MonthFirst:
		return "month-first"
	case DayOrMonthFirst:
		return "day-or-month-first"
	default:
		return "not-a-date"
	}
}

// AmbiguityPolicy decides what happens when a date could be read either
// day-first or month-first.
type AmbiguityPolicy uint8

const (
	PreferDayFirst AmbiguityPolicy = iota
	PreferMonthFirst
	RejectAmbiguous
)

// Resolve turns a guess into a field order. ok is false only when the policy
// is RejectAmbiguous and the guess is DayOrMonthFirst.
func (p AmbiguityPolicy) Resolve(g OrderGuess) (FieldOrder, bool) {
	if g != DayOrMonthFirst {
		return g.Order(), true
	}
	switch p {
	case PreferMonthFirst:
		return MDY, true
	case RejectAmbiguous:
		return YMD, false
	default:
		return DMY, true
	}
}

// ParseAmbiguityPolicy accepts "day-first", "month-first" or "reject".
func ParseAmbiguityPolicy(s string) (AmbiguityPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "day-first", "dayfirst":
		return PreferDayFirst, nil
	case "month-first", "monthfirst":
		return PreferMonthFirst, nil
	case "reject":
		return RejectAmbiguous, nil
	}
	return PreferDayFirst, fmt.Errorf("unknown ambiguity policy %q (expected day-first, month-first or reject)", s)
}

// FormatOptions fixes the field order and separator for a date string.
// A zero Separator selects fixed-width digit mode.
type FormatOptions struct {
	Order     FieldOrder
	Separator rune
}

// DefaultOptions is year-month-day with a hyphen.
func DefaultOptions() FormatOptions {
	return FormatOptions{Order: YMD, Separator: '-'}
}

func YMDWith(sep rune) FormatOptions { return FormatOptions{Order: YMD, Separator: sep} }
func DMYWith(sep rune) FormatOptions { return FormatOptions{Order: DMY, Separator: sep} }
func MDYWith(sep rune) FormatOptions { return FormatOptions{Order: MDY, Separator: sep} }

func FixedYMD() FormatOptions { return FormatOptions{Order: YMD} }
func FixedDMY() FormatOptions { return FormatOptions{Order: DMY} }
func FixedMDY() FormatOptions { return FormatOptions{Order: MDY} }

// Fixed reports whether the options describe a separator-less digit string.
func (o FormatOptions) Fixed() bool {
	return o.Separator == 0
}

func (o FormatOptions) String() string {
	if o.Fixed() {
		return o.Order.String() + " (fixed width)"
	}
	return fmt.Sprintf("%s %q", o.Order, o.Separator)
}
