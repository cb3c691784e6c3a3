package normalize

import "strings"

// Normalizer turns loosely formatted date-time strings into
// YYYY-MM-DDTHH:MM:SS.mmmZ. The zero value guesses the field order of every
// input, sniffs the time separator and omits the zone suffix; use Default for
// the usual ISO-style output.
type Normalizer struct {
	// Options skips guessing when set.
	Options *FormatOptions
	// TimeSeparator is sniffed per input when zero.
	TimeSeparator rune
	// Joiner goes between date and time. Zero means 'T'.
	Joiner rune
	// Zone appends the ".mmmZ" suffix.
	Zone bool
	// Ambiguity resolves dates that read equally well day-first or month-first.
	Ambiguity AmbiguityPolicy
}

// Default returns a guessing normalizer with a 'T' joiner and zone suffix.
func Default() Normalizer {
	return Normalizer{Joiner: 'T', Zone: true}
}

// DateTime normalizes text to a full date-time string. A missing time reads
// as midnight. ok is false if any component fails validation.
func (n Normalizer) DateTime(text string) (string, bool) {
	date, clock, tail, ok := n.Components(text)
	if !ok {
		return "", false
	}
	if clock == "" {
		clock = "00:00:00"
	} else if !hasDigit(clock) {
		return "", false
	}
	hms, suffix, ok := FormatTime(clock, tail, n.TimeSeparator, n.Zone)
	if !ok {
		return "", false
	}
	joiner := n.Joiner
	if joiner == 0 {
		joiner = 'T'
	}
	return date + string(joiner) + hms + suffix, true
}

// Date normalizes text to YYYY-MM-DD, ignoring any time component.
func (n Normalizer) Date(text string) (string, bool) {
	date, _, _, ok := n.Components(text)
	return date, ok
}

// Components returns the formatted date together with the raw time and
// subsecond tail that followed it. Only the date is validated.
func (n Normalizer) Components(text string) (date, clock, tail string, ok bool) {
	rawDate, clock, tail := SplitDateTime(text)
	if rawDate == "" || hasLetter(rawDate) {
		return "", "", "", false
	}
	opts, ok := n.Resolve(rawDate)
	if !ok {
		return "", "", "", false
	}
	date, ok = FormatDate(rawDate, opts)
	if !ok {
		return "", "", "", false
	}
	return date, clock, tail, true
}

// Resolve returns the options used for a raw date component: the explicit
// Options if set, otherwise the sniffed separator and guessed order. ok is
// false when the ambiguity policy rejects the guess.
func (n Normalizer) Resolve(date string) (FormatOptions, bool) {
	if n.Options != nil {
		return *n.Options, true
	}
	sep := SniffDateSeparator(date)
	order, ok := n.Ambiguity.Resolve(GuessOrder(date, sep))
	return FormatOptions{Order: order, Separator: sep}, ok
}

// SplitDateTime separates text into its raw date, time and subsecond tail.
// 'T' and whitespace both delimit date from time. The tail is whatever follows
// the last '.' when that looks like fractional seconds and a time is present.
func SplitDateTime(text string) (date, clock, tail string) {
	base := strings.TrimSpace(text)
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		head, rest := base[:i], base[i+1:]
		if isSubsecondTail(rest) && len(dateTimeFields(head)) > 1 {
			base, tail = head, rest
		}
	}
	fields := dateTimeFields(base)
	if len(fields) > 0 {
		date = fields[0]
	}
	if len(fields) > 1 {
		clock = fields[1]
	}
	return date, clock, tail
}

func dateTimeFields(s string) []string {
	return strings.Fields(strings.ReplaceAll(s, "T", " "))
}

// NormalizeDateTime normalizes text with a 'T' joiner and ".mmmZ" suffix.
// A nil opts guesses the date format; a zero timeSep sniffs one.
func NormalizeDateTime(text string, opts *FormatOptions, timeSep rune) (string, bool) {
	n := Default()
	n.Options = opts
	n.TimeSeparator = timeSep
	return n.DateTime(text)
}

// NormalizeDate normalizes the date component of text to YYYY-MM-DD.
func NormalizeDate(text string, opts *FormatOptions) (string, bool) {
	n := Default()
	n.Options = opts
	return n.Date(text)
}

// LooksLikeDateTime reports whether NormalizeDateTime would succeed with
// guessed options. A bare time such as "10:10:10" does not qualify.
func LooksLikeDateTime(text string) bool {
	_, ok := NormalizeDateTime(text, nil, 0)
	return ok
}

// NormalizeISODateTime assumes year-month-day with '-' and ':' separators,
// tolerating missing trailing fields.
func NormalizeISODateTime(text string) (string, bool) {
	opts := DefaultOptions()
	return NormalizeDateTime(text, &opts, ':')
}

// NormalizeISODate is the date-only form of NormalizeISODateTime.
func NormalizeISODate(text string) (string, bool) {
	opts := DefaultOptions()
	return NormalizeDate(text, &opts)
}
