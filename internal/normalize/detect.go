package normalize

import "strings"

// Detector picks one date format for a whole collection by elimination: the
// first sample with a conclusive order fixes the format for every record.
type Detector struct {
	// Fallback is returned when no sample is conclusive.
	Fallback FormatOptions
}

// Detect returns the format of the first conclusive sample. ok is false when
// every sample was ambiguous or not a date, in which case Fallback is returned.
func (d Detector) Detect(samples []string) (FormatOptions, bool) {
	return DetectFunc(d, samples, func(s string) (string, bool) { return s, true })
}

// DetectFunc is Detect for arbitrary records; extract yields the date string
// of a record, or false if it has none. Any time component is ignored.
func DetectFunc[T any](d Detector, records []T, extract func(T) (string, bool)) (FormatOptions, bool) {
	for _, rec := range records {
		s, ok := extract(rec)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		date, _, _ := SplitDateTime(s)
		sep := SniffDateSeparator(date)
		if guess := GuessOrder(date, sep); guess.Conclusive() {
			return FormatOptions{Order: guess.Order(), Separator: sep}, true
		}
	}
	return d.Fallback, false
}

// DetectFormat runs a Detector whose fallback is DefaultOptions.
func DetectFormat(samples []string) FormatOptions {
	opts, _ := Detector{Fallback: DefaultOptions()}.Detect(samples)
	return opts
}

// DetectFormatFunc is DetectFormat for arbitrary records.
func DetectFormatFunc[T any](records []T, extract func(T) (string, bool)) FormatOptions {
	opts, _ := DetectFunc(Detector{Fallback: DefaultOptions()}, records, extract)
	return opts
}
