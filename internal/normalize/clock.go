package normalize

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTime renders a time-of-day as HH:MM:SS. A zero sep sniffs one; a
// bare run of four digits is read as HHMM and six or more as HHMMSS. When
// zone is set, suffix carries the first three digits of tail as milliseconds plus a
// "Z" marker, e.g. ".678Z". A trailing "Z" on the clock itself is ignored.
func FormatTime(clock, tail string, sep rune, zone bool) (hms, suffix string, ok bool) {
	clock = strings.TrimSpace(clock)
	clock = strings.TrimRight(clock, "Zz")
	segs, ok := timeSegments(clock, sep)
	if !ok || len(segs) == 0 || !isDigits(segs[0]) {
		return "", "", false
	}

	var parts [3]uint8
	i := 0
	for _, s := range segs {
		if i == len(parts) {
			break
		}
		if isDigits(s) {
			v, err := strconv.ParseUint(s, 10, 8)
			if err != nil {
				return "", "", false
			}
			parts[i] = uint8(v)
			i++
		}
	}
	hour, minute, second := parts[0], parts[1], parts[2]
	if hour > 23 || minute > 59 || second > 59 {
		return "", "", false
	}

	hms = fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
	if zone {
		suffix = fmt.Sprintf(".%03dZ", millis(tail))
	}
	return hms, suffix, true
}

func timeSegments(clock string, sep rune) ([]string, bool) {
	if sep == 0 {
		sep = sniffSeparator(clock, timeSeparators)
	}
	if sep != 0 {
		return strings.Split(clock, string(sep)), true
	}
	if isDigits(clock) && len(clock) > 2 {
		if len(clock) != 4 && len(clock) < 6 {
			return nil, false
		}
		// HHMM or HHMMSS; digits past the seconds are ignored.
		segs := make([]string, 0, 3)
		for i := 0; i+2 <= len(clock) && len(segs) < 3; i += 2 {
			segs = append(segs, clock[i:i+2])
		}
		return segs, true
	}
	return strings.Split(clock, ":"), true
}

// millis reads up to the first three characters of a subsecond tail.
// Anything non-numeric counts as zero.
func millis(tail string) uint16 {
	rs := []rune(tail)
	if len(rs) > 3 {
		rs = rs[:3]
	}
	return parseUint16(string(rs))
}

// isSubsecondTail reports whether seg looks like fractional seconds with an
// optional single trailing marker such as a zone letter: "678", "678Z",
// "678123".
func isSubsecondTail(seg string) bool {
	rs := []rune(seg)
	switch {
	case len(rs) < 3:
		return false
	case len(rs) == 3:
		return isDigits(seg)
	default:
		last := rs[len(rs)-1]
		return isDigits(string(rs[:len(rs)-1])) && isAlphanumeric(last)
	}
}

func isAlphanumeric(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
