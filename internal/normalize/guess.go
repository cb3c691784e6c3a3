package normalize

import "strconv"

// Plausible year range for separator-less digit strings.
const (
	minFixedYear = 1800
	maxFixedYear = 2200
)

// GuessOrder classifies the probable field order of a date string from the
// magnitude of its numeric fields. A zero sep means the string is a
// fixed-width digit run.
func GuessOrder(date string, sep rune) OrderGuess {
	if sep == 0 {
		return guessFixedWidth(date)
	}

	parts := digitSegments(date, sep)
	n := len(parts)
	firstLen := 0
	if n > 0 {
		firstLen = len(parts[0])
	}
	if firstLen < 4 && n < 3 {
		return NotADate
	}
	// a leading 4-digit group is a year
	if n < 2 || firstLen == 4 {
		return YearFirst
	}

	first := parseUint16(parts[0])
	if n == 2 {
		if first < 13 {
			return DayFirst
		}
		return YearFirst
	}
	second, third := parseUint16(parts[1]), parseUint16(parts[2])
	switch {
	case first > 31:
		return YearFirst
	case first < 13:
		if second > 12 && third > 31 {
			return MonthFirst
		}
		return DayOrMonthFirst
	case third > 31:
		return DayFirst
	default:
		return YearFirst
	}
}

func guessFixedWidth(date string) OrderGuess {
	if parts := SplitFixedWidth(date, YMD); len(parts) == 3 {
		y, m, d := parseUint16(parts[0]), parseUint16(parts[1]), parseUint16(parts[2])
		if len(parts[0]) == 4 && y >= minFixedYear && y <= maxFixedYear && m <= 12 && d <= 31 {
			return YearFirst
		}
	} else {
		return NotADate
	}

	parts := SplitFixedWidth(date, DMY)
	first, second, y := parseUint16(parts[0]), parseUint16(parts[1]), parseUint16(parts[2])
	if y < minFixedYear || y > maxFixedYear {
		return YearFirst
	}
	switch {
	case first <= 31 && second <= 12:
		if first > 12 {
			return DayFirst
		}
		return DayOrMonthFirst
	case first <= 12 && second <= 31:
		return MonthFirst
	default:
		return NotADate
	}
}

// parseUint16 returns 0 for anything that is not a 16-bit unsigned integer.
// Only the order heuristics and the subsecond tail may coerce this way.
func parseUint16(s string) uint16 {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0
	}
	return uint16(v)
}
