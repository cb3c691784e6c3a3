package normalize

import (
	"slices"
	"strings"
	"unicode"
)

var (
	dateSeparators = []rune{'.', '·', '-', '/'}
	timeSeparators = []rune{':', '.'}
)

// fixedWidthMinDigits is the shortest separator-less digit run treated as a
// fixed-width date (YYYYMMDD and friends).
const fixedWidthMinDigits = 8

// SniffDateSeparator returns the first recognised date separator in s,
// ignoring the first and last characters. It returns 0 when s looks like a
// fixed-width digit string and '-' when nothing better can be inferred.
func SniffDateSeparator(s string) rune {
	if sep := sniffSeparator(s, dateSeparators); sep != 0 {
		return sep
	}
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, 'T'); i > 0 {
		s = s[:i]
	}
	if countDigits(s) >= fixedWidthMinDigits {
		return 0
	}
	return '-'
}

// SniffTimeSeparator returns the first ':' or '.' inside s, or ':' if none.
func SniffTimeSeparator(s string) rune {
	if sep := sniffSeparator(s, timeSeparators); sep != 0 {
		return sep
	}
	return ':'
}

func sniffSeparator(s string, candidates []rune) rune {
	rs := []rune(strings.TrimSpace(s))
	for i := 1; i < len(rs)-1; i++ {
		if slices.Contains(candidates, rs[i]) {
			return rs[i]
		}
	}
	return 0
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isDigits reports whether s is non-empty and made only of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

// digitSegments splits s on sep and keeps only the all-digit pieces.
func digitSegments(s string, sep rune) []string {
	var out []string
	for _, part := range strings.Split(s, string(sep)) {
		if isDigits(part) {
			out = append(out, part)
		}
	}
	return out
}
