package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Fold applies NFKC compatibility folding and trims surrounding space, so
// full-width digits and separators ("２０２３／０８／２９") read as ASCII.
func Fold(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}
