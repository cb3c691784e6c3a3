package normalize

import (
	"fmt"
	"strconv"
	"strings"
)

const minYear = 1000

// FormatDate renders the date component as YYYY-MM-DD. Missing month or day
// fields default to 1. It fails for years below 1000, months above 12, days
// above 31 and fields too large to parse; days-in-month is left to the
// calendar layer.
func FormatDate(date string, opts FormatOptions) (string, bool) {
	var raw []string
	if opts.Fixed() {
		raw = SplitFixedWidth(date, opts.Order)
	} else {
		raw = strings.Split(date, string(opts.Separator))
	}

	var parts [3]uint16
	i := 0
	for _, p := range raw {
		if i == len(parts) {
			break
		}
		if isDigits(p) {
			v, err := strconv.ParseUint(p, 10, 16)
			if err != nil {
				return "", false
			}
			parts[i] = uint16(v)
			i++
		}
	}

	yi, mi, di := opts.Order.Indices()
	year, month, day := parts[yi], parts[mi], parts[di]
	if year < minYear {
		return "", false
	}
	if month == 0 {
		month = 1
	}
	if month > 12 {
		return "", false
	}
	if day == 0 {
		day = 1
	}
	if day > 31 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}
