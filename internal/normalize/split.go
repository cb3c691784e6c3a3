package normalize

// SplitFixedWidth strips every non-digit from s and cuts the remaining 6–8
// digits into three groups in source order. Six digits give 2/2/2; seven or
// eight give a leading or trailing 4-digit year depending on order. Any other
// digit count comes back as a single group, which callers treat as a non-date.
func SplitFixedWidth(s string, order FieldOrder) []string {
	digits := stripNonDigits(s)
	n := len(digits)
	if n < 6 || n > 8 {
		return []string{digits}
	}
	bounds := fixedOffsets(order, n)
	parts := make([]string, 0, 3)
	for _, b := range bounds {
		parts = append(parts, digits[min(b[0], n):min(b[1], n)])
	}
	return parts
}

// fixedOffsets returns the [start, end) byte ranges of the three groups.
func fixedOffsets(order FieldOrder, n int) [3][2]int {
	if n == 6 {
		return [3][2]int{{0, 2}, {2, 4}, {4, 6}}
	}
	if order == YMD {
		return [3][2]int{{0, 4}, {4, 6}, {6, n}}
	}
	return [3][2]int{{0, 2}, {2, 4}, {4, n}}
}
