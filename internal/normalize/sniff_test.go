package normalize

import "testing"

func TestSniffDateSeparator(t *testing.T) {
	tests := []struct {
		input string
		want  rune
	}{
		{"2023-08-29", '-'},
		{"8.7.1998", '.'},
		{"29/08/1993", '/'},
		{"29·08·1993", '·'},
		{" 2023/08/29 ", '/'},
		{"20230829", 0},
		{"20230829T1934", 0},
		{"202308", '-'},
		{"-2023", '-'},
		{"2023", '-'},
		{"", '-'},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SniffDateSeparator(tt.input); got != tt.want {
				t.Errorf("SniffDateSeparator(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSniffTimeSeparator(t *testing.T) {
	tests := []struct {
		input string
		want  rune
	}{
		{"19:34:39", ':'},
		{"19.34.39", '.'},
		{"19:34.5", ':'},
		{"193439", ':'},
		{":1934", ':'},
	}

	for _, tt := range tests {
		if got := SniffTimeSeparator(tt.input); got != tt.want {
			t.Errorf("SniffTimeSeparator(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSplitFixedWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		order FieldOrder
		want  []string
	}{
		{"ymd long", "19980228", YMD, []string{"1998", "02", "28"}},
		{"dmy long", "28021998", DMY, []string{"28", "02", "1998"}},
		{"mdy long", "02281998", MDY, []string{"02", "28", "1998"}},
		{"strips non-digits", "1998-02-28", YMD, []string{"1998", "02", "28"}},
		{"short", "280298", DMY, []string{"28", "02", "98"}},
		{"seven digits", "1998228", YMD, []string{"1998", "22", "8"}},
		{"seven digits year last", "2821998", DMY, []string{"28", "21", "998"}},
		{"too short", "12345", YMD, []string{"12345"}},
		{"too long", "123456789", YMD, []string{"123456789"}},
		{"empty", "", YMD, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitFixedWidth(tt.input, tt.order)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitFixedWidth(%q) = %q, want %q", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SplitFixedWidth(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}
