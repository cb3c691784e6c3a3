package normalize

import "testing"

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		samples []string
		want    FormatOptions
	}{
		{
			name:    "us slashes",
			samples: []string{"07/08/1998", "09/10/2021", "12/15/2022", "11/09/1999"},
			want:    MDYWith('/'),
		},
		{
			name:    "day first slashes",
			samples: []string{"08/07/1998", "10/09/2021", "15/12/2022", "09/11/1999"},
			want:    DMYWith('/'),
		},
		{
			name:    "german dots",
			samples: []string{"8.7.1998", "10.9.2021", "15.12.2022", "9.11.1999"},
			want:    DMYWith('.'),
		},
		{
			name:    "french hyphens",
			samples: []string{"08-07-1998", "10-09-2021", "15-12-2022", "09-11-1999"},
			want:    DMYWith('-'),
		},
		{
			name:    "iso",
			samples: []string{"1998-07-08", "2021-09-10", "2022-12-15", "1999-11-09"},
			want:    YMDWith('-'),
		},
		{
			name:    "fixed width",
			samples: []string{"08071998", "28021998"},
			want:    FixedDMY(),
		},
		{
			name:    "date times",
			samples: []string{"08/07/1998 10:00", "28/07/1998 11:00"},
			want:    DMYWith('/'),
		},
		{
			name:    "skips blanks and non-dates",
			samples: []string{"", "   ", "hello", "10:10:10", "12/25/2021"},
			want:    MDYWith('/'),
		},
		{
			name:    "inconclusive falls back",
			samples: []string{"08/07/1998", "01/02/2003"},
			want:    DefaultOptions(),
		},
		{
			name:    "empty",
			samples: nil,
			want:    DefaultOptions(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(tt.samples); got != tt.want {
				t.Errorf("DetectFormat(%q) = %v, want %v", tt.samples, got, tt.want)
			}
		})
	}
}

func TestDetector_Fallback(t *testing.T) {
	d := Detector{Fallback: DMYWith('.')}
	got, ok := d.Detect([]string{"01.02.2003"})
	if ok {
		t.Error("expected inconclusive detection")
	}
	if got != DMYWith('.') {
		t.Errorf("got %v, want configured fallback", got)
	}

	got, ok = d.Detect([]string{"01.02.2003", "2003.02.01"})
	if !ok || got != YMDWith('.') {
		t.Errorf("got (%v, %v), want (ymd '.', true)", got, ok)
	}
}

func TestDetectFormatFunc(t *testing.T) {
	type specialDay struct {
		name string
		date *string
	}
	str := func(s string) *string { return &s }

	rows := []specialDay{
		{name: "Unknown", date: nil},
		{name: "Independence Day", date: str("07/04/1776")},
		{name: "Christmas Day", date: str("12/25/2021")},
		{name: "New Year's Day", date: str("01/01/2022")},
	}

	got := DetectFormatFunc(rows, func(d specialDay) (string, bool) {
		if d.date == nil {
			return "", false
		}
		return *d.date, true
	})
	if got != MDYWith('/') {
		t.Errorf("DetectFormatFunc = %v, want mdy '/'", got)
	}
}

func TestDetectThenNormalize(t *testing.T) {
	samples := []string{"07/08/1998", "09/10/2021", "12/15/2022"}
	opts := DetectFormat(samples)

	want := []string{"1998-07-08", "2021-09-10", "2022-12-15"}
	for i, s := range samples {
		got, ok := NormalizeDate(s, &opts)
		if !ok || got != want[i] {
			t.Errorf("NormalizeDate(%q) = (%q, %v), want %q", s, got, ok, want[i])
		}
	}
}
