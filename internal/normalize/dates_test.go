package normalize

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     time.Time
		wantErr  bool
		notADate bool
	}{
		{
			name:  "iso with millis",
			input: "2023-08-29T19:34:39.678Z",
			want:  time.Date(2023, 8, 29, 19, 34, 39, 678_000_000, time.UTC),
		},
		{
			name:  "day first",
			input: "28/02/1998 10:30",
			want:  time.Date(1998, 2, 28, 10, 30, 0, 0, time.UTC),
		},
		{
			name:    "february 30 rejected by calendar",
			input:   "2023-02-30",
			wantErr: true,
		},
		{
			name:     "not a date",
			input:    "2001-apple",
			wantErr:  true,
			notADate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTime(tt.input, nil, 0)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDateTime(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.notADate != errors.Is(err, ErrNotADate) {
				t.Errorf("ParseDateTime(%q) error = %v, want ErrNotADate %v", tt.input, err, tt.notADate)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDateTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got := ParseDate(" 02/28/1998 ")
	if got == nil {
		t.Fatal("expected a date")
	}
	if want := time.Date(1998, 2, 28, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}

	for _, in := range []string{"", "2023-02-30", "not a date", "10:10:10"} {
		if got := ParseDate(in); got != nil {
			t.Errorf("ParseDate(%q) = %v, want nil", in, got)
		}
	}
}
