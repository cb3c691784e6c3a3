package normalize

import "testing"

func TestGuessOrder_Separated(t *testing.T) {
	tests := []struct {
		input string
		sep   rune
		want  OrderGuess
	}{
		{"1876-08-29", '-', YearFirst},
		{"2023/99/99", '/', YearFirst},
		{"2023", '-', YearFirst},
		{"2023-8", '-', YearFirst},
		{"28/02/1998", '/', DayFirst},
		{"02/28/1998", '/', MonthFirst},
		{"08/07/1998", '/', DayOrMonthFirst},
		{"8.7.1998", '.', DayOrMonthFirst},
		{"15.12.2022", '.', DayFirst},
		{"45-12-10", '-', YearFirst},
		{"20-10-15", '-', YearFirst},
		{"12-05", '-', NotADate},
		{"10:10:10", '-', NotADate},
		{"", '-', NotADate},
		{"12345-12", '-', YearFirst},
		{"00011-12", '-', DayFirst},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := GuessOrder(tt.input, tt.sep); got != tt.want {
				t.Errorf("GuessOrder(%q, %q) = %v, want %v", tt.input, tt.sep, got, tt.want)
			}
		})
	}
}

func TestGuessOrder_FixedWidth(t *testing.T) {
	tests := []struct {
		input string
		want  OrderGuess
	}{
		{"19980228", YearFirst},
		{"28021998", DayFirst},
		{"02281998", MonthFirst},
		{"08071998", DayOrMonthFirst},
		{"99999999", YearFirst},
		{"45131998", NotADate},
		{"12345", NotADate},
		{"202308291934", NotADate},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := GuessOrder(tt.input, 0); got != tt.want {
				t.Errorf("GuessOrder(%q, 0) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGuessOrder_LeadingYearAlwaysWins(t *testing.T) {
	for _, rest := range []string{"01-01", "12-31", "31-12", "99-99", "00-00", "7"} {
		in := "1999-" + rest
		if got := GuessOrder(in, '-'); got != YearFirst {
			t.Errorf("GuessOrder(%q) = %v, want YearFirst", in, got)
		}
	}
}

func TestOrderGuess_Order(t *testing.T) {
	tests := []struct {
		guess      OrderGuess
		want       FieldOrder
		conclusive bool
	}{
		{NotADate, YMD, false},
		{YearFirst, YMD, true},
		{DayFirst, DMY, true},
		{MonthFirst, MDY, true},
		{DayOrMonthFirst, DMY, false},
	}

	for _, tt := range tests {
		if got := tt.guess.Order(); got != tt.want {
			t.Errorf("%v.Order() = %v, want %v", tt.guess, got, tt.want)
		}
		if got := tt.guess.Conclusive(); got != tt.conclusive {
			t.Errorf("%v.Conclusive() = %v, want %v", tt.guess, got, tt.conclusive)
		}
	}
}

func TestAmbiguityPolicy_Resolve(t *testing.T) {
	tests := []struct {
		name   string
		policy AmbiguityPolicy
		guess  OrderGuess
		want   FieldOrder
		wantOK bool
	}{
		{"day-first ambiguous", PreferDayFirst, DayOrMonthFirst, DMY, true},
		{"month-first ambiguous", PreferMonthFirst, DayOrMonthFirst, MDY, true},
		{"reject ambiguous", RejectAmbiguous, DayOrMonthFirst, YMD, false},
		{"reject conclusive", RejectAmbiguous, MonthFirst, MDY, true},
		{"month-first keeps day-first", PreferMonthFirst, DayFirst, DMY, true},
		{"non-date", RejectAmbiguous, NotADate, YMD, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.policy.Resolve(tt.guess)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Resolve(%v) = (%v, %v), want (%v, %v)", tt.guess, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseFieldOrder(t *testing.T) {
	for in, want := range map[string]FieldOrder{"ymd": YMD, "DMY": DMY, " mdy ": MDY} {
		got, err := ParseFieldOrder(in)
		if err != nil {
			t.Fatalf("ParseFieldOrder(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseFieldOrder(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseFieldOrder("ydm"); err == nil {
		t.Error("expected error for unknown order")
	}
}

func TestParseAmbiguityPolicy(t *testing.T) {
	for in, want := range map[string]AmbiguityPolicy{
		"":            PreferDayFirst,
		"day-first":   PreferDayFirst,
		"month-first": PreferMonthFirst,
		"Reject":      RejectAmbiguous,
	} {
		got, err := ParseAmbiguityPolicy(in)
		if err != nil {
			t.Fatalf("ParseAmbiguityPolicy(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseAmbiguityPolicy(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseAmbiguityPolicy("coin-flip"); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestFieldOrder_Indices(t *testing.T) {
	tests := []struct {
		order   FieldOrder
		y, m, d int
	}{
		{YMD, 0, 1, 2},
		{DMY, 2, 1, 0},
		{MDY, 2, 0, 1},
	}
	for _, tt := range tests {
		y, m, d := tt.order.Indices()
		if y != tt.y || m != tt.m || d != tt.d {
			t.Errorf("%v.Indices() = (%d, %d, %d), want (%d, %d, %d)", tt.order, y, m, d, tt.y, tt.m, tt.d)
		}
	}
}
