package brc

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
)

func TestParseTemp(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0.0", 0},
		{"-0.0", 0},
		{"5.0", 50},
		{"9.0", 90},
		{"45.0", 450},
		{"12.3", 123},
		{"-7.8", -78},
		{"-99.9", -999},
		{"99.9", 999},
		{"05.1", 51},
	}
	for _, tt := range tests {
		got, err := ParseTemp([]byte(tt.in))
		if err != nil {
			t.Fatalf("ParseTemp(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseTemp(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseTempInvalid(t *testing.T) {
	for _, in := range []string{
		"", "-", "1", "1.", ".5", "-.5", "12", "123", "1.23",
		"100.0", "-100.0", "a.0", "1.a", "1,5", "+1.5", "--1.5", "1..5", " 1.5", "1.5 ",
	} {
		_, err := ParseTemp([]byte(in))
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("ParseTemp(%q): expected ParseError, got %v", in, err)
		}
	}
}

// every value of the grammar, with and without a leading zero
func TestParseTempRoundTrip(t *testing.T) {
	for v := -999; v <= 999; v++ {
		abs := v
		sign := ""
		if v < 0 {
			abs, sign = -v, "-"
		}
		forms := []string{fmt.Sprintf("%s%d.%d", sign, abs/10, abs%10)}
		if abs < 100 {
			forms = append(forms, fmt.Sprintf("%s%02d.%d", sign, abs/10, abs%10))
		}
		for _, s := range forms {
			got, err := ParseTemp([]byte(s))
			if err != nil {
				t.Fatalf("ParseTemp(%q): %v", s, err)
			}
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				t.Fatalf("strconv.ParseFloat(%q): %v", s, err)
			}
			if float64(got)/10.0 != f {
				t.Fatalf("ParseTemp(%q) = %d, does not reconstruct %v", s, got, f)
			}
		}
	}
}

func BenchmarkParseTemp(b *testing.B) {
	in := []byte("-12.3")
	for i := 0; i < b.N; i++ {
		_, _ = ParseTemp(in)
	}
}
