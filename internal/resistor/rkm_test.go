package resistor

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseRKM(t *testing.T) {
	tests := []struct {
		input string
		wantD []int
		wantE int
	}{
		{"4k7", []int{4, 7}, 2},
		{"330R", []int{3, 3}, 1},
		{"330", []int{3, 3}, 1},
		{"2M2", []int{2, 2}, 5},
		{"0m5", []int{5}, -4},
		{"R47", []int{4, 7}, -2},
		{"1G", []int{1}, 9},
		{"4.7k", []int{4, 7}, 2},
		{"4.7", []int{4, 7}, -1},
		{"56K", []int{5, 6}, 3},
		{"330r", []int{3, 3}, 1},
		{"0", []int{0}, 0},
		{"  470 ", []int{4, 7}, 1},
		{"470 ohm", []int{4, 7}, 1},
		{"4k7 Ω", []int{4, 7}, 2},
		{"1k0", []int{1}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := ParseRKM(tt.input)
			if err != nil {
				t.Fatalf("ParseRKM(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(r.Digits(), tt.wantD) || r.Exponent() != tt.wantE {
				t.Errorf("ParseRKM(%q) = (%v, %d), want (%v, %d)",
					tt.input, r.Digits(), r.Exponent(), tt.wantD, tt.wantE)
			}
		})
	}
}

func TestParseRKMValueExact(t *testing.T) {
	// "4k7" must mean exactly 4700 ohms.
	r, err := ParseRKM("4k7")
	if err != nil {
		t.Fatalf("ParseRKM error = %v", err)
	}
	if r.Value() != 4700 {
		t.Errorf("ParseRKM(\"4k7\").Value() = %v, want 4700", r.Value())
	}
}

func TestParseRKMEquivalentForms(t *testing.T) {
	// "330R" and "330" denote the identical resistance.
	groups := [][]string{
		{"330R", "330", "330 ohm", "0k33"},
		{"4k7", "4.7k", "4700", "4700R"},
		{"2M2", "2200k", "2.2M"},
	}
	for _, group := range groups {
		first, err := ParseRKM(group[0])
		if err != nil {
			t.Fatalf("ParseRKM(%q) error = %v", group[0], err)
		}
		for _, input := range group[1:] {
			r, err := ParseRKM(input)
			if err != nil {
				t.Fatalf("ParseRKM(%q) error = %v", input, err)
			}
			if !r.Equal(first) {
				t.Errorf("ParseRKM(%q) != ParseRKM(%q)", input, group[0])
			}
		}
	}
}

func TestParseRKMIdempotent(t *testing.T) {
	for _, input := range []string{"4k7", "330R", "0m5", "999M"} {
		a, errA := ParseRKM(input)
		b, errB := ParseRKM(input)
		if (errA == nil) != (errB == nil) {
			t.Fatalf("ParseRKM(%q) not deterministic: %v vs %v", input, errA, errB)
		}
		if errA == nil && !a.Equal(b) {
			t.Errorf("ParseRKM(%q) yields different values across calls", input)
		}
	}
}

func TestParseRKMInvalidFormat(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"k",
		"R",
		"abc",
		"4k7k",
		"4x7",
		"4.7.0",
		"4k.7",
		"--4",
		"4 7",
	}
	for _, input := range tests {
		_, err := ParseRKM(input)
		if err == nil {
			t.Errorf("ParseRKM(%q) should fail", input)
			continue
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) || parseErr.Kind != ParseInvalidFormat {
			t.Errorf("ParseRKM(%q) error = %v, want InvalidFormat", input, err)
		}
	}
}

func TestParseRKMTooManySignificantDigits(t *testing.T) {
	for _, input := range []string{"1234", "4k702", "12.345"} {
		_, err := ParseRKM(input)
		var parseErr *ParseError
		if !errors.As(err, &parseErr) || parseErr.Kind != ParseTooManySignificantDigits {
			t.Errorf("ParseRKM(%q) error = %v, want TooManySignificantDigits", input, err)
		}
	}
	// Trailing zeros are not significant.
	if _, err := ParseRKM("47000"); err != nil {
		t.Errorf("ParseRKM(\"47000\") error = %v, trailing zeros should normalize away", err)
	}
}

func TestParseRKMOutOfRange(t *testing.T) {
	for _, input := range []string{"1000G", "0m001"} {
		_, err := ParseRKM(input)
		var parseErr *ParseError
		if !errors.As(err, &parseErr) || parseErr.Kind != ParseOutOfRange {
			t.Errorf("ParseRKM(%q) error = %v, want OutOfRange", input, err)
		}
	}
	// The extremes of the multiplier range still parse.
	for _, input := range []string{"99G", "0R1"} {
		if _, err := ParseRKM(input); err != nil {
			t.Errorf("ParseRKM(%q) error = %v, want success", input, err)
		}
	}
}
