package resistor

import (
	"reflect"
	"testing"
)

func TestNewResistanceNormalizes(t *testing.T) {
	tests := []struct {
		name     string
		digits   []int
		exponent int
		wantD    []int
		wantE    int
	}{
		{"already normal", []int{4, 7}, 2, []int{4, 7}, 2},
		{"trailing zero folds into exponent", []int{3, 3, 0}, 0, []int{3, 3}, 1},
		{"leading zero dropped", []int{0, 4, 7}, 2, []int{4, 7}, 2},
		{"multiple trailing zeros", []int{2, 0, 0}, 1, []int{2}, 3},
		{"zero collapses", []int{0, 0, 0}, 5, []int{0}, 0},
		{"single zero", []int{0}, 0, []int{0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewResistance(tt.digits, tt.exponent)
			if err != nil {
				t.Fatalf("NewResistance() error = %v", err)
			}
			if !reflect.DeepEqual(r.Digits(), tt.wantD) || r.Exponent() != tt.wantE {
				t.Errorf("NewResistance(%v, %d) = (%v, %d), want (%v, %d)",
					tt.digits, tt.exponent, r.Digits(), r.Exponent(), tt.wantD, tt.wantE)
			}
		})
	}
}

func TestNewResistanceRejectsBadDigits(t *testing.T) {
	if _, err := NewResistance(nil, 0); err == nil {
		t.Error("empty digit sequence should fail")
	}
	if _, err := NewResistance([]int{4, 12}, 0); err == nil {
		t.Error("digit 12 should fail")
	}
	if _, err := NewResistance([]int{-1}, 0); err == nil {
		t.Error("digit -1 should fail")
	}
}

func TestResistanceValue(t *testing.T) {
	tests := []struct {
		digits   []int
		exponent int
		want     float64
	}{
		{[]int{4, 7}, 2, 4700},
		{[]int{3, 3}, 1, 330},
		{[]int{2, 2}, 5, 2.2e6},
		{[]int{5}, -1, 0.5},
		{[]int{0}, 0, 0},
	}
	for _, tt := range tests {
		r, err := NewResistance(tt.digits, tt.exponent)
		if err != nil {
			t.Fatalf("NewResistance() error = %v", err)
		}
		if got := r.Value(); got != tt.want {
			t.Errorf("Value(%v x 10^%d) = %v, want %v", tt.digits, tt.exponent, got, tt.want)
		}
	}
}

func TestResistanceRKM(t *testing.T) {
	tests := []struct {
		digits   []int
		exponent int
		want     string
	}{
		{[]int{4, 7}, 2, "4k7"},
		{[]int{3, 3}, 1, "330R"},
		{[]int{2, 2}, 5, "2M2"},
		{[]int{1}, 9, "1G"},
		{[]int{4, 7}, -1, "4R7"},
		{[]int{5}, -4, "0m5"},
		{[]int{1, 2, 3}, -3, "123m"},
		{[]int{0}, 0, "0"},
	}
	for _, tt := range tests {
		r, err := NewResistance(tt.digits, tt.exponent)
		if err != nil {
			t.Fatalf("NewResistance() error = %v", err)
		}
		if got := r.RKM(); got != tt.want {
			t.Errorf("RKM(%v x 10^%d) = %q, want %q", tt.digits, tt.exponent, got, tt.want)
		}
	}
}

func TestResistanceRKMRoundTrip(t *testing.T) {
	for _, input := range []string{"4k7", "330R", "2M2", "0m5", "1G", "56k", "8R2"} {
		r, err := ParseRKM(input)
		if err != nil {
			t.Fatalf("ParseRKM(%q) error = %v", input, err)
		}
		back, err := ParseRKM(r.RKM())
		if err != nil {
			t.Fatalf("ParseRKM(%q) error = %v", r.RKM(), err)
		}
		if !r.Equal(back) {
			t.Errorf("%q -> %q does not round-trip", input, r.RKM())
		}
	}
}

func TestFormatOhms(t *testing.T) {
	tests := []struct {
		ohm  float64
		want string
	}{
		{0, "0 Ω"},
		{330, "330 Ω"},
		{4700, "4.7 kΩ"},
		{2.2e6, "2.2 MΩ"},
		{1e9, "1 GΩ"},
		{0.5, "500 mΩ"},
		{47, "47 Ω"},
	}
	for _, tt := range tests {
		if got := FormatOhms(tt.ohm); got != tt.want {
			t.Errorf("FormatOhms(%v) = %q, want %q", tt.ohm, got, tt.want)
		}
	}
}

func TestInterval(t *testing.T) {
	tol := Tolerance(5)
	r, _ := NewResistance([]int{4, 7}, 2)
	min, max := Interval(ResistorSpec{Resistance: r, Tolerance: &tol, BandCount: 4})
	if min != 4465 || max != 4935 {
		t.Errorf("Interval(4700 ±5%%) = (%v, %v), want (4465, 4935)", min, max)
	}

	min, max = Interval(ResistorSpec{Resistance: r, BandCount: 3})
	if min != 4700 || max != 4700 {
		t.Errorf("Interval without tolerance = (%v, %v), want nominal", min, max)
	}
}
