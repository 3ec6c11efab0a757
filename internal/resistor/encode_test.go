package resistor

import (
	"errors"
	"reflect"
	"testing"
)

func tolP(v float64) *Tolerance {
	t := Tolerance(v)
	return &t
}

func tcrP(v int) *TCR {
	t := TCR(v)
	return &t
}

func mustResistance(t *testing.T, digits []int, exponent int) Resistance {
	t.Helper()
	r, err := NewResistance(digits, exponent)
	if err != nil {
		t.Fatalf("NewResistance(%v, %d) error = %v", digits, exponent, err)
	}
	return r
}

func TestEncodeFourBand(t *testing.T) {
	// 4700 Ω ±5% -> Yellow Violet Red Gold.
	bands, err := Encode(ResistorSpec{
		Resistance: mustResistance(t, []int{4, 7}, 2),
		Tolerance:  tolP(5),
		BandCount:  4,
	})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := BandSequence{Yellow, Violet, Red, Gold}
	if !reflect.DeepEqual(bands, want) {
		t.Errorf("Encode(4700 ±5%%, 4 bands) = %v, want %v", bands, want)
	}
}

func TestEncodeTable(t *testing.T) {
	tests := []struct {
		name string
		spec ResistorSpec
		want BandSequence
	}{
		{
			name: "three band 330",
			spec: ResistorSpec{Resistance: mustResistance(t, []int{3, 3}, 1), BandCount: 3},
			want: BandSequence{Orange, Orange, Brown},
		},
		{
			name: "three band pads single digit",
			spec: ResistorSpec{Resistance: mustResistance(t, []int{1}, 0), BandCount: 3},
			want: BandSequence{Brown, Black, Gold}, // 10 x 10^-1
		},
		{
			name: "three band sub-ohm",
			spec: ResistorSpec{Resistance: mustResistance(t, []int{8}, -1), BandCount: 3},
			want: BandSequence{Grey, Black, Silver}, // 80 x 10^-2
		},
		{
			name: "five band 56.0k",
			spec: ResistorSpec{Resistance: mustResistance(t, []int{5, 6}, 3), Tolerance: tolP(1), BandCount: 5},
			want: BandSequence{Green, Blue, Black, Red, Brown}, // 560 x 10^2
		},
		{
			name: "six band with tcr",
			spec: ResistorSpec{Resistance: mustResistance(t, []int{5, 6}, 1), Tolerance: tolP(1), TCR: tcrP(100), BandCount: 6},
			want: BandSequence{Green, Blue, Black, Black, Brown, Brown},
		},
		{
			name: "zero ohm three band",
			spec: ResistorSpec{Resistance: mustResistance(t, []int{0}, 0), BandCount: 3},
			want: BandSequence{Black, Black, Black},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bands, err := Encode(tt.spec)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if !reflect.DeepEqual(bands, tt.want) {
				t.Errorf("Encode() = %v, want %v", bands, tt.want)
			}
		})
	}
}

func TestEncodePrecisionLoss(t *testing.T) {
	// 4 significant digits never fit; 3 significant digits do not fit a
	// 3- or 4-band layout.
	_, err := Encode(ResistorSpec{
		Resistance: mustResistance(t, []int{1, 2, 3}, 0),
		BandCount:  3,
	})
	var encErr *EncodeError
	if !errors.As(err, &encErr) || encErr.Kind != EncodePrecisionLoss {
		t.Errorf("Encode(3 digits, 3 bands) error = %v, want PrecisionLoss", err)
	}
	if !IsPrecisionLoss(err) {
		t.Error("IsPrecisionLoss() should report true")
	}
}

func TestEncodeUnrepresentableMultiplier(t *testing.T) {
	// 0.05 Ω needs 50 x 10^-3; no color encodes 10^-3.
	_, err := Encode(ResistorSpec{
		Resistance: mustResistance(t, []int{5}, -2),
		BandCount:  3,
	})
	var encErr *EncodeError
	if !errors.As(err, &encErr) || encErr.Kind != EncodeUnrepresentableMultiplier {
		t.Errorf("Encode(0.05, 3 bands) error = %v, want UnrepresentableMultiplier", err)
	}
}

func TestEncodeToleranceRequired(t *testing.T) {
	_, err := Encode(ResistorSpec{
		Resistance: mustResistance(t, []int{4, 7}, 2),
		BandCount:  4,
	})
	var encErr *EncodeError
	if !errors.As(err, &encErr) || encErr.Kind != EncodeUnsupportedTolerance {
		t.Errorf("Encode(4 bands, no tolerance) error = %v, want UnsupportedTolerance", err)
	}

	// ±3% is not in the enumerated set.
	_, err = Encode(ResistorSpec{
		Resistance: mustResistance(t, []int{4, 7}, 2),
		Tolerance:  tolP(3),
		BandCount:  4,
	})
	if !errors.As(err, &encErr) || encErr.Kind != EncodeUnsupportedTolerance {
		t.Errorf("Encode(±3%%) error = %v, want UnsupportedTolerance", err)
	}
}

func TestEncodeTCRRequired(t *testing.T) {
	_, err := Encode(ResistorSpec{
		Resistance: mustResistance(t, []int{4, 7}, 2),
		Tolerance:  tolP(5),
		BandCount:  6,
	})
	var encErr *EncodeError
	if !errors.As(err, &encErr) || encErr.Kind != EncodeUnsupportedTCR {
		t.Errorf("Encode(6 bands, no TCR) error = %v, want UnsupportedTcr", err)
	}

	// 42 ppm/K is not in the enumerated set.
	_, err = Encode(ResistorSpec{
		Resistance: mustResistance(t, []int{4, 7}, 2),
		Tolerance:  tolP(5),
		TCR:        tcrP(42),
		BandCount:  6,
	})
	if !errors.As(err, &encErr) || encErr.Kind != EncodeUnsupportedTCR {
		t.Errorf("Encode(42 ppm/K) error = %v, want UnsupportedTcr", err)
	}
}

func TestEncodeInvalidBandCount(t *testing.T) {
	for _, bc := range []int{0, 1, 2, 7} {
		_, err := Encode(ResistorSpec{
			Resistance: mustResistance(t, []int{4, 7}, 2),
			BandCount:  bc,
		})
		var convErr *ConversionError
		if !errors.As(err, &convErr) || convErr.Kind != ConversionInvalidBandCount {
			t.Errorf("Encode(band count %d) error = %v, want InvalidBandCount", bc, err)
		}
	}
}
