package resistor

import (
	"fmt"
	"math"
	"strings"
)

// Tolerance is a resistance tolerance in percent (±).
type Tolerance float64

// String formats the tolerance as "±N%".
func (t Tolerance) String() string {
	return fmt.Sprintf("±%s%%", trimFloat(float64(t)))
}

// TCR is a temperature coefficient of resistance in ppm/K.
type TCR int

// String formats the TCR as "N ppm/K".
func (t TCR) String() string {
	return fmt.Sprintf("%d ppm/K", int(t))
}

// Resistance is an exact decimal resistance value in ohms, represented
// as a sequence of significant digits and a decimal exponent:
//
//	value = digits × 10^exponent
//
// where digits are read as a single integer. The representation is kept
// normalized: no leading zero digit unless the value is zero, and no
// trailing zero digit (trailing zeros fold into the exponent). Zero is
// the single digit 0 with exponent 0.
type Resistance struct {
	digits   []int
	exponent int
}

// NewResistance builds a normalized Resistance from significant digits
// and a decimal exponent. Digits must each be 0-9.
func NewResistance(digits []int, exponent int) (Resistance, error) {
	if len(digits) == 0 {
		return Resistance{}, fmt.Errorf("resistance needs at least one digit")
	}
	for _, d := range digits {
		if d < 0 || d > 9 {
			return Resistance{}, fmt.Errorf("digit %d out of range 0-9", d)
		}
	}
	norm, exp := normalizeDigits(digits, exponent)
	return Resistance{digits: norm, exponent: exp}, nil
}

// normalizeDigits strips leading zeros (which do not affect the value)
// and folds trailing zeros into the exponent, collapsing an all-zero
// sequence to the canonical zero.
func normalizeDigits(digits []int, exponent int) ([]int, int) {
	start := 0
	for start < len(digits)-1 && digits[start] == 0 {
		start++
	}
	digits = digits[start:]
	if len(digits) == 1 && digits[0] == 0 {
		return []int{0}, 0
	}
	end := len(digits)
	for end > 1 && digits[end-1] == 0 {
		end--
		exponent++
	}
	out := make([]int, end)
	copy(out, digits[:end])
	return out, exponent
}

// Digits returns a copy of the significant digit sequence.
func (r Resistance) Digits() []int {
	out := make([]int, len(r.digits))
	copy(out, r.digits)
	return out
}

// Exponent returns the decimal exponent.
func (r Resistance) Exponent() int {
	return r.exponent
}

// IsZero reports whether the value is exactly zero ohms.
func (r Resistance) IsZero() bool {
	return len(r.digits) == 1 && r.digits[0] == 0
}

// Value returns the resistance in ohms as a float64. The exact digit
// representation remains authoritative; Value is for display and
// interval arithmetic only.
func (r Resistance) Value() float64 {
	n := 0
	for _, d := range r.digits {
		n = n*10 + d
	}
	return float64(n) * math.Pow(10, float64(r.exponent))
}

// Equal reports exact equality of two resistance values.
func (r Resistance) Equal(other Resistance) bool {
	if r.exponent != other.exponent || len(r.digits) != len(other.digits) {
		return false
	}
	for i := range r.digits {
		if r.digits[i] != other.digits[i] {
			return false
		}
	}
	return true
}

// String formats the value with an engineering prefix, e.g. "4.7 kΩ".
func (r Resistance) String() string {
	return FormatOhms(r.Value())
}

// RKM formats the value in RKM notation, with the multiplier letter as
// the decimal separator: 4700 Ω renders as "4k7", 330 Ω as "330R",
// 0.0005 Ω as "0m5".
func (r Resistance) RKM() string {
	if r.IsZero() {
		return "0"
	}
	// Highest power of ten in the value.
	order := r.exponent + len(r.digits) - 1

	letter := byte('m')
	letterExp := -3
	for _, cand := range []struct {
		letter byte
		exp    int
	}{{'G', 9}, {'M', 6}, {'k', 3}, {'R', 0}} {
		if order >= cand.exp {
			letter, letterExp = cand.letter, cand.exp
			break
		}
	}

	var b strings.Builder
	frac := letterExp - r.exponent // digit count after the letter
	if frac <= 0 {
		for _, d := range r.digits {
			b.WriteByte(byte('0' + d))
		}
		for i := 0; i < -frac; i++ {
			b.WriteByte('0')
		}
		b.WriteByte(letter)
		return b.String()
	}
	intDigits := len(r.digits) - frac
	if intDigits <= 0 {
		b.WriteByte('0')
		b.WriteByte(letter)
		for i := 0; i < -intDigits; i++ {
			b.WriteByte('0')
		}
		for _, d := range r.digits {
			b.WriteByte(byte('0' + d))
		}
		return b.String()
	}
	for _, d := range r.digits[:intDigits] {
		b.WriteByte(byte('0' + d))
	}
	b.WriteByte(letter)
	for _, d := range r.digits[intDigits:] {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// BandSequence is an ordered sequence of 3 to 6 colors, where position
// determines role.
type BandSequence []Color

// String joins the color names with spaces.
func (b BandSequence) String() string {
	names := make([]string, len(b))
	for i, c := range b {
		names[i] = c.String()
	}
	return strings.Join(names, " ")
}

// ResistorSpec is the canonical aggregate both conversion directions
// produce and consume: an exact resistance, an optional tolerance, an
// optional TCR, and the band count.
type ResistorSpec struct {
	Resistance Resistance
	Tolerance  *Tolerance
	TCR        *TCR
	BandCount  int
}

// Equal reports whether two specs agree in every field.
func (s ResistorSpec) Equal(other ResistorSpec) bool {
	if !s.Resistance.Equal(other.Resistance) || s.BandCount != other.BandCount {
		return false
	}
	if (s.Tolerance == nil) != (other.Tolerance == nil) {
		return false
	}
	if s.Tolerance != nil && *s.Tolerance != *other.Tolerance {
		return false
	}
	if (s.TCR == nil) != (other.TCR == nil) {
		return false
	}
	if s.TCR != nil && *s.TCR != *other.TCR {
		return false
	}
	return true
}
