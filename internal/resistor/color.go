package resistor

import (
	"fmt"
	"strings"
)

// Color is one of the thirteen standardized resistor band colors.
type Color int

const (
	Black Color = iota
	Brown
	Red
	Orange
	Yellow
	Green
	Blue
	Violet
	Grey
	White
	Gold
	Silver
	Pink
)

// NumColors is the number of distinct band colors.
const NumColors = 13

var colorNames = [NumColors]string{
	"Black", "Brown", "Red", "Orange", "Yellow", "Green", "Blue",
	"Violet", "Grey", "White", "Gold", "Silver", "Pink",
}

// String returns the canonical color name.
func (c Color) String() string {
	if c < 0 || int(c) >= NumColors {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor resolves a color by name, case-insensitively.
// "Gray" is accepted as an alias for Grey.
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "gray" {
		return Grey, nil
	}
	for i, cn := range colorNames {
		if strings.ToLower(cn) == n {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", name)
}

// AllColors returns every color in enumeration order.
func AllColors() []Color {
	colors := make([]Color, NumColors)
	for i := range colors {
		colors[i] = Color(i)
	}
	return colors
}

// colorFacets holds the per-role values a color may carry. A color is
// valid in a band role exactly when the corresponding facet is present,
// so the table below is the single source of truth for role validity.
type colorFacets struct {
	digit         int
	hasDigit      bool
	multiplier    int // decimal exponent
	hasMultiplier bool
	tolerance     float64 // percent
	hasTolerance  bool
	tcr           int // ppm/K
	hasTCR        bool
}

// The multiplier range is 10^-2 (Silver) through 10^9 (White). Pink
// appears on some physical resistors but carries no facet in any of the
// four roles, so it is rejected in every band position.
var facetTable = [NumColors]colorFacets{
	Black:  {digit: 0, hasDigit: true, multiplier: 0, hasMultiplier: true, tcr: 250, hasTCR: true},
	Brown:  {digit: 1, hasDigit: true, multiplier: 1, hasMultiplier: true, tolerance: 1, hasTolerance: true, tcr: 100, hasTCR: true},
	Red:    {digit: 2, hasDigit: true, multiplier: 2, hasMultiplier: true, tolerance: 2, hasTolerance: true, tcr: 50, hasTCR: true},
	Orange: {digit: 3, hasDigit: true, multiplier: 3, hasMultiplier: true, tolerance: 0.05, hasTolerance: true, tcr: 15, hasTCR: true},
	Yellow: {digit: 4, hasDigit: true, multiplier: 4, hasMultiplier: true, tolerance: 0.02, hasTolerance: true, tcr: 25, hasTCR: true},
	Green:  {digit: 5, hasDigit: true, multiplier: 5, hasMultiplier: true, tolerance: 0.5, hasTolerance: true, tcr: 20, hasTCR: true},
	Blue:   {digit: 6, hasDigit: true, multiplier: 6, hasMultiplier: true, tolerance: 0.25, hasTolerance: true, tcr: 10, hasTCR: true},
	Violet: {digit: 7, hasDigit: true, multiplier: 7, hasMultiplier: true, tolerance: 0.1, hasTolerance: true, tcr: 5, hasTCR: true},
	Grey:   {digit: 8, hasDigit: true, multiplier: 8, hasMultiplier: true, tolerance: 0.01, hasTolerance: true, tcr: 1, hasTCR: true},
	White:  {digit: 9, hasDigit: true, multiplier: 9, hasMultiplier: true},
	Gold:   {multiplier: -1, hasMultiplier: true, tolerance: 5, hasTolerance: true},
	Silver: {multiplier: -2, hasMultiplier: true, tolerance: 10, hasTolerance: true},
	Pink:   {},
}

// DigitOf returns the digit value of a color, if it has one.
func DigitOf(c Color) (int, bool) {
	if c < 0 || int(c) >= NumColors {
		return 0, false
	}
	f := facetTable[c]
	return f.digit, f.hasDigit
}

// MultiplierOf returns the multiplier exponent of a color, if it has one.
func MultiplierOf(c Color) (int, bool) {
	if c < 0 || int(c) >= NumColors {
		return 0, false
	}
	f := facetTable[c]
	return f.multiplier, f.hasMultiplier
}

// ToleranceOf returns the tolerance percentage of a color, if it has one.
func ToleranceOf(c Color) (Tolerance, bool) {
	if c < 0 || int(c) >= NumColors {
		return 0, false
	}
	f := facetTable[c]
	return Tolerance(f.tolerance), f.hasTolerance
}

// TCROf returns the temperature coefficient of a color, if it has one.
func TCROf(c Color) (TCR, bool) {
	if c < 0 || int(c) >= NumColors {
		return 0, false
	}
	f := facetTable[c]
	return TCR(f.tcr), f.hasTCR
}

// ColorForDigit returns the color encoding a significant digit 0-9.
func ColorForDigit(digit int) (Color, bool) {
	if digit < 0 || digit > 9 {
		return 0, false
	}
	return Color(digit), true
}

// ColorForMultiplier returns the color encoding a multiplier exponent.
// Defined for exponents -2 through 9; anything else has no color.
func ColorForMultiplier(exponent int) (Color, bool) {
	for i, f := range facetTable {
		if f.hasMultiplier && f.multiplier == exponent {
			return Color(i), true
		}
	}
	return 0, false
}

// ColorForTolerance returns the color encoding an exact tolerance
// percentage. The tolerance set is a finite enumeration, not a range.
func ColorForTolerance(tolerance Tolerance) (Color, bool) {
	for i, f := range facetTable {
		if f.hasTolerance && Tolerance(f.tolerance) == tolerance {
			return Color(i), true
		}
	}
	return 0, false
}

// ColorForTCR returns the color encoding an exact TCR value in ppm/K.
func ColorForTCR(tcr TCR) (Color, bool) {
	for i, f := range facetTable {
		if f.hasTCR && TCR(f.tcr) == tcr {
			return Color(i), true
		}
	}
	return 0, false
}

// BandRole identifies what a band position encodes.
type BandRole int

const (
	RoleDigit BandRole = iota
	RoleMultiplier
	RoleTolerance
	RoleTCR
)

// String returns a human-readable role name.
func (r BandRole) String() string {
	switch r {
	case RoleDigit:
		return "digit"
	case RoleMultiplier:
		return "multiplier"
	case RoleTolerance:
		return "tolerance"
	case RoleTCR:
		return "TCR"
	default:
		return fmt.Sprintf("BandRole(%d)", int(r))
	}
}

// ValidFor reports whether the color carries the facet the role requires.
func (c Color) ValidFor(role BandRole) bool {
	switch role {
	case RoleDigit:
		_, ok := DigitOf(c)
		return ok
	case RoleMultiplier:
		_, ok := MultiplierOf(c)
		return ok
	case RoleTolerance:
		_, ok := ToleranceOf(c)
		return ok
	case RoleTCR:
		_, ok := TCROf(c)
		return ok
	default:
		return false
	}
}

// DigitBandCount returns the number of digit bands for a band count,
// per the standard layout (2 for 3/4 bands, 3 for 5/6 bands).
func DigitBandCount(bandCount int) int {
	if bandCount >= 5 {
		return 3
	}
	return 2
}

// RolesFor returns the role of each band position for a band count.
func RolesFor(bandCount int) ([]BandRole, error) {
	switch bandCount {
	case 3:
		return []BandRole{RoleDigit, RoleDigit, RoleMultiplier}, nil
	case 4:
		return []BandRole{RoleDigit, RoleDigit, RoleMultiplier, RoleTolerance}, nil
	case 5:
		return []BandRole{RoleDigit, RoleDigit, RoleDigit, RoleMultiplier, RoleTolerance}, nil
	case 6:
		return []BandRole{RoleDigit, RoleDigit, RoleDigit, RoleMultiplier, RoleTolerance, RoleTCR}, nil
	default:
		return nil, NewConversionError(ConversionInvalidBandCount,
			fmt.Sprintf("band count must be 3, 4, 5 or 6, got %d", bandCount), nil)
	}
}
