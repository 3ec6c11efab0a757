package resistor

import (
	"strconv"
	"strings"
)

// Interval returns the guaranteed resistance range in ohms implied by a
// spec's tolerance. With no tolerance the interval collapses to the
// nominal value.
func Interval(spec ResistorSpec) (min, max float64) {
	ohm := spec.Resistance.Value()
	if spec.Tolerance == nil {
		return ohm, ohm
	}
	delta := ohm * float64(*spec.Tolerance) / 100
	return ohm - delta, ohm + delta
}

// engineering prefixes from giga down to milli, matching the multiplier
// range of the color table.
var ohmPrefixes = []struct {
	scale  float64
	symbol string
}{
	{1e9, "GΩ"},
	{1e6, "MΩ"},
	{1e3, "kΩ"},
	{1, "Ω"},
	{1e-3, "mΩ"},
}

// FormatOhms renders an ohm value with an engineering prefix:
// 4700 → "4.7 kΩ", 0.05 → "50 mΩ".
func FormatOhms(ohm float64) string {
	if ohm == 0 {
		return "0 Ω"
	}
	for _, p := range ohmPrefixes {
		if ohm >= p.scale {
			return trimFloat(ohm/p.scale) + " " + p.symbol
		}
	}
	last := ohmPrefixes[len(ohmPrefixes)-1]
	return trimFloat(ohm/last.scale) + " " + last.symbol
}

// trimFloat formats a float without trailing zeros.
func trimFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
