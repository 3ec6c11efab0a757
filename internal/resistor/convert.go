package resistor

import (
	"fmt"
)

// TolerancePolicy controls how a decoded 3-band resistor reports its
// tolerance. Standards bodies differ on whether a missing tolerance band
// means "unspecified" or the conventional ±20%, so the choice is an
// explicit configuration rather than a hidden default.
type TolerancePolicy int

const (
	// ToleranceUnspecified leaves the tolerance absent for 3-band
	// resistors. This is the default.
	ToleranceUnspecified TolerancePolicy = iota
	// ToleranceConventional20 fills in the conventional ±20% for 3-band
	// resistors.
	ToleranceConventional20
)

// String returns the policy name as used in configuration files.
func (p TolerancePolicy) String() string {
	switch p {
	case ToleranceUnspecified:
		return "unspecified"
	case ToleranceConventional20:
		return "conventional20"
	default:
		return fmt.Sprintf("TolerancePolicy(%d)", int(p))
	}
}

// ParseTolerancePolicy resolves a policy by its configuration name.
func ParseTolerancePolicy(name string) (TolerancePolicy, error) {
	switch name {
	case "", "unspecified":
		return ToleranceUnspecified, nil
	case "conventional20", "20%":
		return ToleranceConventional20, nil
	default:
		return 0, fmt.Errorf("unknown tolerance policy %q (want unspecified or conventional20)", name)
	}
}

// Converter is the conversion facade. It orchestrates the parser,
// encoder and decoder for the two supported directions and applies the
// configured three-band tolerance policy. The zero value is usable.
type Converter struct {
	ThreeBand TolerancePolicy
}

// NewConverter creates a facade with the given three-band policy.
func NewConverter(policy TolerancePolicy) *Converter {
	return &Converter{ThreeBand: policy}
}

// SpecsToColors converts a resistance string plus optional tolerance and
// TCR into the color bands of a resistor with the given band count.
func (c *Converter) SpecsToColors(resistance string, tolerance *Tolerance, tcr *TCR, bandCount int) (BandSequence, error) {
	if bandCount < 3 || bandCount > 6 {
		return nil, NewConversionError(ConversionInvalidBandCount,
			fmt.Sprintf("band count must be 3, 4, 5 or 6, got %d", bandCount), nil)
	}
	if tolerance != nil && bandCount == 3 {
		return nil, NewConversionError(ConversionBandCountMismatch,
			"a 3-band resistor has no tolerance band", nil)
	}
	if tcr != nil && bandCount != 6 {
		return nil, NewConversionError(ConversionBandCountMismatch,
			fmt.Sprintf("a %d-band resistor has no TCR band", bandCount), nil)
	}

	r, err := ParseRKM(resistance)
	if err != nil {
		return nil, wrapConversion(err)
	}
	bands, err := Encode(ResistorSpec{
		Resistance: r,
		Tolerance:  tolerance,
		TCR:        tcr,
		BandCount:  bandCount,
	})
	if err != nil {
		return nil, wrapConversion(err)
	}
	return bands, nil
}

// ColorsToSpecs reconstructs the resistor specification from its color
// bands. The sequence length must match the declared band count.
func (c *Converter) ColorsToSpecs(bands BandSequence, bandCount int) (ResistorSpec, error) {
	if bandCount < 3 || bandCount > 6 {
		return ResistorSpec{}, NewConversionError(ConversionInvalidBandCount,
			fmt.Sprintf("band count must be 3, 4, 5 or 6, got %d", bandCount), nil)
	}
	if len(bands) != bandCount {
		return ResistorSpec{}, NewConversionError(ConversionBandCountMismatch,
			fmt.Sprintf("got %d colors for a %d-band resistor", len(bands), bandCount), nil)
	}
	spec, err := Decode(bands, bandCount)
	if err != nil {
		return ResistorSpec{}, wrapConversion(err)
	}
	if spec.BandCount == 3 && spec.Tolerance == nil && c.ThreeBand == ToleranceConventional20 {
		t := Tolerance(20)
		spec.Tolerance = &t
	}
	return spec, nil
}

// Determine picks the smallest band count able to carry the given
// inputs and encodes them: 3 bands for a bare resistance, 4 or 5 with a
// tolerance (depending on significant digits), 6 with a TCR. Returns
// the bands and the chosen band count.
func (c *Converter) Determine(resistance string, tolerance *Tolerance, tcr *TCR) (BandSequence, int, error) {
	r, err := ParseRKM(resistance)
	if err != nil {
		return nil, 0, wrapConversion(err)
	}
	bandCount := 3
	switch {
	case tcr != nil:
		if tolerance == nil {
			return nil, 0, NewConversionError(ConversionBandCountMismatch,
				"a TCR takes 6 bands, which also carry a tolerance band", nil)
		}
		bandCount = 6
	case tolerance != nil:
		bandCount = 4
		if len(r.Digits()) == 3 {
			bandCount = 5
		}
	case len(r.Digits()) == 3:
		// Three significant digits need a tolerance band layout.
		return nil, 0, NewConversionError(ConversionEncode, "",
			NewEncodeError(EncodePrecisionLoss, "a 3-digit resistance needs a tolerance"))
	}
	bands, err := Encode(ResistorSpec{
		Resistance: r,
		Tolerance:  tolerance,
		TCR:        tcr,
		BandCount:  bandCount,
	})
	if err != nil {
		return nil, 0, wrapConversion(err)
	}
	return bands, bandCount, nil
}

var defaultConverter = &Converter{}

// SpecsToColors converts using the default facade (tolerance policy
// "unspecified").
func SpecsToColors(resistance string, tolerance *Tolerance, tcr *TCR, bandCount int) (BandSequence, error) {
	return defaultConverter.SpecsToColors(resistance, tolerance, tcr, bandCount)
}

// ColorsToSpecs converts using the default facade.
func ColorsToSpecs(bands BandSequence, bandCount int) (ResistorSpec, error) {
	return defaultConverter.ColorsToSpecs(bands, bandCount)
}

// Determine converts using the default facade, choosing the band count.
func Determine(resistance string, tolerance *Tolerance, tcr *TCR) (BandSequence, int, error) {
	return defaultConverter.Determine(resistance, tolerance, tcr)
}
