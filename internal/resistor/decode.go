package resistor

// Decode reconstructs a ResistorSpec from an ordered color-band
// sequence and its declared band count.
//
// A 3-band sequence yields no tolerance: three colors mean "tolerance
// unspecified", never "tolerance is zero". As a deliberate relaxation, a
// 4-color sequence declared as 3-band is re-validated against the
// 4-band layout, treating the trailing color as an explicit tolerance
// band.
func Decode(bands BandSequence, bandCount int) (ResistorSpec, error) {
	if bandCount == 3 && len(bands) == 4 {
		bandCount = 4
	}
	roles, err := RolesFor(bandCount)
	if err != nil {
		return ResistorSpec{}, err
	}
	if len(bands) != bandCount {
		return ResistorSpec{}, NewConversionError(ConversionBandCountMismatch,
			"sequence has a different number of bands than declared", nil)
	}

	var (
		digits     []int
		multiplier int
		tolerance  *Tolerance
		tcr        *TCR
	)
	for i, role := range roles {
		color := bands[i]
		switch role {
		case RoleDigit:
			d, ok := DigitOf(color)
			if !ok {
				return ResistorSpec{}, NewDecodeError(DecodeInvalidDigitColor, color, i)
			}
			digits = append(digits, d)
		case RoleMultiplier:
			m, ok := MultiplierOf(color)
			if !ok {
				return ResistorSpec{}, NewDecodeError(DecodeInvalidMultiplierColor, color, i)
			}
			multiplier = m
		case RoleTolerance:
			t, ok := ToleranceOf(color)
			if !ok {
				return ResistorSpec{}, NewDecodeError(DecodeInvalidToleranceColor, color, i)
			}
			tolerance = &t
		case RoleTCR:
			t, ok := TCROf(color)
			if !ok {
				return ResistorSpec{}, NewDecodeError(DecodeInvalidTCRColor, color, i)
			}
			tcr = &t
		}
	}

	// Black leads the digit bands only on a zero-ohm resistor, where
	// every digit band is Black.
	if digits[0] == 0 {
		zero := true
		for _, d := range digits {
			if d != 0 {
				zero = false
				break
			}
		}
		if !zero {
			return ResistorSpec{}, NewDecodeError(DecodeInvalidDigitColor, bands[0], 0)
		}
	}

	resistance, err := NewResistance(digits, multiplier)
	if err != nil {
		return ResistorSpec{}, err
	}
	return ResistorSpec{
		Resistance: resistance,
		Tolerance:  tolerance,
		TCR:        tcr,
		BandCount:  bandCount,
	}, nil
}
