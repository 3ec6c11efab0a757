package resistor

import (
	"fmt"
)

// Encode maps a ResistorSpec to its ordered color-band sequence.
//
// The significant digits are fitted to the layout's digit-band count:
// shorter sequences are padded with trailing zeros (lowering the
// exponent to preserve the value), longer ones fail with PrecisionLoss
// rather than being rounded. Tolerance is required for 4+ bands and TCR
// for 6 bands; both must come from the color table's enumerated sets.
func Encode(spec ResistorSpec) (BandSequence, error) {
	roles, err := RolesFor(spec.BandCount)
	if err != nil {
		return nil, err
	}
	digitCount := DigitBandCount(spec.BandCount)

	digits := spec.Resistance.Digits()
	exponent := spec.Resistance.Exponent()
	if spec.Resistance.IsZero() {
		// Zero ohm: all-black digit bands and a black multiplier.
		digits = make([]int, digitCount)
		exponent = 0
	}
	if len(digits) > digitCount {
		return nil, NewEncodeError(EncodePrecisionLoss,
			fmt.Sprintf("%d significant digits do not fit %d digit bands",
				len(digits), digitCount))
	}
	for len(digits) < digitCount {
		digits = append(digits, 0)
		exponent--
	}

	bands := make(BandSequence, 0, spec.BandCount)
	for _, d := range digits {
		c, ok := ColorForDigit(d)
		if !ok {
			return nil, NewEncodeError(EncodePrecisionLoss, fmt.Sprintf("digit %d has no color", d))
		}
		bands = append(bands, c)
	}

	multColor, ok := ColorForMultiplier(exponent)
	if !ok {
		return nil, NewEncodeError(EncodeUnrepresentableMultiplier,
			fmt.Sprintf("no color encodes multiplier 10^%d", exponent))
	}
	bands = append(bands, multColor)

	if hasRole(roles, RoleTolerance) {
		if spec.Tolerance == nil {
			return nil, NewEncodeError(EncodeUnsupportedTolerance,
				fmt.Sprintf("a %d-band resistor needs a tolerance", spec.BandCount))
		}
		tolColor, ok := ColorForTolerance(*spec.Tolerance)
		if !ok {
			return nil, NewEncodeError(EncodeUnsupportedTolerance,
				fmt.Sprintf("no color encodes tolerance %s", *spec.Tolerance))
		}
		bands = append(bands, tolColor)
	}

	if hasRole(roles, RoleTCR) {
		if spec.TCR == nil {
			return nil, NewEncodeError(EncodeUnsupportedTCR,
				"a 6-band resistor needs a temperature coefficient")
		}
		tcrColor, ok := ColorForTCR(*spec.TCR)
		if !ok {
			return nil, NewEncodeError(EncodeUnsupportedTCR,
				fmt.Sprintf("no color encodes TCR %s", *spec.TCR))
		}
		bands = append(bands, tcrColor)
	}

	return bands, nil
}

func hasRole(roles []BandRole, role BandRole) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
