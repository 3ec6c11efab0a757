package resistor

import (
	"strings"
)

// rkmExponents maps a multiplier letter to its decimal exponent. The
// letter doubles as the decimal separator, so "4k7" reads 4.7 kΩ.
// 'm' (milli) and 'M' (mega) are case-sensitive; the others are not.
var rkmExponents = map[byte]int{
	'm': -3,
	'R': 0,
	'r': 0,
	'k': 3,
	'K': 3,
	'M': 6,
	'G': 9,
	'g': 9,
}

// ParseRKM parses a resistance string in RKM notation ("4k7", "330R",
// "2M2", "0m5", "R47") or plain decimal notation with an optional
// multiplier suffix ("330", "4.7k"). A trailing "ohm"/"ohms"/"Ω" unit
// suffix is tolerated. The result is an exact Resistance; parsing is
// pure and idempotent.
func ParseRKM(input string) (Resistance, error) {
	s := strings.TrimSpace(input)
	s = trimUnitSuffix(s)
	if s == "" {
		return Resistance{}, NewParseError(ParseInvalidFormat, input, "no digits present")
	}

	var (
		digits    []int
		fracCount int     // digits after a '.' or after the multiplier letter
		letter    byte    // multiplier letter, 0 if absent
		seenDot   bool    // '.' encountered
		afterMark bool    // currently past the '.' or the letter
	)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= '0' && ch <= '9':
			digits = append(digits, int(ch-'0'))
			if afterMark {
				fracCount++
			}
		case ch == '.':
			if seenDot || letter != 0 {
				return Resistance{}, NewParseError(ParseInvalidFormat, input, "misplaced decimal point")
			}
			seenDot = true
			afterMark = true
		default:
			if _, ok := rkmExponents[ch]; !ok {
				return Resistance{}, NewParseError(ParseInvalidFormat, input,
					"unexpected character "+string(rune(ch)))
			}
			if letter != 0 {
				return Resistance{}, NewParseError(ParseInvalidFormat, input, "multiple multiplier letters")
			}
			letter = ch
			if seenDot {
				// "4.7k" form: the letter must be a pure suffix.
				if i != len(s)-1 {
					return Resistance{}, NewParseError(ParseInvalidFormat, input,
						"digits after both decimal point and multiplier letter")
				}
			} else {
				afterMark = true
				fracCount = 0
			}
		}
	}
	if len(digits) == 0 {
		return Resistance{}, NewParseError(ParseInvalidFormat, input, "no digits present")
	}

	base := 0
	if letter != 0 {
		base = rkmExponents[letter]
	}
	exponent := base - fracCount

	r, err := NewResistance(digits, exponent)
	if err != nil {
		return Resistance{}, NewParseError(ParseInvalidFormat, input, err.Error())
	}
	if len(r.Digits()) > maxDigitBands {
		return Resistance{}, NewParseError(ParseTooManySignificantDigits, input,
			"no band layout has more than 3 digit bands")
	}
	if !r.IsZero() && !multiplierFeasible(r) {
		return Resistance{}, NewParseError(ParseOutOfRange, input,
			"magnitude outside the representable multiplier range")
	}
	return r, nil
}

// maxDigitBands is the digit-band count of the widest layout (5/6 band).
const maxDigitBands = 3

// multiplierFeasible reports whether at least one digit-band layout can
// place the value's multiplier inside the color table's exponent range.
// The band-count specific check happens again in the encoder; this is
// the parser's fast rejection of absurd magnitudes.
func multiplierFeasible(r Resistance) bool {
	n := len(r.digits)
	for _, digitCount := range []int{2, 3} {
		if n > digitCount {
			continue
		}
		mult := r.exponent - (digitCount - n)
		if _, ok := ColorForMultiplier(mult); ok {
			return true
		}
	}
	return false
}

// trimUnitSuffix strips an optional trailing ohm unit: "Ω", "ohm", "ohms".
func trimUnitSuffix(s string) string {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	for _, suffix := range []string{"ohms", "ohm"} {
		if strings.HasSuffix(lower, suffix) {
			return strings.TrimSpace(s[:len(s)-len(suffix)])
		}
	}
	// Both the Greek capital omega and the dedicated ohm sign occur in
	// the wild.
	for _, suffix := range []string{"Ω", "Ω"} {
		if strings.HasSuffix(s, suffix) {
			return strings.TrimSpace(strings.TrimSuffix(s, suffix))
		}
	}
	return s
}
