package resistor

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapConversionClassifies(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ConversionErrorKind
	}{
		{"parse", NewParseError(ParseInvalidFormat, "4kk7", "multiple letters"), ConversionParse},
		{"encode", NewEncodeError(EncodePrecisionLoss, "too many digits"), ConversionEncode},
		{"decode", NewDecodeError(DecodeInvalidDigitColor, Gold, 0), ConversionDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := wrapConversion(tt.err)

			var convErr *ConversionError
			if !errors.As(wrapped, &convErr) {
				t.Fatalf("wrapConversion(%v) = %T, want *ConversionError", tt.err, wrapped)
			}
			if convErr.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", convErr.Kind, tt.want)
			}
			if !errors.Is(wrapped, tt.err) && errors.Unwrap(wrapped) == nil {
				t.Error("wrapped error lost its cause")
			}
		})
	}
}

func TestConversionErrorUnwrap(t *testing.T) {
	cause := NewParseError(ParseOutOfRange, "1000G", "value too large")
	wrapped := wrapConversion(cause)

	var parseErr *ParseError
	if !errors.As(wrapped, &parseErr) {
		t.Fatal("errors.As could not reach the ParseError through the wrapper")
	}
	if parseErr.Kind != ParseOutOfRange {
		t.Errorf("Kind = %v, want %v", parseErr.Kind, ParseOutOfRange)
	}
}

func TestErrorHelpers(t *testing.T) {
	parseErr := wrapConversion(NewParseError(ParseInvalidFormat, "", "empty input"))
	if !IsParseError(parseErr) {
		t.Error("IsParseError = false for a wrapped ParseError")
	}
	if IsEncodeError(parseErr) {
		t.Error("IsEncodeError = true for a wrapped ParseError")
	}

	lossErr := wrapConversion(NewEncodeError(EncodePrecisionLoss, "4 digits"))
	if !IsEncodeError(lossErr) {
		t.Error("IsEncodeError = false for a wrapped EncodeError")
	}
	if !IsPrecisionLoss(lossErr) {
		t.Error("IsPrecisionLoss = false for a wrapped precision loss")
	}

	mismatch := NewConversionError(ConversionBandCountMismatch, "got 4 colors for a 3-band resistor", nil)
	if !IsBandCountMismatch(mismatch) {
		t.Error("IsBandCountMismatch = false for a band count mismatch")
	}
	if IsBandCountMismatch(lossErr) {
		t.Error("IsBandCountMismatch = true for a precision loss")
	}

	decodeErr := wrapConversion(NewDecodeError(DecodeInvalidToleranceColor, Pink, 3))
	if !IsDecodeError(decodeErr) {
		t.Error("IsDecodeError = false for a wrapped DecodeError")
	}
}

func TestDecodeErrorMessageNamesColorAndPosition(t *testing.T) {
	err := NewDecodeError(DecodeInvalidMultiplierColor, Pink, 2)
	msg := err.Error()
	if !strings.Contains(msg, "Pink") {
		t.Errorf("message %q does not name the color", msg)
	}
	if !strings.Contains(msg, "3") {
		t.Errorf("message %q does not give the 1-based band position", msg)
	}
}
