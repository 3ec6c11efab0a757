package resistor

import (
	"errors"
	"fmt"
)

// Error types for the conversion engine. Every failure is a deterministic
// validation or lookup failure; nothing here is transient or retryable.

// ParseErrorKind classifies RKM parsing failures.
type ParseErrorKind int

const (
	// ParseInvalidFormat indicates malformed input: no digits, multiple
	// multiplier letters, or unconsumed trailing characters.
	ParseInvalidFormat ParseErrorKind = iota
	// ParseOutOfRange indicates a magnitude no band layout can represent.
	ParseOutOfRange
	// ParseTooManySignificantDigits indicates more significant digits than
	// any supported band count has digit positions.
	ParseTooManySignificantDigits
)

// String returns a human-readable name for the kind.
func (k ParseErrorKind) String() string {
	switch k {
	case ParseInvalidFormat:
		return "invalid format"
	case ParseOutOfRange:
		return "out of range"
	case ParseTooManySignificantDigits:
		return "too many significant digits"
	default:
		return fmt.Sprintf("ParseErrorKind(%d)", int(k))
	}
}

// ParseError reports a failure to parse a resistance string.
type ParseError struct {
	Kind    ParseErrorKind
	Input   string // the offending input, verbatim
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s: %s", e.Input, e.Kind, e.Message)
}

// NewParseError creates a classified parse error.
func NewParseError(kind ParseErrorKind, input, message string) *ParseError {
	return &ParseError{Kind: kind, Input: input, Message: message}
}

// EncodeErrorKind classifies encoding failures: a valid numeric spec that
// cannot be expressed exactly in the requested band count.
type EncodeErrorKind int

const (
	// EncodePrecisionLoss indicates more significant digits than the band
	// count has digit positions. The encoder never silently rounds.
	EncodePrecisionLoss EncodeErrorKind = iota
	// EncodeUnrepresentableMultiplier indicates a multiplier exponent no
	// color encodes.
	EncodeUnrepresentableMultiplier
	// EncodeUnsupportedTolerance indicates a missing or non-enumerated
	// tolerance where the layout requires a tolerance band.
	EncodeUnsupportedTolerance
	// EncodeUnsupportedTCR indicates a missing or non-enumerated TCR where
	// the layout requires a TCR band.
	EncodeUnsupportedTCR
)

// String returns a human-readable name for the kind.
func (k EncodeErrorKind) String() string {
	switch k {
	case EncodePrecisionLoss:
		return "precision loss"
	case EncodeUnrepresentableMultiplier:
		return "unrepresentable multiplier"
	case EncodeUnsupportedTolerance:
		return "unsupported tolerance"
	case EncodeUnsupportedTCR:
		return "unsupported TCR"
	default:
		return fmt.Sprintf("EncodeErrorKind(%d)", int(k))
	}
}

// EncodeError reports a failure to encode a spec as color bands.
type EncodeError struct {
	Kind    EncodeErrorKind
	Message string
}

// Error implements the error interface.
func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode: %s: %s", e.Kind, e.Message)
}

// NewEncodeError creates a classified encode error.
func NewEncodeError(kind EncodeErrorKind, message string) *EncodeError {
	return &EncodeError{Kind: kind, Message: message}
}

// DecodeErrorKind classifies decoding failures: a color in a band
// position where it has no valid facet.
type DecodeErrorKind int

const (
	DecodeInvalidDigitColor DecodeErrorKind = iota
	DecodeInvalidMultiplierColor
	DecodeInvalidToleranceColor
	DecodeInvalidTCRColor
)

// String returns a human-readable name for the kind.
func (k DecodeErrorKind) String() string {
	switch k {
	case DecodeInvalidDigitColor:
		return "invalid digit color"
	case DecodeInvalidMultiplierColor:
		return "invalid multiplier color"
	case DecodeInvalidToleranceColor:
		return "invalid tolerance color"
	case DecodeInvalidTCRColor:
		return "invalid TCR color"
	default:
		return fmt.Sprintf("DecodeErrorKind(%d)", int(k))
	}
}

// DecodeError reports a color that is invalid for its band position.
type DecodeError struct {
	Kind     DecodeErrorKind
	Color    Color
	Position int // zero-based band index
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode: %s: %s in band %d", e.Kind, e.Color, e.Position+1)
}

// NewDecodeError creates a classified decode error.
func NewDecodeError(kind DecodeErrorKind, color Color, position int) *DecodeError {
	return &DecodeError{Kind: kind, Color: color, Position: position}
}

// ConversionErrorKind classifies facade-level failures and wraps the
// component errors underneath.
type ConversionErrorKind int

const (
	// ConversionInvalidBandCount indicates a band count outside 3-6.
	ConversionInvalidBandCount ConversionErrorKind = iota
	// ConversionBandCountMismatch indicates tolerance/TCR supplied for a
	// band count that has no band for them, or a band sequence whose
	// length disagrees with the declared band count.
	ConversionBandCountMismatch
	// ConversionParse wraps a ParseError.
	ConversionParse
	// ConversionEncode wraps an EncodeError.
	ConversionEncode
	// ConversionDecode wraps a DecodeError.
	ConversionDecode
)

// String returns a human-readable name for the kind.
func (k ConversionErrorKind) String() string {
	switch k {
	case ConversionInvalidBandCount:
		return "invalid band count"
	case ConversionBandCountMismatch:
		return "band count mismatch"
	case ConversionParse:
		return "parse failed"
	case ConversionEncode:
		return "encode failed"
	case ConversionDecode:
		return "decode failed"
	default:
		return fmt.Sprintf("ConversionErrorKind(%d)", int(k))
	}
}

// ConversionError is the error type returned by the facade operations.
type ConversionError struct {
	Kind    ConversionErrorKind
	Message string
	Err     error // underlying parse/encode/decode error, if any
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if e.Err != nil {
		if e.Message != "" {
			return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
		}
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a classified conversion error.
func NewConversionError(kind ConversionErrorKind, message string, err error) *ConversionError {
	return &ConversionError{Kind: kind, Message: message, Err: err}
}

// wrapConversion classifies a component error under the facade taxonomy.
// Errors that are already ConversionErrors pass through unchanged.
func wrapConversion(err error) error {
	if err == nil {
		return nil
	}
	var (
		convErr   *ConversionError
		parseErr  *ParseError
		encodeErr *EncodeError
		decodeErr *DecodeError
	)
	switch {
	case errors.As(err, &convErr):
		return err
	case errors.As(err, &parseErr):
		return NewConversionError(ConversionParse, "", err)
	case errors.As(err, &encodeErr):
		return NewConversionError(ConversionEncode, "", err)
	case errors.As(err, &decodeErr):
		return NewConversionError(ConversionDecode, "", err)
	default:
		return err
	}
}

// IsParseError checks whether an error chain contains a ParseError.
func IsParseError(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

// IsEncodeError checks whether an error chain contains an EncodeError.
func IsEncodeError(err error) bool {
	var target *EncodeError
	return errors.As(err, &target)
}

// IsDecodeError checks whether an error chain contains a DecodeError.
func IsDecodeError(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}

// IsPrecisionLoss checks for the specific encode failure where the value
// has more significant digits than the band count can carry.
func IsPrecisionLoss(err error) bool {
	var target *EncodeError
	return errors.As(err, &target) && target.Kind == EncodePrecisionLoss
}

// IsBandCountMismatch checks for the facade-level mismatch failure.
func IsBandCountMismatch(err error) bool {
	var target *ConversionError
	return errors.As(err, &target) && target.Kind == ConversionBandCountMismatch
}
