// Package resistor implements the bidirectional conversion between the
// physical specification of a fixed resistor (resistance, tolerance,
// temperature coefficient) and its visual color-band encoding.
//
// The package is organized around a small set of immutable value objects:
//
//   - Color: one of the thirteen standardized band colors, with per-role
//     facets (digit, multiplier, tolerance, TCR) defined by a static table.
//   - Resistance: an exact decimal value as significant digits plus a
//     decimal exponent. No floating point is involved in conversions.
//   - ResistorSpec: resistance + optional tolerance + optional TCR + band
//     count, the canonical aggregate both directions produce and consume.
//   - BandSequence: an ordered sequence of 3 to 6 colors, where position
//     determines role.
//
// # Conversions
//
// The two supported directions go through the Converter facade:
//
//	bands, err := resistor.SpecsToColors("4k7", &tol, nil, 4)
//	spec, err := resistor.ColorsToSpecs(bands, 4)
//
// Resistance strings use RKM notation ("4k7", "330R", "2M2") or plain
// decimals with an optional multiplier suffix ("4.7k", "330").
//
// # Band layout
//
// Position determines role according to the standard layout:
//
//	3 bands: digit digit multiplier            (no tolerance band)
//	4 bands: digit digit multiplier tolerance
//	5 bands: digit digit digit multiplier tolerance
//	6 bands: digit digit digit multiplier tolerance tcr
//
// # Errors
//
// All failures are deterministic validation or lookup failures, returned
// as classified error values (ParseError, EncodeError, DecodeError,
// ConversionError). No operation retries, panics on user input, or leaves
// partial state behind.
//
// # Concurrency
//
// Every operation is a pure function over immutable inputs and the static
// color table; concurrent use requires no coordination.
package resistor
