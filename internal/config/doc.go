// Package config manages user preferences for the bandcode tools.
//
// Preferences live in a YAML file at the platform configuration
// directory (e.g. ~/.config/bandcode/config.yaml on Linux). The file is
// optional; every setting has a sensible default.
//
// The one setting with conversion semantics is three_band_tolerance:
// standards bodies differ on whether a missing tolerance band on a
// 3-band resistor means "unspecified" or the conventional ±20%, so the
// choice is explicit configuration rather than a hidden default.
//
// Loading is lazy and cached; Save writes atomically via a temp file
// and rename.
package config
