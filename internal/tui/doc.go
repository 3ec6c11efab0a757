// Package tui implements the interactive terminal interface for bandcode.
//
// The interface is a full-screen Bubble Tea application with two tabs,
// one per conversion direction:
//
//   - specs to colors: type a resistance (RKM notation or plain ohms),
//     an optional tolerance, and an optional TCR, and press Enter to
//     see the matching color bands.
//   - colors to specs: pick a band count (3-6) and cycle each band
//     through the colors valid for its position; the resistance,
//     tolerance, and TCR are decoded live.
//
// # Key Bindings
//
//   - Shift+←/→ switches between the two tabs
//   - Tab / Shift+Tab moves between input fields or bands
//   - ↑/↓ cycles the selected band's color
//   - 3-6 sets the band count on the colors tab
//   - Esc or Ctrl+C quits
//
// # State Management
//
// The package follows the Elm architecture: models hold all state,
// Update returns a new model plus commands, and View is a pure
// function of the model. AppModel coordinates the two tab models and
// routes messages to whichever tab is active.
//
// Styling uses lipgloss throughout, with band swatch rendering shared
// with the CLI via the ui package.
package tui
