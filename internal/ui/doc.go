// Package ui provides terminal output rendering for bandcode.
//
// It contains the shared lipgloss styles, colored band swatch
// rendering, and the success/failure result boxes printed by the CLI
// commands.
package ui
