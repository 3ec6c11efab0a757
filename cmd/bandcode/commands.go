package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ohm-tools/bandcode/internal/config"
	"github.com/ohm-tools/bandcode/internal/logging"
	"github.com/ohm-tools/bandcode/internal/resistor"
	"github.com/ohm-tools/bandcode/internal/tui"
	"github.com/ohm-tools/bandcode/internal/ui"
)

// Command flags
var (
	outputFormat  string
	bandCountFlag int
	toleranceFlag float64
	tcrFlag       int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(interactiveCmd)
}

// newConverter loads configuration and builds the converter.
// A broken config file falls back to defaults with a warning.
func newConverter() (*resistor.Converter, *config.Config) {
	cfg, err := config.Load()
	if err != nil {
		logging.Warn("failed to load config, using defaults")
		cfg = config.NewConfig()
	}
	policy, err := cfg.TolerancePolicy()
	if err != nil {
		logging.Warn("invalid three_band_tolerance in config, using defaults")
		policy = resistor.ToleranceUnspecified
	}
	return resistor.NewConverter(policy), cfg
}

// bandResult is the JSON output shape shared by encode and decode
type bandResult struct {
	Resistance string   `json:"resistance"`
	RKM        string   `json:"rkm"`
	Tolerance  *float64 `json:"tolerance,omitempty"`
	TCR        *int     `json:"tcr,omitempty"`
	BandCount  int      `json:"band_count"`
	Bands      []string `json:"bands"`
	MinOhms    *float64 `json:"min_ohms,omitempty"`
	MaxOhms    *float64 `json:"max_ohms,omitempty"`
}

// newBandResult builds the JSON output shape from a decoded spec
func newBandResult(spec resistor.ResistorSpec, bands resistor.BandSequence) bandResult {
	r := bandResult{
		Resistance: spec.Resistance.String(),
		RKM:        spec.Resistance.RKM(),
		BandCount:  spec.BandCount,
	}
	for _, c := range bands {
		r.Bands = append(r.Bands, c.String())
	}
	if spec.Tolerance != nil {
		tol := float64(*spec.Tolerance)
		r.Tolerance = &tol
		min, max := resistor.Interval(spec)
		r.MinOhms = &min
		r.MaxOhms = &max
	}
	if spec.TCR != nil {
		tcr := int(*spec.TCR)
		r.TCR = &tcr
	}
	return r
}

// encodeCmd converts a resistance value to band colors
var encodeCmd = &cobra.Command{
	Use:   "encode <resistance>",
	Short: "Convert a resistance value to band colors",
	Long: `Convert a resistance value to resistor color bands.

The resistance can be given in RKM notation (4k7, 2M2, 330R) or as a
plain number of ohms (4700, 0.5). Without --bands, the smallest band
count that fits the value is chosen automatically.`,
	Example: `  # Pick the band count automatically
  bandcode encode 4k7 --tolerance 5

  # Force a 5-band code
  bandcode encode 4k7 --tolerance 1 --bands 5

  # Six bands with a TCR of 50 ppm/K
  bandcode encode 1k --tolerance 1 --tcr 50

  # JSON output for scripting
  bandcode encode 330R --tolerance 5 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().IntVar(&bandCountFlag, "bands", 0, "Band count (3-6, 0 = automatic)")
	encodeCmd.Flags().Float64Var(&toleranceFlag, "tolerance", 0, "Tolerance in percent")
	encodeCmd.Flags().IntVar(&tcrFlag, "tcr", 0, "Temperature coefficient in ppm/K")
}

func runEncode(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	converter, _ := newConverter()
	input := args[0]

	var tolerance *resistor.Tolerance
	if cmd.Flags().Changed("tolerance") {
		tol := resistor.Tolerance(toleranceFlag)
		tolerance = &tol
	}
	var tcr *resistor.TCR
	if cmd.Flags().Changed("tcr") {
		t := resistor.TCR(tcrFlag)
		tcr = &t
	}

	var bands resistor.BandSequence
	var bandCount int
	var err error
	if bandCountFlag == 0 {
		bands, bandCount, err = converter.Determine(input, tolerance, tcr)
	} else {
		bandCount = bandCountFlag
		bands, err = converter.SpecsToColors(input, tolerance, tcr, bandCount)
	}
	logging.LogConversion("encode", input, bandCount, err)
	if err != nil {
		if resistor.IsParseError(err) {
			logging.LogParse(input, err)
		}
		renderFailure("Could not encode "+input, err, []string{
			"resistance accepts RKM notation (4k7, 2M2, 330R) or plain ohms (4700, 0.5)",
			"3 and 4 band codes carry at most 2 significant digits, 5 and 6 bands carry 3",
			"use --bands to force a band count, or omit it to pick one automatically",
		})
		return err
	}

	spec, err := converter.ColorsToSpecs(bands, bandCount)
	if err != nil {
		return err
	}

	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(newBandResult(spec, bands), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case "compact":
		fmt.Println(bands.String())
	case "detailed":
		fallthrough
	default:
		result := ui.NewSuccessResult(spec.Resistance.String() + " as " + fmt.Sprintf("%d bands", bandCount))
		addSpecDetails(result, spec)
		fmt.Println(result.Render())
		fmt.Println(ui.RenderBands(bands))
		fmt.Println()
		fmt.Println(ui.RenderBandList(bands, bandCount))
	}
	return nil
}

// decodeCmd converts band colors to a resistance value
var decodeCmd = &cobra.Command{
	Use:   "decode <color>...",
	Short: "Convert band colors to a resistance value",
	Long: `Decode 3 to 6 resistor band colors into a resistance value.

Colors are given in band order, left to right. The band count is taken
from the number of colors given unless --bands declares one.`,
	Example: `  # 4-band resistor: 4.7 kΩ ±5%
  bandcode decode yellow violet red gold

  # 5-band precision resistor
  bandcode decode brown black black brown brown

  # JSON output for scripting
  bandcode decode yellow violet red gold --format json`,
	Args: cobra.RangeArgs(3, 6),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().IntVar(&bandCountFlag, "bands", 0, "Declared band count (default: number of colors given)")
}

func runDecode(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	converter, _ := newConverter()

	bands := make(resistor.BandSequence, len(args))
	for i, name := range args {
		c, err := resistor.ParseColor(name)
		if err != nil {
			renderFailure("Could not decode bands", err, decodeHints())
			return err
		}
		bands[i] = c
	}

	bandCount := len(bands)
	if bandCountFlag != 0 {
		bandCount = bandCountFlag
	}
	spec, err := converter.ColorsToSpecs(bands, bandCount)
	logging.LogConversion("decode", bands.String(), bandCount, err)
	if err != nil {
		renderFailure("Could not decode "+bands.String(), err, decodeHints())
		return err
	}

	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(newBandResult(spec, bands), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case "compact":
		fmt.Println(spec.Resistance.RKM() + " " + formatSpecSuffix(spec))
	case "detailed":
		fallthrough
	default:
		result := ui.NewSuccessResult(spec.Resistance.String())
		addSpecDetails(result, spec)
		fmt.Println(result.Render())
		fmt.Println(ui.RenderBands(bands))
	}
	return nil
}

// colorsCmd prints the color code reference table
var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Print the resistor color code table",
	Long: `Print the resistor color code reference table.

Shows the digit, multiplier, tolerance, and TCR value of every band
color, with each row rendered in its color.`,
	RunE: runColors,
}

func runColors(cmd *cobra.Command, args []string) error {
	fmt.Println(ui.HeaderTitleStyle.Render("Resistor color code"))
	fmt.Println()
	fmt.Printf("%-22s %-6s %-11s %-10s %s\n", "Color", "Digit", "Multiplier", "Tolerance", "TCR")
	for _, c := range resistor.AllColors() {
		digit := "-"
		if d, ok := resistor.DigitOf(c); ok {
			digit = fmt.Sprintf("%d", d)
		}
		multiplier := "-"
		if m, ok := resistor.MultiplierOf(c); ok {
			multiplier = fmt.Sprintf("10^%d", m)
		}
		tolerance := "-"
		if t, ok := resistor.ToleranceOf(c); ok {
			tolerance = t.String()
		}
		tcr := "-"
		if t, ok := resistor.TCROf(c); ok {
			tcr = t.String()
		}
		swatch := ui.BandStyle(c).Render(c.String())
		// The swatch carries invisible styling bytes, so pad manually
		padding := 22 - len(c.String()) - 2
		if padding < 0 {
			padding = 0
		}
		fmt.Printf("%s%*s %-6s %-11s %-10s %s\n", swatch, padding, "", digit, multiplier, tolerance, tcr)
	}
	return nil
}

// configCmd shows the configuration file
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the configuration",
	Long: `Show the configuration file location and current settings.

Settings control the three-band tolerance policy, the interactive
converter's default band count, and the log level.`,
	RunE: runConfigShow,
}

// configInitCmd writes the current configuration to disk
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the configuration file",
	Long: `Write the current configuration to disk.

Creates the configuration directory if needed and writes the file
atomically, seeding it with defaults when no file exists yet.`,
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Printf("Configuration file: %s\n\n", path)
	fmt.Printf("  three_band_tolerance: %s\n", orDefault(cfg.ThreeBandTolerance, "unspecified"))
	fmt.Printf("  default_band_count:   %d\n", cfg.DefaultBandCount)
	fmt.Printf("  log_level:            %s\n", orDefault(cfg.LogLevel, "off"))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	// Read it back so what we report is what the file holds.
	cfg, err = config.Reload()
	if err != nil {
		return fmt.Errorf("failed to read back configuration: %w", err)
	}

	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s (three_band_tolerance: %s, default_band_count: %d)\n",
		path, orDefault(cfg.ThreeBandTolerance, "unspecified"), cfg.DefaultBandCount)
	return nil
}

// orDefault substitutes a display default for an empty setting
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// interactiveCmd launches the full-screen TUI converter
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive converter",
	Long: `Launch the full-screen interactive converter.

The converter has two tabs: one that turns a typed resistance into
band colors, and one that decodes band colors picked with the arrow
keys. This is the default when bandcode is run without a command.`,
	Example: `  # Launch the interactive converter
  bandcode interactive
  # Or simply (interactive is default):
  bandcode`,
	RunE: runInteractive,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	converter, cfg := newConverter()
	return tui.Run(converter, cfg.DefaultBandCount)
}

// addSpecDetails fills a result box from a decoded resistor spec
func addSpecDetails(result *ui.Result, spec resistor.ResistorSpec) {
	result.AddDetail("Resistance", spec.Resistance.String())
	result.AddDetail("RKM", spec.Resistance.RKM())
	if spec.Tolerance != nil {
		result.AddDetail("Tolerance", spec.Tolerance.String())
		min, max := resistor.Interval(spec)
		result.AddDetail("Range", resistor.FormatOhms(min)+" to "+resistor.FormatOhms(max))
	}
	if spec.TCR != nil {
		result.AddDetail("TCR", spec.TCR.String())
	}
	result.AddDetail("Bands", fmt.Sprintf("%d", spec.BandCount))
}

// formatSpecSuffix formats the tolerance and TCR for compact output
func formatSpecSuffix(spec resistor.ResistorSpec) string {
	s := ""
	if spec.Tolerance != nil {
		s += spec.Tolerance.String()
	}
	if spec.TCR != nil {
		if s != "" {
			s += " "
		}
		s += spec.TCR.String()
	}
	return s
}

// decodeHints returns the usage hints shown when decoding fails
func decodeHints() []string {
	names := make([]string, 0, resistor.NumColors)
	for _, c := range resistor.AllColors() {
		names = append(names, c.String())
	}
	return []string{
		"give colors in band order, left to right",
		"digit bands take black to white, multipliers also take gold and silver",
		"supported colors: " + ui.SupportedColorNames(names),
	}
}

// renderFailure prints a failure result box to stdout
func renderFailure(title string, err error, hints []string) {
	fmt.Println(ui.NewFailureResult(title, err, hints).Render())
}
