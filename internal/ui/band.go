package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ohm-tools/bandcode/internal/resistor"
)

// Terminal colors for each band color. Black and Brown get a light
// foreground so the label stays readable on the swatch.
var bandPalette = map[resistor.Color]struct {
	background lipgloss.Color
	foreground lipgloss.Color
}{
	resistor.Black:  {lipgloss.Color("#000000"), lipgloss.Color("#FFFFFF")},
	resistor.Brown:  {lipgloss.Color("#8B4513"), lipgloss.Color("#FFFFFF")},
	resistor.Red:    {lipgloss.Color("#CC0000"), lipgloss.Color("#FFFFFF")},
	resistor.Orange: {lipgloss.Color("#FF8C00"), lipgloss.Color("#000000")},
	resistor.Yellow: {lipgloss.Color("#FFD700"), lipgloss.Color("#000000")},
	resistor.Green:  {lipgloss.Color("#008000"), lipgloss.Color("#FFFFFF")},
	resistor.Blue:   {lipgloss.Color("#0000CC"), lipgloss.Color("#FFFFFF")},
	resistor.Violet: {lipgloss.Color("#8A2BE2"), lipgloss.Color("#FFFFFF")},
	resistor.Grey:   {lipgloss.Color("#808080"), lipgloss.Color("#000000")},
	resistor.White:  {lipgloss.Color("#FFFFFF"), lipgloss.Color("#000000")},
	resistor.Gold:   {lipgloss.Color("#B8860B"), lipgloss.Color("#000000")},
	resistor.Silver: {lipgloss.Color("#C0C0C0"), lipgloss.Color("#000000")},
	resistor.Pink:   {lipgloss.Color("#FF69B4"), lipgloss.Color("#000000")},
}

// BandStyle returns a style that renders text on the band's color.
func BandStyle(c resistor.Color) lipgloss.Style {
	p, ok := bandPalette[c]
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().
		Background(p.background).
		Foreground(p.foreground).
		Padding(0, 1)
}

// RenderBands renders a band sequence as a row of labeled color
// swatches, joined like the stripes on a resistor body.
func RenderBands(bands resistor.BandSequence) string {
	swatches := make([]string, len(bands))
	for i, c := range bands {
		swatches[i] = BandStyle(c).Render(c.String())
	}
	lead := lipgloss.NewStyle().Foreground(MutedColor).Render("═")
	return lead + strings.Join(swatches, " ") + lead
}

// RenderBandList renders one band per line with its role, for narrow
// output or detailed inspection.
func RenderBandList(bands resistor.BandSequence, bandCount int) string {
	roles, err := resistor.RolesFor(bandCount)
	if err != nil || len(roles) != len(bands) {
		return RenderBands(bands)
	}
	var lines []string
	digit := 0
	for i, c := range bands {
		label := roles[i].String()
		if roles[i] == resistor.RoleDigit {
			digit++
			label = "digit " + string(rune('0'+digit))
		}
		key := ResultKeyStyle.Render(label + ":")
		lines = append(lines, key+" "+BandStyle(c).Render(c.String()))
	}
	return strings.Join(lines, "\n")
}
