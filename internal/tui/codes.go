package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ohm-tools/bandcode/internal/resistor"
	"github.com/ohm-tools/bandcode/internal/ui"
)

// codesKeyMap defines key bindings for the colors tab
type codesKeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Cycle     key.Binding
	BandCount key.Binding
}

// CodesModel is the colors-to-specs tab: the user picks a band count
// and cycles each band through its valid colors, and the resistance
// is decoded live.
type CodesModel struct {
	converter *resistor.Converter

	bandCount int
	bands     resistor.BandSequence
	selected  int

	// Live decode result
	spec *resistor.ResistorSpec
	err  error

	Width int
	keys  codesKeyMap
}

// NewCodesModel creates the colors tab with a default band layout
func NewCodesModel(converter *resistor.Converter, bandCount int) CodesModel {
	if _, err := resistor.RolesFor(bandCount); err != nil {
		bandCount = 6
	}

	m := CodesModel{
		converter: converter,
		bandCount: bandCount,
		bands:     defaultBands(bandCount),
		keys: codesKeyMap{
			Next: key.NewBinding(
				key.WithKeys("tab", "right"),
				key.WithHelp("tab", "next band"),
			),
			Prev: key.NewBinding(
				key.WithKeys("shift+tab", "left"),
				key.WithHelp("shift+tab", "previous band"),
			),
			Cycle: key.NewBinding(
				key.WithKeys("up", "down"),
				key.WithHelp("↑/↓", "change color"),
			),
			BandCount: key.NewBinding(
				key.WithKeys("3", "4", "5", "6"),
				key.WithHelp("3-6", "band count"),
			),
		},
	}
	m.decode()
	return m
}

// Init initializes the colors tab
func (m CodesModel) Init() tea.Cmd {
	return nil
}

// Update handles key events for the colors tab
func (m CodesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Next):
		m.selected = (m.selected + 1) % m.bandCount

	case key.Matches(keyMsg, m.keys.Prev):
		m.selected = (m.selected + m.bandCount - 1) % m.bandCount

	case key.Matches(keyMsg, m.keys.Cycle):
		step := 1
		if keyMsg.String() == "down" {
			step = -1
		}
		m.cycleSelected(step)
		m.decode()

	case key.Matches(keyMsg, m.keys.BandCount):
		count, err := strconv.Atoi(keyMsg.String())
		if err == nil {
			m.setBandCount(count)
			m.decode()
		}
	}

	return m, nil
}

// cycleSelected steps the selected band to its next valid color
func (m *CodesModel) cycleSelected(step int) {
	roles, err := resistor.RolesFor(m.bandCount)
	if err != nil {
		return
	}
	m.bands[m.selected] = nextValidColor(m.bands[m.selected], roles[m.selected], step)
}

// setBandCount switches the band layout, keeping colors where the
// role at that position is unchanged.
func (m *CodesModel) setBandCount(count int) {
	if count == m.bandCount {
		return
	}
	fresh := defaultBands(count)
	oldRoles, err := resistor.RolesFor(m.bandCount)
	if err == nil {
		newRoles, err := resistor.RolesFor(count)
		if err == nil {
			for i := range fresh {
				if i < len(m.bands) && i < len(oldRoles) && oldRoles[i] == newRoles[i] {
					fresh[i] = m.bands[i]
				}
			}
		}
	}
	m.bandCount = count
	m.bands = fresh
	if m.selected >= count {
		m.selected = count - 1
	}
}

// decode refreshes the live result from the current bands
func (m *CodesModel) decode() {
	m.spec = nil
	m.err = nil
	spec, err := m.converter.ColorsToSpecs(m.bands, m.bandCount)
	if err != nil {
		m.err = err
		return
	}
	m.spec = &spec
}

// View renders the band selector and the decoded resistance
func (m CodesModel) View() string {
	var b strings.Builder

	b.WriteString(ui.RenderBands(m.bands))
	b.WriteString("\n")
	b.WriteString(renderSelection(m.bands, m.selected))
	b.WriteString("\n\n")
	b.WriteString(ui.RenderBandList(m.bands, m.bandCount))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(ErrorStyle.Render(m.err.Error()))
	case m.spec != nil:
		b.WriteString(renderSpecSummary(*m.spec))
	}

	return BoxStyle.Render(b.String())
}

// renderSelection renders a caret row underneath the selected band
func renderSelection(bands resistor.BandSequence, selected int) string {
	var b strings.Builder
	b.WriteString(" ")
	for i, c := range bands {
		// Swatches are padded one cell each side of the name
		width := len(c.String()) + 2
		marker := strings.Repeat(" ", width)
		if i == selected {
			caret := strings.Repeat("^", width)
			marker = SelectedBandStyle.Render(caret)
		}
		b.WriteString(marker)
		if i < len(bands)-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

// defaultBands returns the initial band layout for a band count
func defaultBands(bandCount int) resistor.BandSequence {
	roles, err := resistor.RolesFor(bandCount)
	if err != nil {
		return nil
	}
	bands := make(resistor.BandSequence, len(roles))
	first := true
	for i, role := range roles {
		switch {
		case role == resistor.RoleDigit && first:
			bands[i] = resistor.Brown
			first = false
		case role == resistor.RoleTolerance:
			bands[i] = resistor.Brown
		default:
			bands[i] = resistor.Black
		}
	}
	return bands
}

// nextValidColor steps through the color wheel until a color valid
// for the band's role is found.
func nextValidColor(c resistor.Color, role resistor.BandRole, step int) resistor.Color {
	n := resistor.NumColors
	for i := 1; i <= n; i++ {
		next := resistor.Color(((int(c)+step*i)%n + n) % n)
		if next.ValidFor(role) {
			return next
		}
	}
	return c
}
