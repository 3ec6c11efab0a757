package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ohm-tools/bandcode/internal/resistor"
	"github.com/ohm-tools/bandcode/internal/ui"
)

// Input field indices for the specs tab
const (
	fieldResistance = iota
	fieldTolerance
	fieldTCR
	numSpecFields
)

// specsKeyMap defines key bindings for the specs tab
type specsKeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Convert key.Binding
}

// SpecsModel is the specs-to-colors tab: the user types a resistance
// value and optional tolerance and TCR, and the matching band colors
// are determined on Enter.
type SpecsModel struct {
	converter *resistor.Converter

	inputs [numSpecFields]textinput.Model
	focus  int

	// Last conversion result
	bands     resistor.BandSequence
	bandCount int
	spec      *resistor.ResistorSpec
	err       error

	Width int
	keys  specsKeyMap
}

// NewSpecsModel creates the specs tab with the resistance field focused
func NewSpecsModel(converter *resistor.Converter) SpecsModel {
	m := SpecsModel{
		converter: converter,
		keys: specsKeyMap{
			Next: key.NewBinding(
				key.WithKeys("tab", "down"),
				key.WithHelp("tab", "next field"),
			),
			Prev: key.NewBinding(
				key.WithKeys("shift+tab", "up"),
				key.WithHelp("shift+tab", "previous field"),
			),
			Convert: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "convert"),
			),
		},
	}

	resistance := textinput.New()
	resistance.Placeholder = "4k7, 330, 0.5 ..."
	resistance.CharLimit = 24
	resistance.Width = 24
	resistance.Focus()
	m.inputs[fieldResistance] = resistance

	tolerance := textinput.New()
	tolerance.Placeholder = "5, 1, 0.25 ... (optional)"
	tolerance.CharLimit = 24
	tolerance.Width = 24
	m.inputs[fieldTolerance] = tolerance

	tcr := textinput.New()
	tcr.Placeholder = "100, 50, 25 ... (optional)"
	tcr.CharLimit = 24
	tcr.Width = 24
	m.inputs[fieldTCR] = tcr

	return m
}

// Init initializes the specs tab
func (m SpecsModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key events for the specs tab
func (m SpecsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Next):
			m.setFocus((m.focus + 1) % numSpecFields)
			return m, nil

		case key.Matches(keyMsg, m.keys.Prev):
			m.setFocus((m.focus + numSpecFields - 1) % numSpecFields)
			return m, nil

		case key.Matches(keyMsg, m.keys.Convert):
			m.convert()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves keyboard focus to the given field
func (m *SpecsModel) setFocus(field int) {
	m.inputs[m.focus].Blur()
	m.focus = field
	m.inputs[m.focus].Focus()
}

// convert runs the conversion from the current field values
func (m *SpecsModel) convert() {
	m.bands = nil
	m.spec = nil
	m.err = nil

	tolerance, err := parseToleranceInput(m.inputs[fieldTolerance].Value())
	if err != nil {
		m.err = err
		return
	}
	tcr, err := parseTCRInput(m.inputs[fieldTCR].Value())
	if err != nil {
		m.err = err
		return
	}

	bands, bandCount, err := m.converter.Determine(
		m.inputs[fieldResistance].Value(), tolerance, tcr)
	if err != nil {
		m.err = err
		return
	}

	m.bands = bands
	m.bandCount = bandCount
	if spec, err := m.converter.ColorsToSpecs(bands, bandCount); err == nil {
		m.spec = &spec
	}
}

// View renders the input fields and the last conversion result
func (m SpecsModel) View() string {
	var b strings.Builder

	labels := [numSpecFields]string{"Resistance", "Tolerance %", "TCR ppm/K"}
	for i, input := range m.inputs {
		style := LabelStyle
		if i == m.focus {
			style = FocusedLabelStyle
		}
		b.WriteString(style.Render(labels[i]))
		b.WriteString(" ")
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(ErrorStyle.Render(m.err.Error()))
	case m.bands != nil:
		b.WriteString(ui.RenderBands(m.bands))
		b.WriteString("\n\n")
		b.WriteString(LabelStyle.Render("Bands"))
		b.WriteString(" ")
		b.WriteString(ValueStyle.Render(strconv.Itoa(m.bandCount)))
		if m.spec != nil {
			b.WriteString("\n")
			b.WriteString(renderSpecSummary(*m.spec))
		}
	default:
		b.WriteString(MutedStyle.Render("enter a resistance to see its color bands"))
	}

	return BoxStyle.Render(b.String())
}

// parseToleranceInput parses an optional tolerance percentage field
func parseToleranceInput(s string) (*resistor.Tolerance, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "±")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid tolerance %q: expected a percentage like 5 or 0.25", s)
	}
	tol := resistor.Tolerance(v)
	return &tol, nil
}

// parseTCRInput parses an optional TCR field in ppm/K
func parseTCRInput(s string) (*resistor.TCR, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid TCR %q: expected a whole number of ppm/K", s)
	}
	tcr := resistor.TCR(v)
	return &tcr, nil
}

// renderSpecSummary renders the resistance, tolerance, and TCR lines
// of a decoded resistor.
func renderSpecSummary(spec resistor.ResistorSpec) string {
	var b strings.Builder

	b.WriteString(LabelStyle.Render("Value"))
	b.WriteString(" ")
	b.WriteString(ValueStyle.Render(spec.Resistance.String()))
	b.WriteString("  ")
	b.WriteString(MutedStyle.Render("(" + spec.Resistance.RKM() + ")"))

	if spec.Tolerance != nil {
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render("Tolerance"))
		b.WriteString(" ")
		b.WriteString(ValueStyle.Render(spec.Tolerance.String()))

		min, max := resistor.Interval(spec)
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render("Range"))
		b.WriteString(" ")
		b.WriteString(ValueStyle.Render(
			resistor.FormatOhms(min) + " to " + resistor.FormatOhms(max)))
	}

	if spec.TCR != nil {
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render("TCR"))
		b.WriteString(" ")
		b.WriteString(ValueStyle.Render(spec.TCR.String()))
	}

	return b.String()
}
