package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ohm-tools/bandcode/internal/resistor"
)

// Tab represents the active conversion direction
type Tab int

const (
	TabSpecs Tab = iota // Resistance specs in, band colors out
	TabCodes            // Band colors in, resistance specs out
)

// appKeyMap defines the global key bindings
type appKeyMap struct {
	SwitchTab key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchTab, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchTab, k.Quit},
	}
}

// AppModel is the top-level coordinator model that manages the two tabs
type AppModel struct {
	// Current tab state
	CurrentTab Tab

	// Tab models
	SpecsModel SpecsModel
	CodesModel CodesModel

	// UI state
	Width  int
	Height int

	// Help
	Help help.Model
	Keys appKeyMap
}

// NewAppModel creates a new application model
func NewAppModel(converter *resistor.Converter, defaultBandCount int) AppModel {
	keys := appKeyMap{
		SwitchTab: key.NewBinding(
			key.WithKeys("shift+left", "shift+right"),
			key.WithHelp("shift+←/→", "switch tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}

	return AppModel{
		CurrentTab: TabSpecs,
		SpecsModel: NewSpecsModel(converter),
		CodesModel: NewCodesModel(converter, defaultBandCount),
		Help:       help.New(),
		Keys:       keys,
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return m.SpecsModel.Init()
}

// Update handles all messages and routes them to the active tab
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.SpecsModel.Width = msg.Width
		m.CodesModel.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.Keys.SwitchTab):
			if m.CurrentTab == TabSpecs {
				m.CurrentTab = TabCodes
			} else {
				m.CurrentTab = TabSpecs
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.CurrentTab {
	case TabSpecs:
		updated, c := m.SpecsModel.Update(msg)
		m.SpecsModel = updated.(SpecsModel)
		cmd = c
	case TabCodes:
		updated, c := m.CodesModel.Update(msg)
		m.CodesModel = updated.(CodesModel)
		cmd = c
	}

	return m, cmd
}

// View renders the header, tab bar, active tab content, and help footer
func (m AppModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("%s v%s", AppName, AppVersion())
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(RenderTabBar(m.CurrentTab))
	b.WriteString("\n\n")

	switch m.CurrentTab {
	case TabSpecs:
		b.WriteString(m.SpecsModel.View())
	case TabCodes:
		b.WriteString(m.CodesModel.View())
	}

	b.WriteString("\n")
	b.WriteString(m.Help.View(m.Keys))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(GitHubURL))

	content := b.String()
	if m.Width >= MinTerminalWidth {
		width := m.Width
		if width > MaxContentWidth {
			width = MaxContentWidth
		}
		content = lipgloss.NewStyle().Width(width).Render(content)
	}
	return content
}

// Run starts the interactive converter in the alternate screen buffer
func Run(converter *resistor.Converter, defaultBandCount int) error {
	app := NewAppModel(converter, defaultBandCount)
	program := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run interactive converter: %w", err)
	}
	return nil
}
