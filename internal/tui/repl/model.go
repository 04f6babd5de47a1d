// ============================================================================
// mUnits - Physikalische Größen und Einheiten
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model for the interactive unit converter
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package repl

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/munits/pkg/quantity"
	"github.com/msto63/munits/pkg/units"
)

// Labels holds the user-facing texts of the REPL
type Labels struct {
	Placeholder string
	NextKind    string
	Quit        string
	NoUnits     string
	KindName    func(quantity.Kind) string
}

// DefaultLabels returns the English labels
func DefaultLabels() Labels {
	return Labels{
		Placeholder: "5 km",
		NextKind:    "next kind",
		Quit:        "quit",
		NoUnits:     "no units registered",
		KindName:    quantity.Kind.String,
	}
}

// Config holds REPL configuration
type Config struct {
	Provider *units.Provider
	Kind     quantity.Kind // initial kind (default: first kind with units)
	Verb     string        // numeric verb (default: units.DefaultVerb)
	Labels   Labels
}

// Model is the Bubbletea model of the REPL
type Model struct {
	width int

	input textinput.Model

	provider  *units.Provider
	kinds     []quantity.Kind
	kindIndex int
	verb      string
	labels    Labels

	rows []Row
	err  error
}

// New creates a REPL model
func New(cfg Config) Model {
	input := textinput.New()
	input.Placeholder = cfg.Labels.Placeholder
	input.Prompt = "> "
	input.CharLimit = 64
	input.Width = 40
	input.Focus()

	labels := cfg.Labels
	if labels.KindName == nil {
		labels.KindName = quantity.Kind.String
	}

	verb := cfg.Verb
	if verb == "" {
		verb = units.DefaultVerb
	}

	m := Model{
		input:    input,
		provider: cfg.Provider,
		kinds:    cfg.Provider.Kinds(),
		verb:     verb,
		labels:   labels,
	}
	for i, kind := range m.kinds {
		if kind == cfg.Kind {
			m.kindIndex = i
		}
	}
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Kind returns the selected kind, or "" when no units are registered
func (m Model) Kind() quantity.Kind {
	if len(m.kinds) == 0 {
		return ""
	}
	return m.kinds[m.kindIndex]
}

// Rows returns the current conversion rows
func (m Model) Rows() []Row {
	return m.rows
}

// Err returns the conversion error for the current input, if any
func (m Model) Err() error {
	return m.err
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.cycleKind(1)
			m.convert()
			return m, nil
		case tea.KeyShiftTab:
			m.cycleKind(-1)
			m.convert()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		// Pick up units added by a catalog reload
		current := m.Kind()
		m.kinds = m.provider.Kinds()
		m.kindIndex = 0
		for i, kind := range m.kinds {
			if kind == current {
				m.kindIndex = i
			}
		}
		m.convert()
		return m, tick()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.convert()
	return m, cmd
}

func (m *Model) cycleKind(step int) {
	if len(m.kinds) == 0 {
		return
	}
	m.kindIndex = (m.kindIndex + step + len(m.kinds)) % len(m.kinds)
}

func (m *Model) convert() {
	m.rows, m.err = nil, nil
	if len(m.kinds) == 0 {
		return
	}
	m.rows, m.err = Convert(m.provider, m.Kind(), m.input.Value(), m.verb)
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(LogoStyle.Render(Logo))
	b.WriteString("\n\n")

	if len(m.kinds) == 0 {
		b.WriteString(ErrorStyle.Render(m.labels.NoUnits))
		b.WriteString("\n")
		b.WriteString(m.renderHelp())
		return b.String()
	}

	b.WriteString(m.renderKinds())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	} else if len(m.rows) > 0 {
		lines := make([]string, len(m.rows))
		for i, row := range m.rows {
			lines[i] = RenderRow(row, m.width-4)
		}
		b.WriteString(PanelStyle.Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderKinds() string {
	names := make([]string, len(m.kinds))
	for i, kind := range m.kinds {
		name := m.labels.KindName(kind)
		if i == m.kindIndex {
			names[i] = KindActiveStyle.Render(name)
		} else {
			names[i] = KindInactiveStyle.Render(name)
		}
	}
	return strings.Join(names, "  ")
}

func (m Model) renderHelp() string {
	hints := []string{
		RenderKeyHint("tab", m.labels.NextKind),
		RenderKeyHint("esc", m.labels.Quit),
	}
	return HelpStyle.Render(strings.Join(hints, "  "))
}
