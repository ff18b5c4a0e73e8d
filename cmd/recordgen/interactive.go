package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/recordgen/config"
	"github.com/wippyai/recordgen/gen"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browserState int

const (
	stateList browserState = iota
	stateDetail
)

// browserModel lists the records of one input, filtered by name, and shows
// the layout and generated code of the selected one.
type browserModel struct {
	s        *session
	input    string
	filter   textinput.Model
	code     viewport.Model
	visible  []int
	selected int
	state    browserState
}

func newBrowserModel(s *session, input string) *browserModel {
	ti := textinput.New()
	ti.Prompt = "filter: "
	ti.Placeholder = "record name"
	ti.Width = 40
	ti.Focus()

	m := &browserModel{
		s:      s,
		input:  input,
		filter: ti,
		code:   viewport.New(80, 20),
	}
	m.applyFilter()
	return m
}

func (m *browserModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *browserModel) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = m.visible[:0]
	for i, t := range m.s.res.Targets {
		if q == "" || strings.Contains(strings.ToLower(t.Record.Name), q) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = max(len(m.visible)-1, 0)
	}
}

func (m *browserModel) current() (gen.Target, bool) {
	if len(m.visible) == 0 {
		return gen.Target{}, false
	}
	return m.s.res.Targets[m.visible[m.selected]], true
}

func (m *browserModel) openDetail() {
	t, ok := m.current()
	if !ok {
		return
	}
	r := m.s.report(t)
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s, %s): %s\n", r.Name, m.s.endian, r.Facets, sizeText(r.Size))
	b.WriteString(layoutTable(r.Fields))
	b.WriteString("\n\n")

	code, err := m.s.preview(t)
	if err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
	} else {
		b.WriteString(code)
	}
	m.code.SetContent(b.String())
	m.code.GotoTop()
	m.state = stateDetail
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.code.Width = msg.Width
		m.code.Height = max(msg.Height-4, 1)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state == stateDetail {
				m.state = stateList
				return m, nil
			}
			return m, tea.Quit

		case "q":
			if m.state == stateDetail {
				return m, tea.Quit
			}

		case "up":
			if m.state == stateList {
				if m.selected > 0 {
					m.selected--
				}
				return m, nil
			}

		case "down":
			if m.state == stateList {
				if m.selected < len(m.visible)-1 {
					m.selected++
				}
				return m, nil
			}

		case "enter":
			if m.state == stateList {
				m.openDetail()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case stateList:
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
	case stateDetail:
		m.code, cmd = m.code.Update(msg)
	}
	return m, cmd
}

func (m *browserModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("recordgen"))
	b.WriteString(" ")
	b.WriteString(m.input)
	b.WriteString("\n\n")

	switch m.state {
	case stateList:
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
		if len(m.visible) == 0 {
			b.WriteString(helpStyle.Render("no matching records"))
			b.WriteString("\n")
		}
		for i, idx := range m.visible {
			line := m.formatRecord(m.s.res.Targets[idx])
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("type to filter • ↑/↓ select • enter show • esc quit"))

	case stateDetail:
		b.WriteString(m.code.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc back • q quit"))
	}

	return b.String()
}

func (m *browserModel) formatRecord(t gen.Target) string {
	fields := make([]string, len(t.Record.Fields))
	for i, f := range t.Record.Fields {
		fields[i] = f.Name + " " + typeStyle.Render(f.Type.String())
	}
	return nameStyle.Render(t.Record.Name) + " {" + strings.Join(fields, "; ") + "}"
}

func runInteractive(cfg *config.Config, input string, flags inspectFlags) error {
	s, err := openSession(cfg, input, flags)
	if err != nil {
		return err
	}
	p := tea.NewProgram(newBrowserModel(s, input), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
