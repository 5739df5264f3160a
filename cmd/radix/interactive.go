package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ericlagergren/radix/codec"
	"github.com/ericlagergren/radix/internal/logging"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	input    textarea.Model
	modes    []string
	output   string
	status   string
	selected int
	decode   bool
	asBytes  bool
}

type copiedMsg struct {
	err error
}

func newInteractiveModel(initial string, asBytes bool) *interactiveModel {
	ta := textarea.New()
	ta.Placeholder = "Type or paste input..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(72)
	ta.SetHeight(6)
	ta.Focus()

	m := &interactiveModel{
		input:   ta,
		modes:   append(codec.Names(), jwtMode),
		asBytes: asBytes,
	}
	for i, name := range m.modes {
		if name == initial {
			m.selected = i
		}
	}
	m.decode = m.mode() == jwtMode
	m.refresh()
	return m
}

func (m *interactiveModel) mode() string {
	return m.modes[m.selected]
}

// refresh recomputes the output for the current input.
func (m *interactiveModel) refresh() {
	m.output, m.err = "", nil
	in := m.input.Value()
	if in == "" {
		return
	}
	m.output, m.err = transform(m.mode(), m.decode, m.asBytes, []byte(in))
}

func (m *interactiveModel) copyOutput() tea.Msg {
	return copiedMsg{err: writeClipboard(m.output)}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.status = ""
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.selected = (m.selected + 1) % len(m.modes)
			m.setMode()
			return m, nil

		case "shift+tab":
			m.selected = (m.selected + len(m.modes) - 1) % len(m.modes)
			m.setMode()
			return m, nil

		case "ctrl+t":
			if m.mode() != jwtMode {
				m.decode = !m.decode
				m.refresh()
			}
			return m, nil

		case "ctrl+b":
			m.asBytes = !m.asBytes
			m.refresh()
			return m, nil

		case "ctrl+y":
			if m.output == "" {
				return m, nil
			}
			return m, m.copyOutput

		case "ctrl+l":
			m.input.Reset()
			m.refresh()
			return m, nil
		}

	case tea.WindowSizeMsg:
		if msg.Width > 8 {
			m.input.SetWidth(msg.Width - 4)
		}

	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("copy failed: %v", msg.err)
			logging.Logger().Warn("clipboard write failed", zap.Error(msg.err))
		} else {
			m.status = "Copied to clipboard."
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *interactiveModel) setMode() {
	if m.mode() == jwtMode {
		m.decode = true
	}
	m.refresh()
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("radix"))
	b.WriteString(" ")
	if m.decode {
		b.WriteString("decode")
	} else {
		b.WriteString("encode")
	}
	if m.asBytes && m.decode {
		b.WriteString(" (bytes)")
	}
	b.WriteString("\n\n")

	for i, name := range m.modes {
		if i == m.selected {
			b.WriteString(selectedStyle.Render(" " + name + " "))
		} else {
			b.WriteString(modeStyle.Render(" " + name + " "))
		}
	}
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		if m.output != "" {
			b.WriteString(resultStyle.Render(m.output))
			b.WriteString("\n")
		}
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	case m.output != "":
		b.WriteString(resultStyle.Render(m.output))
	}
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("tab codec • ctrl+t encode/decode • ctrl+b bytes • ctrl+y copy • ctrl+l clear • esc quit"))
	return b.String()
}

func runInteractive(initial string, asBytes bool) error {
	p := tea.NewProgram(newInteractiveModel(initial, asBytes), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
