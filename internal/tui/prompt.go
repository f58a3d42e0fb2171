package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel asks for a single masked value.
type promptModel struct {
	label    string
	input    textinput.Model
	errMsg   string
	done     bool
	quit     bool
	required bool
}

func newPromptModel(label string, required bool) promptModel {
	input := textinput.New()
	input.Placeholder = strings.ToLower(label)
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return promptModel{label: label, input: input, required: required}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			if m.required && m.input.Value() == "" {
				m.errMsg = m.label + " is required"
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.label))
	b.WriteString(" ")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: confirm  esc: cancel"))
	b.WriteString("\n")
	return appStyle.Render(b.String())
}

// Value is the entered text.
func (m promptModel) Value() string {
	return m.input.Value()
}
