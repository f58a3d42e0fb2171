// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("cancelled by user")

// TUI runs interactive prompts on the given terminal streams.
type TUI struct {
	in  io.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *TUI {
	return &TUI{in: in, out: out}
}

// PromptPassword asks for a non-empty masked value labelled label.
func (t *TUI) PromptPassword(label string) (string, error) {
	program := tea.NewProgram(newPromptModel(label, true), tea.WithInput(t.in), tea.WithOutput(t.out))

	finalModel, err := program.Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(promptModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quit {
		return "", ErrUserQuit
	}

	return result.Value(), nil
}
