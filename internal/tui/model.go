// Package tui implements the interactive single-page task list.
//
// The model holds only view state (cursor, input, mode); all task state
// lives in the store and is re-read after every dispatch, so the screen is
// always rendered from a complete store snapshot.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskpad/internal/service"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeConfirmClear
)

// Model is the bubbletea model for the task list page.
type Model struct {
	svc service.Service

	tasks  []service.Task
	total  int
	filter service.Filter

	cursor int
	mode   mode
	input  textinput.Model
	editID string
	status string

	keys  keyMap
	help  help.Model
	width int
}

// NewModel creates the initial model over svc.
func NewModel(svc service.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		svc:   svc,
		input: ti,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
	m.refresh()
	return m
}

// Run opens the full-screen UI over svc and blocks until the user quits.
func Run(ctx context.Context, svc service.Service) error {
	program := tea.NewProgram(NewModel(svc), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// refresh re-reads the store snapshot and clamps the cursor.
func (m *Model) refresh() {
	state := m.svc.State()
	m.tasks = m.svc.Visible()
	m.total = len(state.Items)
	m.filter = state.Filter
	m.cursor = clampCursor(m.cursor, len(m.tasks))
}

func clampCursor(cursor, n int) int {
	if n == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
