package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taskpad/internal/service"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd, modeEdit:
			return m.updateInput(msg)
		case modeConfirmClear:
			return m.updateConfirmClear(msg)
		default:
			return m.updateList(msg)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if msg.Width > 10 {
			m.input.Width = msg.Width - 10
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(m.tasks))

	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(m.tasks))

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.SetValue("")
		m.input.Focus()
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if task, ok := m.selected(); ok {
			m.svc.Dispatch(service.ToggleDone{ID: task.ID})
			m.refresh()
		}

	case key.Matches(msg, m.keys.Edit):
		if task, ok := m.selected(); ok {
			m.mode = modeEdit
			m.editID = task.ID
			m.input.SetValue(task.Description)
			m.input.CursorEnd()
			m.input.Focus()
			m.status = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(service.FilterAll)

	case key.Matches(msg, m.keys.FilterDone):
		m.setFilter(service.FilterDone)

	case key.Matches(msg, m.keys.FilterNot):
		m.setFilter(service.FilterNotDone)

	case key.Matches(msg, m.keys.CycleFilter):
		m.setFilter(nextFilter(m.filter))

	case key.Matches(msg, m.keys.Clear):
		if m.total > 0 {
			m.mode = modeConfirmClear
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeList
		m.input.Blur()
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			m.status = "description cannot be empty"
			return m, nil
		}
		if m.mode == modeEdit {
			m.svc.Dispatch(service.EditTask{ID: m.editID, Description: text})
		} else {
			m.svc.Dispatch(service.AddTask{Description: text})
			m.cursor = 0
		}
		m.mode = modeList
		m.input.Blur()
		m.input.SetValue("")
		m.status = ""
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmClear(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.svc.Dispatch(service.ClearAll{})
		m.refresh()
		m.mode = modeList
	case "n", "N", "esc", "q":
		m.mode = modeList
	}
	return m, nil
}

func (m *Model) setFilter(f service.Filter) {
	m.svc.Dispatch(service.SetFilter{Filter: f})
	m.refresh()
}

func (m Model) selected() (service.Task, bool) {
	if len(m.tasks) == 0 || m.cursor >= len(m.tasks) {
		return service.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func nextFilter(f service.Filter) service.Filter {
	switch f {
	case service.FilterAll:
		return service.FilterDone
	case service.FilterDone:
		return service.FilterNotDone
	default:
		return service.FilterAll
	}
}
