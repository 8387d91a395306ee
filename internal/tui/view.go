package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskpad/internal/service"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62"))

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("245"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	doneStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("241"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("taskpad"))
	b.WriteString("\n\n")

	b.WriteString(m.filterTabs())
	b.WriteString("\n\n")

	switch m.mode {
	case modeAdd:
		b.WriteString("add: " + m.input.View() + "\n\n")
	case modeEdit:
		b.WriteString("edit: " + m.input.View() + "\n\n")
	case modeConfirmClear:
		b.WriteString(statusStyle.Render("remove all tasks? (y/n)") + "\n\n")
	}

	if len(m.tasks) == 0 {
		b.WriteString(countStyle.Render(emptyMessage(m.filter)) + "\n")
	}
	for i, task := range m.tasks {
		b.WriteString(m.taskLine(i, task))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(countStyle.Render(countLine(m.total)) + "\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) filterTabs() string {
	tabs := []struct {
		label  string
		filter service.Filter
	}{
		{"All", service.FilterAll},
		{"Done", service.FilterDone},
		{"Not Done", service.FilterNotDone},
	}

	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if tab.filter == m.filter {
			parts = append(parts, tabActiveStyle.Render(tab.label))
		} else {
			parts = append(parts, tabStyle.Render(tab.label))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) taskLine(i int, task service.Task) string {
	box := "[ ]"
	if task.Done {
		box = "[x]"
	}

	line := fmt.Sprintf("%s %s", box, task.Description)
	if task.Done {
		line = doneStyle.Render(line)
	}

	prefix := "  "
	if i == m.cursor && m.mode == modeList {
		prefix = cursorStyle.Render("> ")
	}
	return prefix + line
}

func countLine(total int) string {
	if total == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", total)
}

func emptyMessage(filter service.Filter) string {
	switch filter {
	case service.FilterDone:
		return "nothing done yet"
	case service.FilterNotDone:
		return "nothing left to do"
	default:
		return "no tasks, press 'a' to add one"
	}
}
