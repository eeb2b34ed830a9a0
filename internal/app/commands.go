package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/ui/command"
)

// executeCommand handles a command string from the command palette.
func (m *Model) executeCommand(cmd command.CommandMsg) tea.Cmd {
	args := cmd.Args()

	switch cmd.Name() {
	case "new", "add":
		return m.startCreate()

	case "filter":
		if len(args) != 1 {
			m.notice = "usage: filter all|active|completed"
			return nil
		}
		f, err := model.ParseFilter(args[0])
		if err != nil {
			m.notice = err.Error()
			return nil
		}
		return m.setFilter(f)

	case "sort":
		if len(args) != 1 {
			m.notice = "usage: sort none|date-asc|date-desc"
			return nil
		}
		s, err := model.ParseSortOrder(args[0])
		if err != nil {
			m.notice = err.Error()
			return nil
		}
		return m.setSort(s)

	case "group":
		return m.setGrouped(!m.prefs.Grouped())

	case "copy":
		return m.copyUrgent()

	case "clear":
		m.selection.Clear()
		return nil

	case "quit", "q":
		return tea.Quit

	default:
		m.notice = fmt.Sprintf("unknown command: %s", cmd.Name())
		return nil
	}
}
