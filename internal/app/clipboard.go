package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/todo/internal/export"
)

// CopyStatusResetDelay is how long a copy result stays in the header.
const CopyStatusResetDelay = 2 * time.Second

type copyStatus int

const (
	copyIdle copyStatus = iota
	copySuccess
	copyError
)

func (s copyStatus) label() string {
	switch s {
	case copySuccess:
		return "copied"
	case copyError:
		return "copy failed"
	default:
		return ""
	}
}

// copyResultMsg carries the outcome of a clipboard write. seq identifies
// the copy so a late result or reset cannot clobber a newer one.
type copyResultMsg struct {
	seq int
	err error
}

// copyResetMsg returns the copy status to idle.
type copyResetMsg struct {
	seq int
}

func (m *Model) copyText(text string) tea.Cmd {
	m.copySeq++
	seq := m.copySeq
	cb := m.clipboard
	return func() tea.Msg {
		return copyResultMsg{seq: seq, err: cb.WriteAll(text)}
	}
}

func (m *Model) copyUrgent() tea.Cmd {
	text := export.Format(m.cfg.Export.Format, m.tasks.All(), m.now())
	return m.copyText(text)
}

func (m *Model) copySelected(ids []string) tea.Cmd {
	text := export.Markdown(export.Selected(m.tasks.All(), ids))
	return m.copyText(text)
}

func (m *Model) handleCopyResult(msg copyResultMsg) tea.Cmd {
	if msg.seq != m.copySeq {
		return nil
	}
	if msg.err != nil {
		m.logger.Error("copy to clipboard failed", "err", msg.err)
		m.copyStatus = copyError
	} else {
		m.copyStatus = copySuccess
	}
	seq := msg.seq
	return tea.Tick(CopyStatusResetDelay, func(time.Time) tea.Msg {
		return copyResetMsg{seq: seq}
	})
}
