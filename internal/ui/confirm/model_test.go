package confirm

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain sends n enter presses and collects the messages the dialog emits.
func drain(m Model, n int) (Model, []tea.Msg) {
	var msgs []tea.Msg
	for range n {
		var cmd tea.Cmd
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if cmd == nil {
			continue
		}
		switch msg := cmd().(type) {
		case ConfirmedMsg, CancelledMsg:
			msgs = append(msgs, msg)
		}
	}
	return m, msgs
}

func TestConfirmAnswersOnce(t *testing.T) {
	m := New(80, 24)
	m.Ask("Delete?", "gone", []string{"a", "b"})
	m.b.ok = true
	m.form.State = huh.StateCompleted

	_, msgs := drain(m, 3)
	require.Len(t, msgs, 1)
	assert.Equal(t, ConfirmedMsg{IDs: []string{"a", "b"}}, msgs[0])
}

func TestAbortedConfirmCancelsOnce(t *testing.T) {
	m := New(80, 24)
	m.Ask("Delete?", "gone", []string{"a"})
	m.form.State = huh.StateAborted

	m, msgs := drain(m, 2)
	require.Len(t, msgs, 1)
	assert.Equal(t, CancelledMsg{}, msgs[0])

	m.Ask("Delete again?", "gone", []string{"c"})
	m.b.ok = true
	m.form.State = huh.StateCompleted
	_, msgs = drain(m, 2)
	require.Len(t, msgs, 1)
	assert.Equal(t, ConfirmedMsg{IDs: []string{"c"}}, msgs[0])
}
