package detail

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/todo/internal/keys"
	"github.com/nhle/todo/internal/model"
)

var fixedNow = time.Date(2025, 3, 15, 9, 0, 0, 0, time.Local)

func newModel() Model {
	return New(keys.DefaultKeyMap(), func() time.Time { return fixedNow }, "", 80, 30)
}

func TestRenderShowsFields(t *testing.T) {
	due := time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local)
	m := newModel()
	m.SetTodo(model.Todo{ID: "a", Title: "file taxes", Note: "bring **receipts**", EndAt: &due, URL: "https://irs.test"})

	out := m.View()
	assert.Contains(t, out, "file taxes")
	assert.Contains(t, out, "2025-03-14 (overdue)")
	assert.Contains(t, out, "https://irs.test")
	assert.Contains(t, out, "receipts")
}

func TestRenderWithoutNote(t *testing.T) {
	m := newModel()
	m.SetTodo(model.Todo{ID: "a", Title: "plain"})
	assert.Contains(t, m.View(), "No note")
}

func TestKeys(t *testing.T) {
	m := newModel()
	m.SetTodo(model.Todo{ID: "a", Title: "x", URL: "https://x.test"})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	require.NotNil(t, cmd)
	assert.Equal(t, OpenURLMsg{URL: "https://x.test"}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	require.NotNil(t, cmd)
	assert.Equal(t, EditMsg{ID: "a"}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, BackMsg{}, cmd())
}

func TestRefreshClearsMissingTodo(t *testing.T) {
	m := newModel()
	m.SetTodo(model.Todo{ID: "a", Title: "x"})
	m.Refresh(model.Todo{}, false)
	_, ok := m.Todo()
	assert.False(t, ok)
}
