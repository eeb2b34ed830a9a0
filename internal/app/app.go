package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/pkg/browser"

	"github.com/nhle/todo/internal/export"
	"github.com/nhle/todo/internal/keys"
	"github.com/nhle/todo/internal/logging"
	"github.com/nhle/todo/internal/model"
	"github.com/nhle/todo/internal/state"
	"github.com/nhle/todo/internal/store"
	"github.com/nhle/todo/internal/theme"
	"github.com/nhle/todo/internal/ui"
	"github.com/nhle/todo/internal/ui/command"
	"github.com/nhle/todo/internal/ui/confirm"
	"github.com/nhle/todo/internal/ui/detail"
	helpview "github.com/nhle/todo/internal/ui/help"
	"github.com/nhle/todo/internal/ui/todoform"
	"github.com/nhle/todo/internal/ui/todolist"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewList ViewState = iota
	ViewDetail
	ViewHelp
	ViewCommand
	ViewTodoCreate
	ViewTodoEdit
	ViewConfirm
)

// tickMsg re-renders the list so due-date styling follows the clock.
type tickMsg time.Time

// openURLResultMsg reports the outcome of opening a link in the browser.
type openURLResultMsg struct {
	url string
	err error
}

// Options carries the collaborators of the root model. Store is required;
// everything else has a default.
type Options struct {
	Store     store.Store
	Config    *model.AppConfig
	Logger    *log.Logger
	Clipboard export.Clipboard
	OpenURL   func(url string) error
	Now       func() time.Time
	NewID     func() string
}

// Model is the root Bubble Tea model. It owns the task, preference and
// selection stores and turns user intents into mutations followed by an
// asynchronous save.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	keys         *keys.KeyMap

	cfg       *model.AppConfig
	logger    *log.Logger
	clipboard export.Clipboard
	openURL   func(string) error
	now       func() time.Time

	tasks     *state.TaskList
	prefs     *state.Preferences
	selection *state.Selection
	saveTodos *persister[[]model.Todo]
	savePrefs *persister[model.Preferences]

	todoList    todolist.Model
	detail      detail.Model
	helpView    helpview.Model
	commandView command.Model
	todoForm    todoform.Model
	confirmView confirm.Model

	copyStatus  copyStatus
	copySeq     int
	notice      string
	saveErr     error
	pendingBulk bool
	ready       bool
}

// Load reads the todos and preferences from the store and builds the
// root model around them.
func Load(ctx context.Context, opts Options) (Model, error) {
	todos, err := opts.Store.LoadTodos(ctx)
	if err != nil {
		return Model{}, fmt.Errorf("loading todos: %w", err)
	}
	prefs, err := opts.Store.LoadPreferences(ctx)
	if err != nil {
		return Model{}, fmt.Errorf("loading preferences: %w", err)
	}
	return New(todos, prefs, opts), nil
}

// New creates the root model from an already loaded state.
func New(todos []model.Todo, prefs model.Preferences, opts Options) Model {
	if opts.Config == nil {
		opts.Config = model.DefaultAppConfig()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = export.SystemClipboard{}
	}
	if opts.OpenURL == nil {
		// The TUI owns the terminal; keep the launcher quiet.
		browser.Stdout = io.Discard
		browser.Stderr = io.Discard
		opts.OpenURL = browser.OpenURL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	var taskOpts []state.TaskListOption
	if opts.NewID != nil {
		taskOpts = append(taskOpts, state.WithIDGenerator(opts.NewID))
	}

	km := keys.DefaultKeyMap()
	selection := state.NewSelection()
	dateFormat := opts.Config.Display.DateFormat

	m := Model{
		currentView: ViewList,
		keys:        km,
		cfg:         opts.Config,
		logger:      opts.Logger,
		clipboard:   opts.Clipboard,
		openURL:     opts.OpenURL,
		now:         opts.Now,
		tasks:       state.NewTaskList(todos, taskOpts...),
		prefs:       state.NewPreferences(prefs),
		selection:   selection,
		saveTodos:   newPersister("todos", opts.Store.SaveTodos),
		savePrefs:   newPersister("preferences", opts.Store.SavePreferences),
		todoList:    todolist.New(selection, opts.Now, dateFormat, 80, 22),
		detail:      detail.New(km, opts.Now, dateFormat, 80, 22),
		helpView:    helpview.New(km, 80, 22),
		commandView: command.New(80, 22),
		todoForm: todoform.New(todoform.Options{
			RejectPastDueDates: opts.Config.Behavior.RejectPastDueDates,
			Now:                opts.Now,
		}, 80, 22),
		confirmView: confirm.New(80, 22),
	}
	m.refreshList()
	return m
}

// Init starts the clock tick.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Every(time.Minute, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w, h := m.layout.ContentWidth(), m.layout.ContentHeight()
		m.todoList.SetSize(w, h)
		m.detail.SetSize(w, h)
		m.helpView.SetSize(w, h)
		m.commandView.SetSize(w, h)
		m.todoForm.SetSize(w, h)
		m.confirmView.SetSize(w, h)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case tickMsg:
		cmd := m.refreshList()
		return m, tea.Batch(cmd, tick())

	case saveResultMsg:
		m.handleSaveResult(msg)
		return m, nil

	case copyResultMsg:
		return m, m.handleCopyResult(msg)

	case copyResetMsg:
		if msg.seq == m.copySeq {
			m.copyStatus = copyIdle
		}
		return m, nil

	case openURLResultMsg:
		if msg.err != nil {
			m.logger.Error("opening url failed", "url", msg.url, "err", msg.err)
			m.notice = fmt.Sprintf("open failed: %v", msg.err)
		}
		return m, nil

	case todoform.TodoCreatedMsg:
		m.currentView = ViewList
		return m, m.createTodo(msg.Draft)

	case todoform.TodoUpdatedMsg:
		m.currentView = m.previousView
		return m, m.updateTodo(msg.ID, msg.Patch)

	case todoform.TodoFormCancelMsg:
		m.currentView = m.previousView
		return m, nil

	case confirm.ConfirmedMsg:
		m.currentView = ViewList
		if m.pendingBulk {
			m.selection.Clear()
			m.pendingBulk = false
		}
		return m, m.deleteTodos(msg.IDs)

	case confirm.CancelledMsg:
		m.currentView = ViewList
		m.pendingBulk = false
		return m, nil

	case detail.BackMsg:
		m.currentView = ViewList
		return m, nil

	case detail.EditMsg:
		if t, ok := m.tasks.Get(msg.ID); ok {
			return m, m.startEdit(t)
		}
		return m, nil

	case detail.OpenURLMsg:
		return m, m.openLink(msg.URL)

	case command.CommandMsg:
		m.currentView = ViewList
		return m, m.executeCommand(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.currentView {
		case ViewList:
			return m.handleListKey(msg)
		case ViewHelp:
			if msg.String() == "esc" || msg.String() == "?" || msg.String() == "q" {
				m.currentView = m.previousView
			}
			return m, nil
		case ViewCommand:
			if msg.String() == "esc" {
				m.currentView = m.previousView
				return m, nil
			}
		}
	}

	return m.updateActiveView(msg)
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewList:
		m.todoList, cmd = m.todoList.Update(msg)
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	case ViewTodoCreate, ViewTodoEdit:
		m.todoForm, cmd = m.todoForm.Update(msg)
	case ViewConfirm:
		m.confirmView, cmd = m.confirmView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Todo", m.headerSegments()...)
	text, isErr := m.statusText()
	statusBar := m.layout.RenderStatusBar(text, isErr)

	return m.layout.RenderWithFrame(header, m.renderContent(), statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewList:
		return m.todoList.View()
	case ViewDetail:
		return m.detail.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	case ViewTodoCreate, ViewTodoEdit:
		return m.todoForm.View()
	case ViewConfirm:
		return m.confirmView.View()
	default:
		return ""
	}
}

func (m Model) headerSegments() []string {
	c := m.tasks.Counts()
	segments := []string{
		fmt.Sprintf("%d total / %d active / %d completed", c.Total, c.Active, c.Completed),
		"filter: " + string(m.prefs.Filter()),
		"sort: " + m.prefs.Sort().Label(),
	}
	if n := m.selection.Len(); n > 0 {
		segments = append(segments, fmt.Sprintf("%d selected", n))
	}
	if label := m.copyStatus.label(); label != "" {
		segments = append(segments, theme.CopyStatusStyle(label).Render(label))
	}
	return segments
}

// statusText returns the status bar text and whether it is an error.
func (m Model) statusText() (string, bool) {
	if m.notice != "" {
		return m.notice, true
	}
	if m.saveErr != nil {
		return fmt.Sprintf("save failed: %v", m.saveErr), true
	}

	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back", false
	case ViewCommand:
		return "enter execute | esc back", false
	case ViewDetail:
		return "esc back | o open url | e edit | j/k scroll", false
	case ViewTodoCreate, ViewTodoEdit:
		return "enter submit | esc cancel", false
	case ViewConfirm:
		return "y confirm | n cancel", false
	default:
		return m.helpView.ShortHelp(), false
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, strings.TrimSuffix(word, "s"))
}
