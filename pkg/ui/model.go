package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"taskpad/pkg/config"
	"taskpad/pkg/keymaps"
	"taskpad/pkg/signal"
	"taskpad/pkg/storage"
	"taskpad/pkg/tasks"
	"taskpad/pkg/theme"
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode InputMode = iota
	AddMode
	DeleteConfirmMode
	ThemePickerMode
	HelpViewMode
)

// tickMsg drives the clock display.
type tickMsg time.Time

// Model represents the application state
type Model struct {
	table         table.Model
	store         *tasks.Store
	manager       *theme.Manager
	app           *App
	keyMap        keymaps.KeyMap
	logger        *log.Logger
	width, height int

	mode        InputMode
	form        *form
	deleting    *tasks.Task
	themeCursor int
	now         time.Time
	tip         string
}

// NewModel wires the core subsystems to the presentation layer and resolves
// the startup state: tasks rehydrated, theme applied without a transition.
func NewModel(kv storage.KV, cfg config.Config, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}

	form := newForm()
	app := newApp(form)

	notify := signal.Notifier(func(s signal.Signal) {
		app.status = s.Message()
		logger.Debug("signal raised", "message", s.Message())
	})

	store := tasks.NewStore(kv, notify, logger)
	manager := theme.NewManager(kv, app, notify, logger)
	manager.Subscribe(func(old, new theme.Name, def theme.Definition) {
		app.status = "Theme: " + def.DisplayName
		logger.Debug("theme transition", "from", old, "to", new)
	})

	store.Load()
	manager.Initialize()

	columns := []table.Column{
		{Title: "", Width: 60},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	m := Model{
		table:   t,
		store:   store,
		manager: manager,
		app:     app,
		keyMap:  keymaps.BuildKeyMap(cfg.KeyMap),
		logger:  logger,
		mode:    NormalMode,
		form:    form,
		now:     time.Now(),
		tip:     pickTip(),
	}

	m.applyTableStyles()
	m.refreshRows()

	return m
}

// applyTableStyles restyles the task table for the active theme. Called at
// startup and again after every theme transition.
func (m *Model) applyTableStyles() {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.HiddenBorder()).
		BorderBottom(false).
		Bold(false).
		Foreground(lipgloss.NoColor{})
	s.Selected = m.app.styles.Selected
	m.table.SetStyles(s)
}

// Init initializes the model (required by Bubble Tea Model interface)
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
