package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vitalog/internal/repo"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateGarden
	StateStats
)

type Model struct {
	repo     *repo.Repository
	state    SessionState
	keys     KeyMap
	help     help.Model
	cursor   int // selected flower on the garden tab
	status   string
	quitting bool
	width    int
	height   int
}

func NewModel(r *repo.Repository) Model {
	return Model{
		repo:  r,
		state: StateToday,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateGarden {
		keys = append(keys, m.keys.Up, m.keys.Down, m.keys.Water)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Refresh}
	var actions []key.Binding
	if m.state == StateGarden {
		actions = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Water}
	}
	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
