package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vitalog/internal/progression"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % 3
			m.status = ""
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + 3) % 3
			m.status = ""
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Refresh):
			if err := m.repo.Refresh(); err != nil {
				m.status = fmt.Sprintf("reload failed: %v", err)
			} else {
				m.status = "reloaded"
			}
		case key.Matches(msg, m.keys.Up):
			if m.state == StateGarden && m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.state == StateGarden && m.cursor < len(m.repo.GameState().Flowers)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Water):
			if m.state == StateGarden {
				m = m.waterSelected()
			}
		}
	}

	return m, nil
}

func (m Model) waterSelected() Model {
	flowers := m.repo.GameState().Flowers
	if m.cursor >= len(flowers) {
		return m
	}

	flower := flowers[m.cursor]
	if err := m.repo.WaterFlower(flower.ID); err != nil {
		m.status = fmt.Sprintf("watering failed: %v", err)
		return m
	}

	m.status = fmt.Sprintf("Watered %s (+%d xp)", flower.Name, progression.WaterXPGain)
	return m
}
