package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"vitalog/internal/health"
	"vitalog/internal/models"
	"vitalog/internal/progression"
	"vitalog/internal/reminder"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateGarden:
		content = m.viewGarden()
	case StateStats:
		content = m.viewStats()
	}

	parts := []string{m.viewTabs(), content}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	parts = append(parts, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Garden", "Stats"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	now := time.Now()
	today := now.Format("2006-01-02")
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s\n\n", now.Format("Monday, 2 January 2006")))

	entries := m.repo.EntriesByDate(today)
	if len(entries) == 0 {
		b.WriteString(dimStyle.Render("No readings yet today") + "\n")
	} else {
		profile, hasProfile := m.repo.UserProfile()
		for _, entry := range entries {
			b.WriteString(fmt.Sprintf("%s  pulse %s  bp %s/%s\n",
				entry.Time,
				optInt(entry.PulseResting),
				optInt(entry.SystolicResting),
				optInt(entry.DiastolicResting)))
			if hasProfile {
				for _, warning := range health.CheckWarnings(entry, profile) {
					b.WriteString(warningStyle.Render("  ⚠ "+warning) + "\n")
				}
			}
		}
	}

	total := 0
	for _, drink := range m.repo.DrinkEntriesByDate(today) {
		total += drink.Amount
	}
	b.WriteString(fmt.Sprintf("\nHydration: %d ml\n", total))

	due := reminder.DueToday(m.repo.Reminders(), now)
	if len(due) > 0 {
		b.WriteString("\nReminders:\n")
		for _, rec := range due {
			b.WriteString(fmt.Sprintf("  %s  %s\n", rec.Time, rec.Type))
		}
	}

	appointments := m.repo.AppointmentsByDate(today)
	if len(appointments) > 0 {
		b.WriteString("\nAppointments:\n")
		for _, appointment := range appointments {
			b.WriteString(fmt.Sprintf("  %s  %s\n", appointment.Time, appointment.Title))
		}
	}

	return docStyle.Render(b.String())
}

func (m Model) viewGarden() string {
	state := m.repo.GameState()
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Coins: %d   Total XP: %d\n\n", state.Coins, state.TotalXP))

	for i, flower := range state.Flowers {
		tier := progression.TierForXP(flower.XP)
		line := fmt.Sprintf("%s %s  level %d, %d xp", tier.Emoji, flower.Name, flower.Level, flower.XP)
		if flower.WateredToday {
			line += "  (watered)"
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\nChallenges:\n")
	for _, challenge := range state.Challenges {
		b.WriteString("  " + challengeLine(challenge) + "\n")
	}

	return docStyle.Render(b.String())
}

func challengeLine(c models.GameChallenge) string {
	switch {
	case c.Completed && c.CompletedAt != "":
		return dimStyle.Render(fmt.Sprintf("✓ %s (claimed)", c.Title))
	case c.Completed:
		return statusStyle.Render(fmt.Sprintf("✓ %s (%d coins unclaimed)", c.Title, c.Reward))
	default:
		return fmt.Sprintf("%s  %d/%d", c.Title, c.Progress, c.Target)
	}
}

func (m Model) viewStats() string {
	stats := m.repo.UserStats()
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Level %d  (%d points)\n", stats.Level, stats.TotalPoints))
	b.WriteString(progressBar(stats.LevelProgress, 30) + "\n\n")
	b.WriteString(fmt.Sprintf("Streak:         %d days\n", stats.ConsecutiveDays))
	b.WriteString(fmt.Sprintf("Todos done:     %d\n", stats.TodosCompleted))
	b.WriteString(fmt.Sprintf("Recipes:        %d\n", stats.RecipesCreated))
	b.WriteString(fmt.Sprintf("Shopping items: %d\n", stats.ShoppingItemsAdded))

	entries := m.repo.HealthEntries()
	if len(entries) > 0 {
		avg := health.AverageValues(entries)
		b.WriteString(fmt.Sprintf("\nAvg pulse: %d bpm   Avg bp: %d/%d mmHg\n",
			avg.AvgPulse, avg.AvgSystolic, avg.AvgDiastolic))
	}

	if len(stats.Achievements) > 0 {
		b.WriteString(fmt.Sprintf("\nAchievements unlocked: %d\n", len(stats.Achievements)))
	}

	return docStyle.Render(b.String())
}

func progressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func optInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}
