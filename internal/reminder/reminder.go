// Package reminder computes when pulse and medication reminders fire. It is
// the recurrence half of the app; the repository owns the reminder records.
package reminder

import (
	"fmt"
	"strings"
	"time"

	"vitalog/internal/models"
)

var weekdayNames = map[string]time.Weekday{
	"sun":       time.Sunday,
	"sunday":    time.Sunday,
	"mon":       time.Monday,
	"monday":    time.Monday,
	"tue":       time.Tuesday,
	"tuesday":   time.Tuesday,
	"wed":       time.Wednesday,
	"wednesday": time.Wednesday,
	"thu":       time.Thursday,
	"thursday":  time.Thursday,
	"fri":       time.Friday,
	"friday":    time.Friday,
	"sat":       time.Saturday,
	"saturday":  time.Saturday,
}

// ParseWeekdays parses a comma-separated list of weekday names.
func ParseWeekdays(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var days []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		wd, ok := weekdayNames[part]
		if !ok {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		days = append(days, strings.ToLower(wd.String()))
	}

	return days, nil
}

// DueOn reports whether a reminder fires on the given day. A reminder with no
// day set fires every day; disabled reminders never fire.
func DueOn(r models.Reminder, day time.Time) bool {
	if !r.Enabled {
		return false
	}
	if len(r.Days) == 0 {
		return true
	}

	weekday := day.Weekday()
	for _, name := range r.Days {
		if wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]; ok && wd == weekday {
			return true
		}
	}
	return false
}

// DueToday filters the reminders that fire on the given day, preserving order.
func DueToday(reminders []models.Reminder, day time.Time) []models.Reminder {
	var due []models.Reminder
	for _, r := range reminders {
		if DueOn(r, day) {
			due = append(due, r)
		}
	}
	return due
}

// NextOccurrence returns the next time the reminder fires at or after from.
// Returns an error for an unparseable reminder time or when the reminder is
// disabled.
func NextOccurrence(r models.Reminder, from time.Time) (time.Time, error) {
	if !r.Enabled {
		return time.Time{}, fmt.Errorf("reminder %s is disabled", r.ID)
	}

	fireAt, err := time.Parse("15:04", r.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reminder time %q: %w", r.Time, err)
	}

	// Scan at most a week ahead; weekday recurrence repeats within 7 days.
	for offset := 0; offset <= 7; offset++ {
		day := from.AddDate(0, 0, offset)
		if !DueOn(r, day) {
			continue
		}

		candidate := time.Date(day.Year(), day.Month(), day.Day(), fireAt.Hour(), fireAt.Minute(), 0, 0, from.Location())
		if !candidate.Before(from) {
			return candidate, nil
		}
	}

	return time.Time{}, fmt.Errorf("reminder %s has no upcoming occurrence", r.ID)
}
