package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"vitalog/internal/models"
	"vitalog/internal/reminder"
	"vitalog/internal/validation"
)

type ReminderCmd struct {
	Add    ReminderAddCmd    `cmd:"" help:"Add a reminder."`
	List   ReminderListCmd   `cmd:"" help:"List reminders."`
	Toggle ReminderToggleCmd `cmd:"" help:"Enable or disable a reminder."`
	Delete ReminderDeleteCmd `cmd:"" help:"Delete a reminder."`
	Due    ReminderDueCmd    `cmd:"" help:"Show reminders due today."`
}

type ReminderAddCmd struct {
	Type     string `arg:"" help:"Reminder type (pulse|medication)."`
	Time     string `arg:"" help:"Fire time (HH:MM)."`
	Weekdays string `short:"w" help:"Comma-separated weekdays; empty means every day."`
}

func (c *ReminderAddCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	days, err := reminder.ParseWeekdays(c.Weekdays)
	if err != nil {
		return err
	}

	rec := models.Reminder{
		ID:      uuid.New().String(),
		Type:    models.ReminderType(c.Type),
		Time:    c.Time,
		Enabled: true,
		Days:    days,
	}

	if err := validation.ValidateReminder(rec); err != nil {
		return err
	}
	if _, err := time.Parse("15:04", rec.Time); err != nil {
		return fmt.Errorf("invalid time format: %s (expected HH:MM)", rec.Time)
	}

	if err := ctx.Repo.AddReminder(rec); err != nil {
		return err
	}

	fmt.Printf("Added %s reminder at %s (ID: %s)\n", rec.Type, rec.Time, rec.ID)
	return nil
}

type ReminderListCmd struct{}

func (c *ReminderListCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	reminders := ctx.Repo.Reminders()
	if len(reminders) == 0 {
		fmt.Println("No reminders found")
		return nil
	}

	now := time.Now()
	for _, rec := range reminders {
		status := "enabled"
		if !rec.Enabled {
			status = "disabled"
		}

		days := "every day"
		if len(rec.Days) > 0 {
			days = fmt.Sprintf("%v", rec.Days)
		}

		fmt.Printf("  [%s] %s at %s (%s)  [%s]\n", status, rec.Type, rec.Time, days, rec.ID)

		if next, err := reminder.NextOccurrence(rec, now); err == nil {
			fmt.Printf("      Next: %s\n", next.Format("Mon 2006-01-02 15:04"))
		}
	}

	return nil
}

type ReminderToggleCmd struct {
	ID string `arg:"" help:"ID of the reminder to toggle."`
}

func (c *ReminderToggleCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	for _, rec := range ctx.Repo.Reminders() {
		if rec.ID == c.ID {
			rec.Enabled = !rec.Enabled
			if err := ctx.Repo.UpdateReminder(rec); err != nil {
				return err
			}
			state := "enabled"
			if !rec.Enabled {
				state = "disabled"
			}
			fmt.Printf("Reminder %s is now %s\n", rec.ID, state)
			return nil
		}
	}

	return fmt.Errorf("reminder not found: %s", c.ID)
}

type ReminderDeleteCmd struct {
	ID string `arg:"" help:"ID of the reminder to delete."`
}

func (c *ReminderDeleteCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	if err := ctx.Repo.DeleteReminder(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted reminder %s\n", c.ID)
	return nil
}

type ReminderDueCmd struct{}

func (c *ReminderDueCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	due := reminder.DueToday(ctx.Repo.Reminders(), time.Now())
	if len(due) == 0 {
		fmt.Println("Nothing due today")
		return nil
	}

	fmt.Println("Due today:")
	for _, rec := range due {
		fmt.Printf("  %s  %s\n", rec.Time, rec.Type)
	}

	return nil
}
