package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"vitalog/internal/health"
	"vitalog/internal/models"
	"vitalog/internal/progression"
	"vitalog/internal/validation"
)

type EntryCmd struct {
	Add    EntryAddCmd    `cmd:"" help:"Record a health entry."`
	List   EntryListCmd   `cmd:"" help:"List health entries."`
	Delete EntryDeleteCmd `cmd:"" help:"Delete a health entry."`
}

type EntryAddCmd struct {
	Date             string `help:"Entry date (YYYY-MM-DD, default today)." default:""`
	Time             string `help:"Entry time (HH:MM, default now)." default:""`
	Pulse            int    `short:"p" help:"Resting pulse (bpm)."`
	Systolic         int    `short:"s" help:"Resting systolic pressure (mmHg)."`
	Diastolic        int    `short:"d" help:"Resting diastolic pressure (mmHg)."`
	Medication       string `short:"m" help:"Medication name."`
	MedicationAmount string `help:"Medication amount."`
	Activity         string `short:"a" help:"Activity level (resting|light|sports)." default:""`
	Mood             int    `help:"Mood (1-10)."`
	Notes            string `short:"n" help:"Free-form notes."`
	Interactive      bool   `short:"i" help:"Fill in the entry with an interactive form."`
}

func (c *EntryAddCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	profile, err := ctx.requireProfile()
	if err != nil {
		return err
	}

	if c.Interactive {
		if err := c.runForm(); err != nil {
			return err
		}
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	entryTime := c.Time
	if entryTime == "" {
		entryTime = getCurrentTime()
	}

	entry := models.HealthEntry{
		ID:               uuid.New().String(),
		Date:             date,
		Time:             entryTime,
		Medication:       c.Medication,
		MedicationAmount: c.MedicationAmount,
		PulseResting:     intPtr(c.Pulse),
		SystolicResting:  intPtr(c.Systolic),
		DiastolicResting: intPtr(c.Diastolic),
		Notes:            c.Notes,
		ActivityLevel:    models.ActivityLevel(c.Activity),
		Mood:             intPtr(c.Mood),
	}

	if err := validation.ValidateHealthEntry(entry); err != nil {
		return err
	}

	if err := ctx.Repo.AddHealthEntry(entry); err != nil {
		return err
	}
	if err := ctx.Repo.AddPoints(progression.PointsHealthEntry); err != nil {
		return err
	}

	stats := ctx.Repo.UserStats()
	recordEntryDay(&stats, date, nowTimestamp())
	if err := ctx.Repo.UpdateUserStats(stats); err != nil {
		return err
	}

	fmt.Printf("Recorded entry for %s %s (+%d points)\n", date, entryTime, progression.PointsHealthEntry)

	warnings := health.CheckWarnings(entry, profile)
	for _, warning := range warnings {
		fmt.Printf("⚠ %s\n", warning)
	}

	return nil
}

// runForm collects the vitals interactively, filling the same fields the
// flags would.
func (c *EntryAddCmd) runForm() error {
	pulse := numericField(c.Pulse)
	systolic := numericField(c.Systolic)
	diastolic := numericField(c.Diastolic)
	mood := numericField(c.Mood)
	activity := c.Activity
	if activity == "" {
		activity = string(models.ActivityResting)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Resting pulse (bpm)").
				Description("Leave empty to skip").
				Value(&pulse).
				Validate(optionalPositiveInt),
			huh.NewInput().
				Title("Systolic pressure (mmHg)").
				Description("Leave empty to skip").
				Value(&systolic).
				Validate(optionalPositiveInt),
			huh.NewInput().
				Title("Diastolic pressure (mmHg)").
				Description("Leave empty to skip").
				Value(&diastolic).
				Validate(optionalPositiveInt),
			huh.NewSelect[string]().
				Title("Activity level").
				Options(
					huh.NewOption("Resting", string(models.ActivityResting)),
					huh.NewOption("Light activity", string(models.ActivityLight)),
					huh.NewOption("Sports", string(models.ActivitySports)),
				).
				Value(&activity),
			huh.NewInput().
				Title("Mood (1-10)").
				Description("Leave empty to skip").
				Value(&mood).
				Validate(optionalPositiveInt),
			huh.NewInput().
				Title("Medication").
				Value(&c.Medication),
			huh.NewInput().
				Title("Notes").
				Value(&c.Notes),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	c.Pulse = parseNumericField(pulse)
	c.Systolic = parseNumericField(systolic)
	c.Diastolic = parseNumericField(diastolic)
	c.Mood = parseNumericField(mood)
	c.Activity = activity
	return nil
}

func numericField(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func parseNumericField(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func optionalPositiveInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

type EntryListCmd struct {
	Date string `help:"Only entries for this date (YYYY-MM-DD or 'today')." default:""`
}

func (c *EntryListCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	var entries []models.HealthEntry
	if c.Date != "" {
		date, err := resolveDate(c.Date)
		if err != nil {
			return err
		}
		entries = ctx.Repo.EntriesByDate(date)
	} else {
		entries = ctx.Repo.HealthEntries()
	}

	if len(entries) == 0 {
		fmt.Println("No entries found")
		return nil
	}

	sort.Slice(entries, func(i, j int) bool {
		return entryTimestamp(entries[i]).Before(entryTimestamp(entries[j]))
	})

	for _, entry := range entries {
		fmt.Printf("%s %s  pulse %s  bp %s/%s  [%s]\n",
			entry.Date, entry.Time,
			fmtOptInt(entry.PulseResting, ""),
			fmtOptInt(entry.SystolicResting, ""),
			fmtOptInt(entry.DiastolicResting, ""),
			entry.ID)
		if entry.Medication != "" {
			fmt.Printf("    Medication: %s %s\n", entry.Medication, entry.MedicationAmount)
		}
		if entry.Notes != "" {
			fmt.Printf("    Notes: %s\n", entry.Notes)
		}
	}

	return nil
}

type EntryDeleteCmd struct {
	ID string `arg:"" help:"ID of the entry to delete."`
}

func (c *EntryDeleteCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	if err := ctx.Repo.DeleteHealthEntry(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted entry %s\n", c.ID)
	return nil
}

// entryTimestamp keeps list output stable when entries share a date.
func entryTimestamp(e models.HealthEntry) time.Time {
	t, err := time.Parse("2006-01-02 15:04", e.Date+" "+e.Time)
	if err != nil {
		return time.Time{}
	}
	return t
}
