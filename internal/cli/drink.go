package cli

import (
	"fmt"

	"github.com/google/uuid"

	"vitalog/internal/models"
	"vitalog/internal/validation"
)

type DrinkCmd struct {
	Add  DrinkAddCmd  `cmd:"" help:"Record a drink."`
	List DrinkListCmd `cmd:"" help:"Show hydration for a day."`
}

type DrinkAddCmd struct {
	Amount int    `arg:"" help:"Amount in milliliters."`
	Date   string `help:"Date (YYYY-MM-DD, default today)." default:""`
	Time   string `help:"Time (HH:MM, default now)." default:""`
}

func (c *DrinkAddCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	drinkTime := c.Time
	if drinkTime == "" {
		drinkTime = getCurrentTime()
	}

	entry := models.DrinkEntry{
		ID:     uuid.New().String(),
		Date:   date,
		Time:   drinkTime,
		Amount: c.Amount,
	}

	if err := validation.ValidateDrinkEntry(entry); err != nil {
		return err
	}

	if err := ctx.Repo.AddDrinkEntry(entry); err != nil {
		return err
	}

	fmt.Printf("Recorded %d ml\n", c.Amount)
	return nil
}

type DrinkListCmd struct {
	Date string `help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DrinkListCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	entries := ctx.Repo.DrinkEntriesByDate(date)
	if len(entries) == 0 {
		fmt.Printf("No drinks recorded for %s\n", date)
		return nil
	}

	total := 0
	for _, entry := range entries {
		fmt.Printf("  %s  %d ml\n", entry.Time, entry.Amount)
		total += entry.Amount
	}
	fmt.Printf("Total: %d ml\n", total)

	return nil
}
