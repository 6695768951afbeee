package cli

import (
	"fmt"
	"time"

	"vitalog/internal/health"
	"vitalog/internal/models"
)

type SyncCmd struct {
	Run  SyncRunCmd  `cmd:"" help:"Simulate a wearable sync for a day."`
	Show SyncShowCmd `cmd:"" help:"Show the stored wearable snapshot for a day."`
}

type SyncRunCmd struct {
	Date string `help:"Date to sync (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *SyncRunCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	data := health.SimulateSync(date, time.Now())
	if err := ctx.Repo.UpsertSamsungHealthData(data); err != nil {
		return err
	}

	fmt.Printf("Synced wearable data for %s\n", date)
	printWearable(data)
	return nil
}

type SyncShowCmd struct {
	Date string `help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *SyncShowCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	date, err := resolveDate(c.Date)
	if err != nil {
		return err
	}

	data, ok := ctx.Repo.SamsungHealthDataByDate(date)
	if !ok {
		fmt.Printf("No wearable data for %s\n", date)
		return nil
	}

	printWearable(data)
	return nil
}

func printWearable(data models.SamsungHealthData) {
	fmt.Printf("  Heart rate: resting %s, light %s, sports %s\n",
		fmtOptInt(data.HeartRateResting, " bpm"),
		fmtOptInt(data.HeartRateLight, " bpm"),
		fmtOptInt(data.HeartRateSports, " bpm"))
	if data.StepCount != nil {
		fmt.Printf("  Steps:      %d\n", *data.StepCount)
	}
	if data.SleepDuration != nil {
		fmt.Printf("  Sleep:      %.1f h (quality: %s)\n", *data.SleepDuration, health.SleepQuality(data))
	}
}
