package cli

import (
	"fmt"
	"strings"

	"vitalog/internal/health"
	"vitalog/internal/models"
	"vitalog/internal/progression"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	stats := ctx.Repo.UserStats()

	fmt.Printf("Level %d  (%d points, %.0f%% to next level)\n",
		stats.Level, stats.TotalPoints, stats.LevelProgress*100)
	fmt.Printf("Streak: %d consecutive days\n", stats.ConsecutiveDays)
	fmt.Println()

	entries := ctx.Repo.HealthEntries()
	if len(entries) > 0 {
		avg := health.AverageValues(entries)
		fmt.Printf("Averages over %d entries:\n", len(entries))
		fmt.Printf("  Pulse:          %d bpm\n", avg.AvgPulse)
		fmt.Printf("  Blood pressure: %d/%d mmHg\n", avg.AvgSystolic, avg.AvgDiastolic)
		if avg.AvgPulseResting > 0 || avg.AvgPulseLight > 0 || avg.AvgPulseSports > 0 {
			fmt.Printf("  Pulse by activity: resting %d, light %d, sports %d\n",
				avg.AvgPulseResting, avg.AvgPulseLight, avg.AvgPulseSports)
		}
		fmt.Println()
	}

	fmt.Println("Achievements:")
	counters := map[models.AchievementType]int{
		models.AchievementConsecutiveDays: stats.ConsecutiveDays,
		models.AchievementTodosCompleted:  stats.TodosCompleted,
		models.AchievementRecipesCreated:  stats.RecipesCreated,
		models.AchievementShoppingItems:   stats.ShoppingItemsAdded,
	}
	for _, achievementType := range []models.AchievementType{
		models.AchievementConsecutiveDays,
		models.AchievementTodosCompleted,
		models.AchievementRecipesCreated,
		models.AchievementShoppingItems,
	} {
		value := counters[achievementType]
		tiers := progression.AchievementTiers[achievementType]
		reached := progression.AchievementProgress(achievementType, value)
		label := strings.ReplaceAll(string(achievementType), "_", " ")
		fmt.Printf("  %-17s %d/%d tiers (at %d)\n", label, reached, len(tiers), value)
	}

	return nil
}
