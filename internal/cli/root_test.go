package cli

import (
	"testing"

	"vitalog/internal/models"
)

func TestRecordEntryDayStartsStreak(t *testing.T) {
	stats := models.DefaultUserStats()

	recordEntryDay(&stats, "2026-08-31", "ts")

	if stats.ConsecutiveDays != 1 {
		t.Errorf("ConsecutiveDays = %d, want 1", stats.ConsecutiveDays)
	}
	if stats.LastEntryDate != "2026-08-31" {
		t.Errorf("LastEntryDate = %q", stats.LastEntryDate)
	}
}

func TestRecordEntryDayExtendsStreak(t *testing.T) {
	stats := models.DefaultUserStats()
	stats.ConsecutiveDays = 4
	stats.LastEntryDate = "2026-08-30"

	recordEntryDay(&stats, "2026-08-31", "ts")

	if stats.ConsecutiveDays != 5 {
		t.Errorf("ConsecutiveDays = %d, want 5", stats.ConsecutiveDays)
	}
	// Day five unlocks the first streak badge.
	if len(stats.Achievements) != 1 || stats.Achievements[0].Type != models.AchievementConsecutiveDays {
		t.Errorf("achievements = %+v", stats.Achievements)
	}
}

func TestRecordEntryDayResetsAfterGap(t *testing.T) {
	stats := models.DefaultUserStats()
	stats.ConsecutiveDays = 10
	stats.LastEntryDate = "2026-08-20"

	recordEntryDay(&stats, "2026-08-31", "ts")

	if stats.ConsecutiveDays != 1 {
		t.Errorf("ConsecutiveDays = %d, want 1 after a gap", stats.ConsecutiveDays)
	}
}

func TestRecordEntryDaySameDayIsIdempotent(t *testing.T) {
	stats := models.DefaultUserStats()
	stats.ConsecutiveDays = 3
	stats.LastEntryDate = "2026-08-31"

	recordEntryDay(&stats, "2026-08-31", "ts")

	if stats.ConsecutiveDays != 3 {
		t.Errorf("ConsecutiveDays = %d, second entry on the same day should not count", stats.ConsecutiveDays)
	}
}

func TestUnlockAchievementsKeepsExistingStamps(t *testing.T) {
	stats := models.DefaultUserStats()
	stats.Achievements = []models.Achievement{
		{ID: "todos_completed-1", Type: models.AchievementTodosCompleted, Tier: 1, UnlockedAt: "old"},
	}

	unlockAchievements(&stats, models.AchievementTodosCompleted, 25, "new")

	if len(stats.Achievements) != 2 {
		t.Fatalf("achievements = %+v, want tiers 1 and 2", stats.Achievements)
	}
	if stats.Achievements[0].UnlockedAt != "old" {
		t.Error("existing badge was re-stamped")
	}
	if stats.Achievements[1].Tier != 2 || stats.Achievements[1].UnlockedAt != "new" {
		t.Errorf("new badge = %+v", stats.Achievements[1])
	}
}

func TestParseIngredients(t *testing.T) {
	ingredients, err := parseIngredients("flour:500:g, milk:250:ml, salt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ingredients) != 3 {
		t.Fatalf("got %d ingredients, want 3", len(ingredients))
	}
	if ingredients[0].Name != "flour" || ingredients[0].Quantity != 500 || ingredients[0].Unit != "g" {
		t.Errorf("ingredients[0] = %+v", ingredients[0])
	}
	if ingredients[2].Name != "salt" || ingredients[2].Quantity != 0 {
		t.Errorf("ingredients[2] = %+v", ingredients[2])
	}
}

func TestParseIngredientsInvalidQuantity(t *testing.T) {
	if _, err := parseIngredients("flour:lots:g"); err == nil {
		t.Error("expected an error for a non-numeric quantity")
	}
}

func TestResolveDate(t *testing.T) {
	if _, err := resolveDate("2026-08-31"); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}
	if got, _ := resolveDate("today"); got != getCurrentDate() {
		t.Errorf("resolveDate(today) = %q", got)
	}
	if _, err := resolveDate("31.08.2026"); err == nil {
		t.Error("expected an error for a non-ISO date")
	}
}
