package progression

import (
	"testing"

	"vitalog/internal/models"
)

func TestLevelForPoints(t *testing.T) {
	cases := []struct {
		points int
		level  int
	}{
		{0, 1},
		{499, 1},
		{500, 2},
		{999, 2},
		{1000, 3},
		{75, 1},
	}

	for _, tc := range cases {
		if got := LevelForPoints(tc.points); got != tc.level {
			t.Errorf("LevelForPoints(%d) = %d, want %d", tc.points, got, tc.level)
		}
	}
}

func TestProgressForPoints(t *testing.T) {
	cases := []struct {
		points   int
		progress float64
	}{
		{0, 0},
		{250, 0.5},
		{75, 0.15},
		{500, 0},
		{750, 0.5},
	}

	for _, tc := range cases {
		if got := ProgressForPoints(tc.points); got != tc.progress {
			t.Errorf("ProgressForPoints(%d) = %v, want %v", tc.points, got, tc.progress)
		}
	}
}

func TestFlowerLevelForXP(t *testing.T) {
	cases := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{49, 1},
		{50, 2},
		{55, 2},
		{100, 3},
	}

	for _, tc := range cases {
		if got := FlowerLevelForXP(tc.xp); got != tc.level {
			t.Errorf("FlowerLevelForXP(%d) = %d, want %d", tc.xp, got, tc.level)
		}
	}
}

func TestTierForXP(t *testing.T) {
	cases := []struct {
		xp   int
		name string
	}{
		{0, "bud"},
		{49, "bud"},
		{50, "bloom"},
		{119, "bloom"},
		{120, "full flower"},
		{250, "exotic flower"},
		{499, "exotic flower"},
		{500, "futuristic flower"},
		{9999, "futuristic flower"},
	}

	for _, tc := range cases {
		if got := TierForXP(tc.xp); got.Name != tc.name {
			t.Errorf("TierForXP(%d) = %q, want %q", tc.xp, got.Name, tc.name)
		}
	}
}

func TestShopItemByID(t *testing.T) {
	item, ok := ShopItemByID("fertilizer")
	if !ok {
		t.Fatal("expected fertilizer to exist")
	}
	if item.Price != 5 || item.XPBonus != 10 {
		t.Errorf("fertilizer = %+v, want price 5 and xp 10", item)
	}

	if _, ok := ShopItemByID("unobtainium"); ok {
		t.Error("expected unknown item to be missing")
	}
}

func TestUpdateDailyChallenges(t *testing.T) {
	challenges := []models.GameChallenge{
		{ID: "daily-1", Type: models.ChallengeDaily, Target: 1},
		{ID: "weekly-1", Type: models.ChallengeWeekly, Target: 7},
	}
	flowers := []models.Flower{
		{ID: "1", WateredToday: true},
		{ID: "2", WateredToday: false},
	}

	updated := UpdateDailyChallenges(challenges, flowers, "2026-08-31T12:00:00Z")

	daily := updated[0]
	if daily.Progress != 1 {
		t.Errorf("daily progress = %d, want 1", daily.Progress)
	}
	if !daily.Completed {
		t.Error("daily challenge should be completed")
	}
	if daily.CompletedAt == "" {
		t.Error("completed daily challenge should carry a timestamp")
	}

	weekly := updated[1]
	if weekly.Completed || weekly.Progress != 0 {
		t.Errorf("weekly challenge should be untouched, got %+v", weekly)
	}
}

func TestUpdateDailyChallengesSkipsCompleted(t *testing.T) {
	challenges := []models.GameChallenge{
		{ID: "daily-1", Type: models.ChallengeDaily, Target: 1, Completed: true, CompletedAt: "earlier", Progress: 1},
	}
	flowers := []models.Flower{{ID: "1", WateredToday: false}}

	updated := UpdateDailyChallenges(challenges, flowers, "later")

	if updated[0].CompletedAt != "earlier" {
		t.Errorf("completed challenge was re-stamped: %+v", updated[0])
	}
	if updated[0].Progress != 1 {
		t.Errorf("completed challenge progress was reset: %+v", updated[0])
	}
}

func TestAchievementProgress(t *testing.T) {
	cases := []struct {
		achievementType models.AchievementType
		value           int
		want            int
	}{
		{models.AchievementConsecutiveDays, 0, 0},
		{models.AchievementConsecutiveDays, 5, 1},
		{models.AchievementConsecutiveDays, 100, 5},
		{models.AchievementTodosCompleted, 26, 2},
		{models.AchievementRecipesCreated, 7, 3},
		{models.AchievementShoppingItems, 200, 4},
	}

	for _, tc := range cases {
		if got := AchievementProgress(tc.achievementType, tc.value); got != tc.want {
			t.Errorf("AchievementProgress(%s, %d) = %d, want %d", tc.achievementType, tc.value, got, tc.want)
		}
	}
}
