// Package progression holds the points, XP and challenge math for the user
// level system and the flower garden. Everything here is pure; persistence
// belongs to the repository.
package progression

import "vitalog/internal/models"

const (
	// PointsPerLevel is the size of one user level.
	PointsPerLevel = 500
	// XPPerLevel is the size of one flower level.
	XPPerLevel = 50
	// WaterXPGain is the xp a flower earns per watering.
	WaterXPGain = 10

	// Point awards for user actions.
	PointsHealthEntry  = 20
	PointsShoppingItem = 5
	PointsRecipe       = 50

	// Level-up reward options.
	LevelUpXPBonus   = 25
	LevelUpCoinBonus = 50
)

// LevelForPoints maps cumulative points to a user level, starting at 1.
func LevelForPoints(totalPoints int) int {
	return totalPoints/PointsPerLevel + 1
}

// ProgressForPoints is the fraction of the current level completed, in [0,1).
func ProgressForPoints(totalPoints int) float64 {
	return float64(totalPoints%PointsPerLevel) / float64(PointsPerLevel)
}

// FlowerLevelForXP maps cumulative flower xp to a level, starting at 1.
func FlowerLevelForXP(xp int) int {
	return xp/XPPerLevel + 1
}

// Tier is a cosmetic growth stage, keyed on cumulative xp thresholds rather
// than the level number.
type Tier struct {
	Name       string
	XPRequired int
	Emoji      string
}

// Tiers is the fixed ascending growth ladder.
var Tiers = []Tier{
	{Name: "bud", XPRequired: 0, Emoji: "🌱"},
	{Name: "bloom", XPRequired: 50, Emoji: "🌸"},
	{Name: "full flower", XPRequired: 120, Emoji: "🌺"},
	{Name: "exotic flower", XPRequired: 250, Emoji: "🌻"},
	{Name: "futuristic flower", XPRequired: 500, Emoji: "✨"},
}

// TierForXP returns the highest tier whose threshold does not exceed xp.
func TierForXP(xp int) Tier {
	tier := Tiers[0]
	for _, t := range Tiers {
		if xp >= t.XPRequired {
			tier = t
		}
	}
	return tier
}

// ShopItem is a purchasable xp booster.
type ShopItem struct {
	ID      string
	Name    string
	Price   int
	XPBonus int
}

var ShopItems = []ShopItem{
	{ID: "fertilizer", Name: "Fertilizer", Price: 5, XPBonus: 10},
	{ID: "sunlamp", Name: "Sun Lamp", Price: 10, XPBonus: 15},
	{ID: "specialwater", Name: "Special Water", Price: 20, XPBonus: 25},
}

// ShopItemByID returns the catalog entry for id, or false when unknown.
func ShopItemByID(id string) (ShopItem, bool) {
	for _, item := range ShopItems {
		if item.ID == id {
			return item, true
		}
	}
	return ShopItem{}, false
}

// UpdateDailyChallenges recomputes progress for every incomplete daily
// challenge from the wateredToday flags. A challenge that reaches its target
// is marked completed and stamped with completedAt.
func UpdateDailyChallenges(challenges []models.GameChallenge, flowers []models.Flower, completedAt string) []models.GameChallenge {
	watered := 0
	for _, f := range flowers {
		if f.WateredToday {
			watered++
		}
	}

	updated := make([]models.GameChallenge, len(challenges))
	for i, c := range challenges {
		if c.Type == models.ChallengeDaily && !c.Completed {
			c.Progress = watered
			if watered >= c.Target {
				c.Completed = true
				c.CompletedAt = completedAt
			}
		}
		updated[i] = c
	}
	return updated
}

// AchievementTiers are the thresholds per counter; reaching a threshold
// unlocks one badge tier.
var AchievementTiers = map[models.AchievementType][]int{
	models.AchievementConsecutiveDays: {5, 15, 30, 50, 100},
	models.AchievementTodosCompleted:  {10, 25, 50, 100, 500, 1000},
	models.AchievementRecipesCreated:  {2, 5, 7, 10, 15, 20},
	models.AchievementShoppingItems:   {30, 80, 150, 200, 500},
}

// AchievementProgress counts how many tiers of an achievement type the given
// counter value has reached.
func AchievementProgress(achievementType models.AchievementType, value int) int {
	tiers := AchievementTiers[achievementType]
	reached := 0
	for _, tier := range tiers {
		if value >= tier {
			reached++
		}
	}
	return reached
}
