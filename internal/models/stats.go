package models

type AchievementType string

const (
	AchievementConsecutiveDays AchievementType = "consecutive_days"
	AchievementTodosCompleted  AchievementType = "todos_completed"
	AchievementRecipesCreated  AchievementType = "recipes_created"
	AchievementShoppingItems   AchievementType = "shopping_items"
)

type Achievement struct {
	ID         string          `json:"id"`
	Type       AchievementType `json:"type"`
	Tier       int             `json:"tier"`
	UnlockedAt string          `json:"unlockedAt,omitempty"`
}

// UserStats is a singleton. Level and LevelProgress are derived from
// TotalPoints and recomputed on every point award.
type UserStats struct {
	TotalPoints        int           `json:"totalPoints"`
	Level              int           `json:"level"`
	LevelProgress      float64       `json:"levelProgress"`
	ConsecutiveDays    int           `json:"consecutiveDays"`
	LastEntryDate      string        `json:"lastEntryDate,omitempty"`
	TodosCompleted     int           `json:"todosCompleted"`
	RecipesCreated     int           `json:"recipesCreated"`
	ShoppingItemsAdded int           `json:"shoppingItemsAdded"`
	Achievements       []Achievement `json:"achievements"`
}

func DefaultUserStats() UserStats {
	return UserStats{
		TotalPoints:   0,
		Level:         1,
		LevelProgress: 0,
		Achievements:  []Achievement{},
	}
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

type AppSettings struct {
	Theme           Theme    `json:"theme" validate:"oneof=light dark auto"`
	FontSize        FontSize `json:"fontSize" validate:"oneof=small medium large"`
	SecurityCode    string   `json:"securityCode,omitempty"`
	SecurityEnabled bool     `json:"securityEnabled"`
	ProfileImageURI string   `json:"profileImageUri,omitempty"`
}

func DefaultAppSettings() AppSettings {
	return AppSettings{
		Theme:           ThemeAuto,
		FontSize:        FontMedium,
		SecurityEnabled: false,
	}
}
