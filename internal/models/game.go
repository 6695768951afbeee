package models

import "time"

type Flower struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Level           int    `json:"level"`
	XP              int    `json:"xp"`
	LastWateredDate string `json:"lastWateredDate"` // YYYY-MM-DD
	WateredToday    bool   `json:"wateredToday"`
	RescuesUsed     int    `json:"rescuesUsed"`
	CreatedAt       string `json:"createdAt"`
}

type GameItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	XPBonus  int    `json:"xpBonus"`
}

type ChallengeType string

const (
	ChallengeDaily   ChallengeType = "daily"
	ChallengeWeekly  ChallengeType = "weekly"
	ChallengeSpecial ChallengeType = "special"
)

type GameChallenge struct {
	ID          string        `json:"id"`
	Type        ChallengeType `json:"type"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Reward      int           `json:"reward"`
	Completed   bool          `json:"completed"`
	CompletedAt string        `json:"completedAt,omitempty"`
	Progress    int           `json:"progress"`
	Target      int           `json:"target"`
}

type GameEventType string

const (
	EventXPBoost   GameEventType = "xp_boost"
	EventFreeItems GameEventType = "free_items"
	EventSpecial   GameEventType = "special"
)

// GameEvent is part of the persisted shape but unused by current game rules.
type GameEvent struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Type         GameEventType `json:"type"`
	XPMultiplier *float64      `json:"xpMultiplier,omitempty"`
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate"`
	Active       bool          `json:"active"`
}

// GameState is a singleton holding the whole flower garden.
type GameState struct {
	Coins               int             `json:"coins"`
	Flowers             []Flower        `json:"flowers"`
	Inventory           []GameItem      `json:"inventory"`
	Challenges          []GameChallenge `json:"challenges"`
	Events              []GameEvent     `json:"events"`
	TotalXP             int             `json:"totalXp"`
	LastDailyRewardDate string          `json:"lastDailyRewardDate,omitempty"`
}

// DefaultGameState seeds the starter flower and the three launch challenges.
func DefaultGameState(now time.Time) GameState {
	return GameState{
		Coins: 0,
		Flowers: []Flower{
			{
				ID:              "1",
				Name:            "Blüte",
				Level:           1,
				XP:              0,
				LastWateredDate: now.Format("2006-01-02"),
				WateredToday:    false,
				RescuesUsed:     0,
				CreatedAt:       now.UTC().Format(time.RFC3339),
			},
		},
		Inventory: []GameItem{},
		Challenges: []GameChallenge{
			{
				ID:          "daily-1",
				Type:        ChallengeDaily,
				Title:       "Gieße alle Blumen heute",
				Description: "Gieße alle deine Blumen heute",
				Reward:      10,
				Target:      1,
			},
			{
				ID:          "weekly-1",
				Type:        ChallengeWeekly,
				Title:       "Pflege jede Blume 7 Tage hintereinander",
				Description: "Gieße deine Blumen 7 Tage hintereinander",
				Reward:      50,
				Target:      7,
			},
			{
				ID:          "special-1",
				Type:        ChallengeSpecial,
				Title:       "Level 3 bei allen Blumen erreichen",
				Description: "Bringe alle deine Blumen auf Level 3",
				Reward:      100,
				Target:      1,
			},
		},
		Events:  []GameEvent{},
		TotalXP: 0,
	}
}
