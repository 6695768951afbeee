package repo

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"vitalog/internal/models"
	"vitalog/internal/progression"
	"vitalog/internal/storage"
)

// LevelUpReward is the choice offered when a flower levels up.
type LevelUpReward string

const (
	RewardXP    LevelUpReward = "xp"
	RewardItem  LevelUpReward = "item"
	RewardCoins LevelUpReward = "coins"
)

// GameState returns a snapshot of the garden.
func (r *Repository) GameState() models.GameState {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.game
	state.Flowers = append([]models.Flower(nil), r.game.Flowers...)
	state.Inventory = append([]models.GameItem(nil), r.game.Inventory...)
	state.Challenges = append([]models.GameChallenge(nil), r.game.Challenges...)
	state.Events = append([]models.GameEvent(nil), r.game.Events...)
	return state
}

// UpdateGameState overwrites the whole singleton.
func (r *Repository) UpdateGameState(state models.GameState) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	r.game = state
	return r.persist(storage.KeyGameState, r.game)
}

// WaterFlower grants the watering xp to one flower, marks it watered and
// re-evaluates the incomplete daily challenges. There is no daily lockout:
// repeated waterings before midnight keep adding xp (kept from the app this
// replaces; see DESIGN.md).
func (r *Repository) WaterFlower(flowerID string) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	found := false
	for i := range r.game.Flowers {
		if r.game.Flowers[i].ID == flowerID {
			flower := &r.game.Flowers[i]
			flower.XP += progression.WaterXPGain
			flower.Level = progression.FlowerLevelForXP(flower.XP)
			flower.LastWateredDate = r.today()
			flower.WateredToday = true
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: flower %s", ErrNotFound, flowerID)
	}

	r.game.Challenges = progression.UpdateDailyChallenges(r.game.Challenges, r.game.Flowers, r.timestamp())
	r.game.TotalXP += progression.WaterXPGain

	return r.persist(storage.KeyGameState, r.game)
}

// AddGameCoins adds coins to the balance.
func (r *Repository) AddGameCoins(amount int) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	r.game.Coins += amount
	return r.persist(storage.KeyGameState, r.game)
}

// UseGameItem consumes one unit of an inventory item and applies its xp bonus
// to the target flower and the garden total.
func (r *Repository) UseGameItem(itemID, flowerID string) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	itemIdx := -1
	for i := range r.game.Inventory {
		if r.game.Inventory[i].ID == itemID {
			itemIdx = i
			break
		}
	}
	if itemIdx < 0 {
		return fmt.Errorf("%w: item %s", ErrNotFound, itemID)
	}

	flowerIdx := -1
	for i := range r.game.Flowers {
		if r.game.Flowers[i].ID == flowerID {
			flowerIdx = i
			break
		}
	}
	if flowerIdx < 0 {
		return fmt.Errorf("%w: flower %s", ErrNotFound, flowerID)
	}

	bonus := r.game.Inventory[itemIdx].XPBonus

	r.game.Inventory[itemIdx].Quantity--
	if r.game.Inventory[itemIdx].Quantity <= 0 {
		r.game.Inventory = append(r.game.Inventory[:itemIdx], r.game.Inventory[itemIdx+1:]...)
	}

	flower := &r.game.Flowers[flowerIdx]
	flower.XP += bonus
	flower.Level = progression.FlowerLevelForXP(flower.XP)
	r.game.TotalXP += bonus

	return r.persist(storage.KeyGameState, r.game)
}

// ClaimChallenge pays out a completed challenge exactly once. A stamped
// completedAt means the reward is gone; claiming again is rejected.
func (r *Repository) ClaimChallenge(challengeID string) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	for i := range r.game.Challenges {
		challenge := &r.game.Challenges[i]
		if challenge.ID != challengeID {
			continue
		}

		if !challenge.Completed {
			return fmt.Errorf("%w: %s", ErrChallengeIncomplete, challengeID)
		}
		if challenge.CompletedAt != "" {
			return fmt.Errorf("%w: %s", ErrAlreadyClaimed, challengeID)
		}

		r.game.Coins += challenge.Reward
		challenge.CompletedAt = r.timestamp()
		return r.persist(storage.KeyGameState, r.game)
	}

	return fmt.Errorf("%w: challenge %s", ErrNotFound, challengeID)
}

// BuyShopItem exchanges coins for one unit of a catalog item.
func (r *Repository) BuyShopItem(itemID string) error {
	item, ok := progression.ShopItemByID(itemID)
	if !ok {
		return fmt.Errorf("%w: shop item %s", ErrNotFound, itemID)
	}

	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	if r.game.Coins < item.Price {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientCoins, item.ID, item.Price, r.game.Coins)
	}

	r.game.Coins -= item.Price
	r.addInventoryItemLocked(models.GameItem{
		ID:      item.ID,
		Name:    item.Name,
		XPBonus: item.XPBonus,
	})

	return r.persist(storage.KeyGameState, r.game)
}

// CreateFlower plants a new named flower at level 1.
func (r *Repository) CreateFlower(name string) (models.Flower, error) {
	flower := models.Flower{
		ID:              uuid.New().String(),
		Name:            name,
		Level:           1,
		XP:              0,
		LastWateredDate: r.today(),
		WateredToday:    false,
		CreatedAt:       r.timestamp(),
	}

	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	r.game.Flowers = append(r.game.Flowers, flower)
	return flower, r.persist(storage.KeyGameState, r.game)
}

// ClaimLevelUpReward applies the reward chosen after a flower levels up:
// bonus xp for that flower, a random catalog item, or a coin grant.
func (r *Repository) ClaimLevelUpReward(flowerID string, reward LevelUpReward) error {
	r.mu.Lock()
	defer r.notify()
	defer r.mu.Unlock()

	switch reward {
	case RewardXP:
		found := false
		for i := range r.game.Flowers {
			if r.game.Flowers[i].ID == flowerID {
				flower := &r.game.Flowers[i]
				flower.XP += progression.LevelUpXPBonus
				flower.Level = progression.FlowerLevelForXP(flower.XP)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: flower %s", ErrNotFound, flowerID)
		}
		r.game.TotalXP += progression.LevelUpXPBonus

	case RewardItem:
		item := progression.ShopItems[rand.Intn(len(progression.ShopItems))]
		r.addInventoryItemLocked(models.GameItem{
			ID:      item.ID,
			Name:    item.Name,
			XPBonus: item.XPBonus,
		})

	case RewardCoins:
		r.game.Coins += progression.LevelUpCoinBonus

	default:
		return fmt.Errorf("unknown level-up reward: %q", reward)
	}

	return r.persist(storage.KeyGameState, r.game)
}

// addInventoryItemLocked adds one unit, merging with an existing stack.
func (r *Repository) addInventoryItemLocked(item models.GameItem) {
	for i := range r.game.Inventory {
		if r.game.Inventory[i].ID == item.ID {
			r.game.Inventory[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	r.game.Inventory = append(r.game.Inventory, item)
}
