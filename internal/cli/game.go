package cli

import (
	"fmt"

	"vitalog/internal/progression"
	"vitalog/internal/repo"
)

type GardenCmd struct {
	List       GardenListCmd       `cmd:"" help:"Show the garden."`
	Water      GardenWaterCmd      `cmd:"" help:"Water a flower."`
	Plant      GardenPlantCmd      `cmd:"" help:"Plant a new flower."`
	Shop       GardenShopCmd       `cmd:"" help:"Show the item shop."`
	Buy        GardenBuyCmd        `cmd:"" help:"Buy a shop item."`
	Use        GardenUseCmd        `cmd:"" help:"Use an inventory item on a flower."`
	Challenges GardenChallengesCmd `cmd:"" help:"Show challenges."`
	Claim      GardenClaimCmd      `cmd:"" help:"Claim a completed challenge."`
	Reward     GardenRewardCmd     `cmd:"" help:"Claim a level-up reward."`
}

type GardenListCmd struct{}

func (c *GardenListCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	state := ctx.Repo.GameState()

	fmt.Printf("Coins: %d   Total XP: %d\n\n", state.Coins, state.TotalXP)

	for _, flower := range state.Flowers {
		tier := progression.TierForXP(flower.XP)
		watered := ""
		if flower.WateredToday {
			watered = "  (watered today)"
		}
		fmt.Printf("%s %s  level %d, %d xp (%s)%s  [%s]\n",
			tier.Emoji, flower.Name, flower.Level, flower.XP, tier.Name, watered, flower.ID)
	}

	if len(state.Inventory) > 0 {
		fmt.Println("\nInventory:")
		for _, item := range state.Inventory {
			fmt.Printf("  %dx %s (+%d xp)  [%s]\n", item.Quantity, item.Name, item.XPBonus, item.ID)
		}
	}

	return nil
}

type GardenWaterCmd struct {
	FlowerID string `arg:"" help:"ID of the flower to water."`
}

func (c *GardenWaterCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	before := flowerLevel(ctx.Repo, c.FlowerID)

	if err := ctx.Repo.WaterFlower(c.FlowerID); err != nil {
		return err
	}

	after := flowerLevel(ctx.Repo, c.FlowerID)
	fmt.Printf("Watered! +%d xp\n", progression.WaterXPGain)
	if after > before {
		fmt.Printf("Level up! The flower reached level %d.\n", after)
		fmt.Println("Pick a reward with 'vitalog garden reward' (xp|item|coins).")
	}

	for _, challenge := range ctx.Repo.GameState().Challenges {
		if challenge.Completed && challenge.CompletedAt == "" {
			fmt.Printf("Challenge completed: %s (claim %d coins with 'vitalog garden claim %s')\n",
				challenge.Title, challenge.Reward, challenge.ID)
		}
	}

	return nil
}

func flowerLevel(r *repo.Repository, flowerID string) int {
	for _, flower := range r.GameState().Flowers {
		if flower.ID == flowerID {
			return flower.Level
		}
	}
	return 0
}

type GardenPlantCmd struct {
	Name string `arg:"" help:"Name of the new flower."`
}

func (c *GardenPlantCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	flower, err := ctx.Repo.CreateFlower(c.Name)
	if err != nil {
		return err
	}

	fmt.Printf("Planted %s (ID: %s)\n", flower.Name, flower.ID)
	return nil
}

type GardenShopCmd struct{}

func (c *GardenShopCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	fmt.Printf("Coins: %d\n\nShop:\n", ctx.Repo.GameState().Coins)
	for _, item := range progression.ShopItems {
		fmt.Printf("  %-14s %3d coins  (+%d xp)  [%s]\n", item.Name, item.Price, item.XPBonus, item.ID)
	}

	return nil
}

type GardenBuyCmd struct {
	ItemID string `arg:"" help:"ID of the shop item."`
}

func (c *GardenBuyCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	if err := ctx.Repo.BuyShopItem(c.ItemID); err != nil {
		return err
	}

	fmt.Printf("Bought %s. Coins left: %d\n", c.ItemID, ctx.Repo.GameState().Coins)
	return nil
}

type GardenUseCmd struct {
	ItemID   string `arg:"" help:"ID of the inventory item."`
	FlowerID string `arg:"" help:"ID of the target flower."`
}

func (c *GardenUseCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	if err := ctx.Repo.UseGameItem(c.ItemID, c.FlowerID); err != nil {
		return err
	}

	fmt.Println("Item used.")
	return nil
}

type GardenChallengesCmd struct{}

func (c *GardenChallengesCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	for _, challenge := range ctx.Repo.GameState().Challenges {
		status := fmt.Sprintf("%d/%d", challenge.Progress, challenge.Target)
		switch {
		case challenge.Completed && challenge.CompletedAt != "":
			status = "claimed"
		case challenge.Completed:
			status = "completed, unclaimed"
		}
		fmt.Printf("  [%s] %s  %d coins  (%s)  [%s]\n",
			challenge.Type, challenge.Title, challenge.Reward, status, challenge.ID)
	}

	return nil
}

type GardenClaimCmd struct {
	ChallengeID string `arg:"" help:"ID of the challenge to claim."`
}

func (c *GardenClaimCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	if err := ctx.Repo.ClaimChallenge(c.ChallengeID); err != nil {
		return err
	}

	fmt.Printf("Claimed! Coins: %d\n", ctx.Repo.GameState().Coins)
	return nil
}

type GardenRewardCmd struct {
	FlowerID string `arg:"" help:"ID of the flower that leveled up."`
	Type     string `arg:"" help:"Reward type (xp|item|coins)."`
}

func (c *GardenRewardCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	if err := ctx.Repo.ClaimLevelUpReward(c.FlowerID, repo.LevelUpReward(c.Type)); err != nil {
		return err
	}

	fmt.Println("Reward claimed.")
	return nil
}
