package cli

import (
	"fmt"

	"github.com/google/uuid"

	"vitalog/internal/models"
	"vitalog/internal/progression"
)

type ShoppingCmd struct {
	NewList    ShoppingNewListCmd    `cmd:"" name:"new-list" help:"Create a shopping list."`
	List       ShoppingListCmd       `cmd:"" help:"Show all shopping lists."`
	Add        ShoppingAddCmd        `cmd:"" help:"Add an item to a list."`
	Check      ShoppingCheckCmd      `cmd:"" help:"Check off an item."`
	DeleteList ShoppingDeleteListCmd `cmd:"" name:"delete-list" help:"Delete a list and its items."`
}

type ShoppingNewListCmd struct {
	Name string `arg:"" help:"List name."`
}

func (c *ShoppingNewListCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	list := models.ShoppingList{
		ID:        uuid.New().String(),
		Name:      c.Name,
		CreatedAt: nowTimestamp(),
		Items:     []models.ShoppingItem{},
	}

	if err := ctx.Repo.AddShoppingList(list); err != nil {
		return err
	}

	fmt.Printf("Created list: %s (ID: %s)\n", list.Name, list.ID)
	return nil
}

type ShoppingListCmd struct{}

func (c *ShoppingListCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	lists := ctx.Repo.ShoppingLists()
	if len(lists) == 0 {
		fmt.Println("No shopping lists found")
		return nil
	}

	for _, list := range lists {
		fmt.Printf("%s  [%s]\n", list.Name, list.ID)
		for _, item := range list.Items {
			mark := " "
			if item.Checked {
				mark = "x"
			}
			qty := ""
			if item.Quantity != "" {
				qty = " " + item.Quantity
			}
			fmt.Printf("  [%s] %s%s  [%s]\n", mark, item.Name, qty, item.ID)
		}
	}

	return nil
}

type ShoppingAddCmd struct {
	ListID   string `arg:"" help:"ID of the list."`
	Name     string `arg:"" help:"Item name."`
	Quantity string `short:"q" help:"Quantity (free-form)." default:""`
	Category string `short:"c" help:"Category." default:""`
}

func (c *ShoppingAddCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	for _, list := range ctx.Repo.ShoppingLists() {
		if list.ID == c.ListID {
			list.Items = append(list.Items, models.ShoppingItem{
				ID:       uuid.New().String(),
				Name:     c.Name,
				Quantity: c.Quantity,
				Category: c.Category,
				ListID:   list.ID,
			})
			if err := ctx.Repo.UpdateShoppingList(list); err != nil {
				return err
			}
			if err := ctx.Repo.AddPoints(progression.PointsShoppingItem); err != nil {
				return err
			}

			stats := ctx.Repo.UserStats()
			stats.ShoppingItemsAdded++
			unlockAchievements(&stats, models.AchievementShoppingItems, stats.ShoppingItemsAdded, nowTimestamp())
			if err := ctx.Repo.UpdateUserStats(stats); err != nil {
				return err
			}

			fmt.Printf("Added item: %s (+%d points)\n", c.Name, progression.PointsShoppingItem)
			return nil
		}
	}

	return fmt.Errorf("shopping list not found: %s", c.ListID)
}

type ShoppingCheckCmd struct {
	ItemID string `arg:"" help:"ID of the item to check off."`
}

func (c *ShoppingCheckCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	for _, list := range ctx.Repo.ShoppingLists() {
		for i, item := range list.Items {
			if item.ID != c.ItemID {
				continue
			}
			list.Items[i].Checked = !item.Checked
			if err := ctx.Repo.UpdateShoppingList(list); err != nil {
				return err
			}
			fmt.Printf("Toggled: %s\n", item.Name)
			return nil
		}
	}

	return fmt.Errorf("shopping item not found: %s", c.ItemID)
}

type ShoppingDeleteListCmd struct {
	ID string `arg:"" help:"ID of the list to delete."`
}

func (c *ShoppingDeleteListCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	if err := ctx.Repo.DeleteShoppingList(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted list %s\n", c.ID)
	return nil
}
