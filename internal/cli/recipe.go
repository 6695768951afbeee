package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"vitalog/internal/models"
	"vitalog/internal/progression"
)

type RecipeCmd struct {
	Add    RecipeAddCmd    `cmd:"" help:"Add a recipe."`
	List   RecipeListCmd   `cmd:"" help:"List recipes."`
	Delete RecipeDeleteCmd `cmd:"" help:"Delete a recipe."`
}

type RecipeAddCmd struct {
	Title        string `arg:"" help:"Recipe title."`
	Ingredients  string `short:"g" help:"Comma-separated ingredients as name:quantity:unit."`
	Instructions string `short:"s" help:"Preparation instructions." default:""`
}

func (c *RecipeAddCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	ingredients, err := parseIngredients(c.Ingredients)
	if err != nil {
		return err
	}

	recipe := models.Recipe{
		ID:           uuid.New().String(),
		Title:        c.Title,
		Ingredients:  ingredients,
		Instructions: c.Instructions,
		CreatedAt:    nowTimestamp(),
	}

	if err := ctx.Repo.AddRecipe(recipe); err != nil {
		return err
	}

	stats := ctx.Repo.UserStats()
	stats.RecipesCreated++
	unlockAchievements(&stats, models.AchievementRecipesCreated, stats.RecipesCreated, nowTimestamp())
	if err := ctx.Repo.UpdateUserStats(stats); err != nil {
		return err
	}

	fmt.Printf("Added recipe: %s (+%d points)\n", c.Title, progression.PointsRecipe)
	return nil
}

// parseIngredients parses "flour:500:g,milk:250:ml"; quantity and unit are
// optional per ingredient.
func parseIngredients(s string) ([]models.RecipeIngredient, error) {
	ingredients := []models.RecipeIngredient{}
	if strings.TrimSpace(s) == "" {
		return ingredients, nil
	}

	for _, part := range strings.Split(s, ",") {
		fields := strings.Split(strings.TrimSpace(part), ":")
		ingredient := models.RecipeIngredient{
			ID:   uuid.New().String(),
			Name: strings.TrimSpace(fields[0]),
		}
		if ingredient.Name == "" {
			return nil, fmt.Errorf("ingredient name cannot be empty in %q", part)
		}
		if len(fields) > 1 && fields[1] != "" {
			qty, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid quantity in %q: %w", part, err)
			}
			ingredient.Quantity = qty
		}
		if len(fields) > 2 {
			ingredient.Unit = strings.TrimSpace(fields[2])
		}
		ingredients = append(ingredients, ingredient)
	}

	return ingredients, nil
}

type RecipeListCmd struct{}

func (c *RecipeListCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	recipes := ctx.Repo.Recipes()
	if len(recipes) == 0 {
		fmt.Println("No recipes found")
		return nil
	}

	for _, recipe := range recipes {
		fmt.Printf("%s  [%s]\n", recipe.Title, recipe.ID)
		for _, ingredient := range recipe.Ingredients {
			if ingredient.Quantity > 0 {
				fmt.Printf("    %g %s %s\n", ingredient.Quantity, ingredient.Unit, ingredient.Name)
			} else {
				fmt.Printf("    %s\n", ingredient.Name)
			}
		}
	}

	return nil
}

type RecipeDeleteCmd struct {
	ID string `arg:"" help:"ID of the recipe to delete."`
}

func (c *RecipeDeleteCmd) Run(ctx *Context) error {
	if err := ctx.LoadAll(); err != nil {
		return err
	}

	if err := ctx.Repo.DeleteRecipe(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted recipe %s\n", c.ID)
	return nil
}
