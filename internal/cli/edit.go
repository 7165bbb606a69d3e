package cli

import (
	"fmt"

	"github.com/bochang/recipebox/internal/models"
	"github.com/bochang/recipebox/internal/recipes"
)

type EditCmd struct {
	Recipe      string   `arg:"" help:"Recipe ID or name."`
	Name        string   `help:"New recipe name."`
	Category    string   `short:"c" help:"New category."`
	Servings    int      `short:"n" help:"New number of servings."`
	Ingredient  []string `short:"i" help:"Replacement ingredient list as name:amount:unit[:note]. Repeatable; replaces all ingredients when given."`
	Step        []string `short:"t" help:"Replacement step list. Repeatable; replaces all steps when given."`
	Yield       string   `help:"New yield description."`
	CookingTime string   `help:"New cooking time description."`
	Equipment   []string `help:"New equipment list. Repeatable; replaces the old list when given."`
	Notes       string   `help:"New notes."`
}

func (c *EditCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}

	old, err := resolveRecipe(svc, c.Recipe)
	if err != nil {
		return err
	}

	// Start from the stored recipe so untouched fields survive the edit.
	form := recipes.Form{
		Name:        old.Name,
		Category:    old.Category,
		Servings:    old.Servings,
		Ingredients: old.Ingredients,
		Steps:       old.Steps,
		Yield:       old.Yield,
		CookingTime: old.CookingTime,
		Equipment:   old.Equipment,
		Notes:       old.Notes,
	}

	if c.Name != "" {
		form.Name = c.Name
	}
	if c.Category != "" {
		form.Category = models.Category(c.Category)
	}
	if c.Servings > 0 {
		form.Servings = c.Servings
	}
	if len(c.Ingredient) > 0 {
		ingredients := make([]models.Ingredient, 0, len(c.Ingredient))
		for _, raw := range c.Ingredient {
			ing, err := parseIngredient(raw)
			if err != nil {
				return err
			}
			ingredients = append(ingredients, ing)
		}
		form.Ingredients = ingredients
	}
	if len(c.Step) > 0 {
		form.Steps = c.Step
	}
	if c.Yield != "" {
		form.Yield = optional(c.Yield)
	}
	if c.CookingTime != "" {
		form.CookingTime = optional(c.CookingTime)
	}
	if len(c.Equipment) > 0 {
		form.Equipment = c.Equipment
	}
	if c.Notes != "" {
		form.Notes = optional(c.Notes)
	}

	updated, err := svc.Update(old.ID, form)
	if err != nil {
		return err
	}

	latest := updated.Versions[len(updated.Versions)-1]
	fmt.Printf("Updated recipe: %s (v%s: %s)\n", updated.Name, latest.Version, latest.Changes)
	return nil
}
