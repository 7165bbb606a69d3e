package cli

import (
	"fmt"

	"github.com/bochang/recipebox/internal/models"
	"github.com/bochang/recipebox/internal/recipes"
)

type AddCmd struct {
	Name        string   `arg:"" help:"Recipe name."`
	Category    string   `short:"c" help:"Category (main|dessert|sauce|drink|side|bread)." default:"main"`
	Servings    int      `short:"n" help:"Number of servings." default:"1"`
	Ingredient  []string `short:"i" help:"Ingredient as name:amount:unit[:note]. Repeatable; amount 0 means no numeric quantity."`
	Step        []string `short:"t" help:"Instruction step. Repeatable, in order."`
	Yield       string   `help:"Yield description (e.g. '500ml')."`
	CookingTime string   `help:"Cooking time description."`
	Equipment   []string `help:"Required equipment. Repeatable."`
	Notes       string   `help:"Free-form notes."`
}

func (c *AddCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}

	form, err := c.buildForm()
	if err != nil {
		return err
	}

	r, err := svc.Create(form)
	if err != nil {
		return err
	}

	fmt.Printf("Added recipe: %s (ID: %s)\n", r.Name, r.ID)
	return nil
}

func (c *AddCmd) buildForm() (recipes.Form, error) {
	ingredients := make([]models.Ingredient, 0, len(c.Ingredient))
	for _, raw := range c.Ingredient {
		ing, err := parseIngredient(raw)
		if err != nil {
			return recipes.Form{}, err
		}
		ingredients = append(ingredients, ing)
	}

	return recipes.Form{
		Name:        c.Name,
		Category:    models.Category(c.Category),
		Servings:    c.Servings,
		Ingredients: ingredients,
		Steps:       c.Step,
		Yield:       optional(c.Yield),
		CookingTime: optional(c.CookingTime),
		Equipment:   c.Equipment,
		Notes:       optional(c.Notes),
	}, nil
}
