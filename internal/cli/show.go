package cli

import (
	"fmt"

	"github.com/bochang/recipebox/internal/scale"
)

type ShowCmd struct {
	Recipe   string  `arg:"" help:"Recipe ID or name."`
	Portions float64 `short:"p" help:"Portion multiplier for display." default:"1"`
}

func (c *ShowCmd) Validate() error {
	if c.Portions <= 0 {
		return fmt.Errorf("portions must be positive")
	}
	return nil
}

func (c *ShowCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}

	found, err := resolveRecipe(svc, c.Recipe)
	if err != nil {
		return err
	}

	// Showing a recipe counts as a detail view.
	r, err := svc.View(found.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s (v%s)\n", starIcon(r.IsStarred), r.Name, r.CurrentVersion())
	fmt.Printf("Category: %s | Servings: %d | Updated: %s\n", r.Category.DisplayName(), r.Servings, r.UpdatedAt)
	if r.Yield != nil {
		fmt.Printf("Yield: %s\n", *r.Yield)
	}
	if r.CookingTime != nil {
		fmt.Printf("Cooking time: %s\n", *r.CookingTime)
	}
	if len(r.Equipment) > 0 {
		fmt.Print("Equipment:")
		for _, e := range r.Equipment {
			fmt.Printf(" %s;", e)
		}
		fmt.Println()
	}
	if r.Notes != nil {
		fmt.Printf("Notes: %s\n", *r.Notes)
	}

	ingredients, steps := scale.Portions(r, c.Portions)

	if c.Portions != 1 {
		fmt.Printf("\nIngredients (x%s):\n", scale.FormatQuantity(c.Portions))
	} else {
		fmt.Println("\nIngredients:")
	}
	for _, ing := range ingredients {
		if ing.Note != "" {
			fmt.Printf("  %s: %s (%s)\n", ing.Name, ing.Display, ing.Note)
		} else {
			fmt.Printf("  %s: %s\n", ing.Name, ing.Display)
		}
	}

	fmt.Println("\nSteps:")
	for i, step := range steps {
		fmt.Printf("  %d. %s\n", i+1, step)
	}

	fmt.Println("\nHistory:")
	for _, v := range r.Versions {
		fmt.Printf("  v%s (%s): %s\n", v.Version, v.Date, v.Changes)
	}

	return nil
}
