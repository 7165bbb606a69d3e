package cli

import (
	"fmt"

	"github.com/bochang/recipebox/internal/recipes"
)

type ListCmd struct {
	Sort   string `short:"s" help:"Sort mode (time|name|starred|popular)." default:"time"`
	Search string `short:"q" help:"Filter by name substring, case-insensitive."`
}

func (c *ListCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}

	if err := svc.Sort(recipes.SortMode(c.Sort)); err != nil {
		return err
	}

	list := svc.Search(c.Search)
	if len(list) == 0 {
		if c.Search != "" {
			fmt.Println("No recipes match the search")
		} else {
			fmt.Println("No recipes found")
		}
		return nil
	}

	fmt.Println("Recipes:")
	for _, r := range list {
		fmt.Printf("  %s %s - %s, %d serving(s), updated %s\n",
			starIcon(r.IsStarred), r.Name, r.Category.DisplayName(), r.Servings, r.UpdatedAt)
		if r.ViewCount > 0 {
			fmt.Printf("      Viewed %d time(s)\n", r.ViewCount)
		}
		fmt.Printf("      ID: %s\n", r.ID)
	}
	return nil
}
