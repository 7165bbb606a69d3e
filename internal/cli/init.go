package cli

import (
	"fmt"
	"os"

	"github.com/bochang/recipebox/internal/storage"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if _, err := os.Stat(ctx.Store.Path()); err == nil {
		return fmt.Errorf("storage already initialized at %s", ctx.Store.Path())
	}

	if err := ctx.Store.Save(storage.SeedRecipes()); err != nil {
		return err
	}

	fmt.Printf("Initialized recipebox storage at: %s\n", ctx.Store.Path())
	return nil
}
