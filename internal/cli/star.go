package cli

import "fmt"

type StarCmd struct {
	Recipe string `arg:"" help:"Recipe ID or name."`
}

func (c *StarCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}

	r, err := resolveRecipe(svc, c.Recipe)
	if err != nil {
		return err
	}

	starred, err := svc.ToggleStar(r.ID)
	if err != nil {
		return err
	}

	if starred {
		fmt.Printf("Starred: %s\n", r.Name)
	} else {
		fmt.Printf("Unstarred: %s\n", r.Name)
	}
	return nil
}
