package cli

import (
	"fmt"

	"github.com/bochang/recipebox/internal/kitchen"
)

type SaltCmd struct {
	Salt  float64 `arg:"" help:"Salt amount in grams."`
	Total float64 `arg:"" help:"Total dish weight in grams."`
}

func (c *SaltCmd) Run(ctx *Context) error {
	concentration, err := kitchen.Concentration(c.Salt, c.Total)
	if err != nil {
		return err
	}

	fmt.Printf("Salt concentration: %.2f%%\n", concentration)
	fmt.Println("\nReference concentrations:")
	for _, ref := range kitchen.References() {
		fmt.Printf("  %-18s %.1f%%\n", ref.Name, ref.Percent)
	}
	return nil
}

type ContainersCmd struct {
	Gross     float64 `short:"g" help:"Gross scale reading in grams; combined with --container prints the net weight."`
	Container string  `short:"c" help:"Container name for net weight calculation."`
}

func (c *ContainersCmd) Run(ctx *Context) error {
	if c.Gross > 0 && c.Container != "" {
		net, err := kitchen.NetWeight(c.Gross, c.Container)
		if err != nil {
			return err
		}
		fmt.Printf("Net weight: %.0fg\n", net)
		return nil
	}

	fmt.Println("Containers:")
	for _, container := range kitchen.Containers() {
		fmt.Printf("  %-16s %.0fg\n", container.Name, container.Weight)
	}
	return nil
}
