package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bochang/recipebox/internal/logging"
	"github.com/bochang/recipebox/internal/models"
	"github.com/bochang/recipebox/internal/recipes"
	"github.com/bochang/recipebox/internal/storage"
)

type Context struct {
	Store     storage.Provider
	Log       logging.Logger
	CachePath string
}

// Service loads the collection and returns the live recipe service.
func (c *Context) Service() (*recipes.Service, error) {
	return recipes.New(c.Store)
}

// parseIngredient parses the "name:amount:unit[:note]" flag syntax. An
// amount of 0 marks a no-quantity entry whose unit is a descriptive phrase.
func parseIngredient(s string) (models.Ingredient, error) {
	parts := strings.SplitN(s, ":", 4)
	if len(parts) < 3 {
		return models.Ingredient{}, fmt.Errorf("invalid ingredient %q, expected name:amount:unit[:note]", s)
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return models.Ingredient{}, fmt.Errorf("invalid amount in ingredient %q: %w", s, err)
	}
	if amount < 0 {
		return models.Ingredient{}, fmt.Errorf("ingredient amount must not be negative: %q", s)
	}

	ing := models.Ingredient{
		Name:   strings.TrimSpace(parts[0]),
		Amount: amount,
		Unit:   strings.TrimSpace(parts[2]),
	}
	if len(parts) == 4 {
		ing.Note = strings.TrimSpace(parts[3])
	}
	return ing, nil
}

// resolveRecipe finds a recipe by exact id, or by a case-insensitive name
// substring when it matches exactly one recipe.
func resolveRecipe(svc *recipes.Service, ref string) (models.Recipe, error) {
	if r, err := svc.Get(ref); err == nil {
		return r, nil
	}

	matches := svc.Search(ref)
	switch len(matches) {
	case 0:
		return models.Recipe{}, fmt.Errorf("no recipe matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, m.Name)
		}
		return models.Recipe{}, fmt.Errorf("%q is ambiguous, matches: %s", ref, strings.Join(names, ", "))
	}
}

func starIcon(starred bool) string {
	if starred {
		return "⭐"
	}
	return "☆"
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
