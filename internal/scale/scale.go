// Package scale implements portion scaling for display. It is a pure
// transform: the underlying recipe is never modified and scaled values are
// never persisted.
package scale

import (
	"math"
	"regexp"
	"strconv"

	"github.com/bochang/recipebox/internal/models"
)

// Ingredient is one scaled ingredient line. Amount carries the unrounded
// scaled value (0 stays 0 for no-quantity entries); Display is the formatted
// text shown to the user.
type Ingredient struct {
	Name    string
	Amount  float64
	Unit    string
	Note    string
	Display string
}

// quantityPattern matches a decimal number immediately followed by a
// recognized unit token. Longer tokens come first so "kg" wins over "g".
// This is a best-effort heuristic: a number that is not really a quantity
// (an oven temperature, an appliance model) will also be rescaled if it
// happens to be followed by one of these tokens. That limitation is
// accepted; do not try to turn this into a unit-aware parser.
var quantityPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)(kg|ml|cc|tbsp|tsp|cups|cup|g|l|個|枚|本|回)`)

// Portions scales a recipe's ingredient amounts and in-step quantities by
// factor, for rendering only.
func Portions(r models.Recipe, factor float64) ([]Ingredient, []string) {
	ingredients := make([]Ingredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, scaleIngredient(ing, factor))
	}

	steps := make([]string, 0, len(r.Steps))
	for _, step := range r.Steps {
		steps = append(steps, Step(step, factor))
	}

	return ingredients, steps
}

// scaleIngredient multiplies a numeric amount by factor. Entries with the
// zero-amount sentinel keep their descriptive unit string untouched.
func scaleIngredient(ing models.Ingredient, factor float64) Ingredient {
	out := Ingredient{
		Name: ing.Name,
		Unit: ing.Unit,
		Note: ing.Note,
	}
	if ing.Amount == 0 {
		out.Display = ing.Unit
		return out
	}
	out.Amount = ing.Amount * factor
	out.Display = FormatQuantity(out.Amount) + ing.Unit
	return out
}

// Step rescales every quantity-looking match in a free-text instruction.
// Text outside matches is left verbatim.
func Step(text string, factor float64) string {
	return quantityPattern.ReplaceAllStringFunc(text, func(match string) string {
		parts := quantityPattern.FindStringSubmatch(match)
		value, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return match
		}
		return FormatQuantity(value*factor) + parts[2]
	})
}

// FormatQuantity renders a scaled amount with no decimals when it is a whole
// number and one decimal place otherwise.
func FormatQuantity(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
