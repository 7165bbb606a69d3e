// Package kitchen holds small cooking-math helpers: salt concentration and
// container tare weights.
package kitchen

import "fmt"

// Reference is a target salt concentration for a class of dish.
type Reference struct {
	Name    string
	Percent float64
}

// References returns the reference concentrations, mildest first.
func References() []Reference {
	return []Reference{
		{Name: "general seasoning", Percent: 0.7},
		{Name: "soup", Percent: 1.0},
		{Name: "noodle soup", Percent: 1.5},
		{Name: "dipping sauce", Percent: 1.9},
		{Name: "tsukemen broth", Percent: 2.8},
	}
}

// Concentration computes the salt concentration in percent from the salt
// weight and total weight, both in grams. Both must be positive.
func Concentration(saltGrams, totalGrams float64) (float64, error) {
	if saltGrams <= 0 || totalGrams <= 0 {
		return 0, fmt.Errorf("both salt amount and total amount must be positive")
	}
	return saltGrams / totalGrams * 100, nil
}
