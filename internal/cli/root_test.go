package cli

import (
	"strings"
	"testing"

	"github.com/bochang/recipebox/internal/models"
	"github.com/bochang/recipebox/internal/recipes"
	"github.com/bochang/recipebox/internal/storage"
)

type memStore struct {
	recipes []models.Recipe
}

func (m *memStore) Load() ([]models.Recipe, error) { return m.recipes, nil }
func (m *memStore) Save(rs []models.Recipe) error  { m.recipes = rs; return nil }
func (m *memStore) Path() string                   { return "mem" }

var _ storage.Provider = (*memStore)(nil)

func TestParseIngredient(t *testing.T) {
	ing, err := parseIngredient("Flour:200:g")
	if err != nil {
		t.Fatalf("parseIngredient() error: %v", err)
	}
	if ing.Name != "Flour" || ing.Amount != 200 || ing.Unit != "g" {
		t.Errorf("parseIngredient() = %+v", ing)
	}

	ing, err = parseIngredient("Soy sauce: 1.5 : tbsp : to finish")
	if err != nil {
		t.Fatalf("parseIngredient() error: %v", err)
	}
	if ing.Name != "Soy sauce" || ing.Amount != 1.5 || ing.Unit != "tbsp" || ing.Note != "to finish" {
		t.Errorf("parseIngredient() = %+v", ing)
	}

	// Amount 0 is the no-quantity sentinel.
	ing, err = parseIngredient("Pepper:0:to taste")
	if err != nil {
		t.Fatalf("parseIngredient() error: %v", err)
	}
	if ing.Amount != 0 || ing.Unit != "to taste" {
		t.Errorf("sentinel parseIngredient() = %+v", ing)
	}
}

func TestParseIngredientErrors(t *testing.T) {
	for _, s := range []string{"Flour", "Flour:200", "Flour:lots:g", "Flour:-1:g"} {
		if _, err := parseIngredient(s); err == nil {
			t.Errorf("parseIngredient(%q) should error", s)
		}
	}
}

func TestResolveRecipe(t *testing.T) {
	store := &memStore{recipes: []models.Recipe{
		{ID: "id-1", Name: "Chocolate Mousse"},
		{ID: "id-2", Name: "Caramel Sauce"},
		{ID: "id-3", Name: "Hot Chocolate"},
	}}
	svc, err := recipes.New(store)
	if err != nil {
		t.Fatalf("recipes.New() error: %v", err)
	}

	// Exact id wins.
	r, err := resolveRecipe(svc, "id-2")
	if err != nil {
		t.Fatalf("resolveRecipe(id) error: %v", err)
	}
	if r.Name != "Caramel Sauce" {
		t.Errorf("resolveRecipe(id) = %s", r.Name)
	}

	// Unique name substring.
	r, err = resolveRecipe(svc, "caramel")
	if err != nil {
		t.Fatalf("resolveRecipe(name) error: %v", err)
	}
	if r.ID != "id-2" {
		t.Errorf("resolveRecipe(name) = %s", r.ID)
	}

	// Ambiguous substring names both candidates.
	_, err = resolveRecipe(svc, "chocolate")
	if err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("resolveRecipe(ambiguous) error = %v", err)
	}

	if _, err := resolveRecipe(svc, "nothing-matches-this"); err == nil {
		t.Error("resolveRecipe(miss) should error")
	}
}
