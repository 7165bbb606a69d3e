package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/bochang/recipebox/internal/models"
	"github.com/bochang/recipebox/internal/recipes"
)

var categoryOptions = []huh.Option[string]{
	huh.NewOption("Main", string(models.CategoryMain)),
	huh.NewOption("Dessert", string(models.CategoryDessert)),
	huh.NewOption("Sauce", string(models.CategorySauce)),
	huh.NewOption("Drink", string(models.CategoryDrink)),
	huh.NewOption("Side", string(models.CategorySide)),
	huh.NewOption("Bread", string(models.CategoryBread)),
}

// openForm prepares the add/edit form. A nil recipe means a new entry.
func (m *Model) openForm(r *models.Recipe) {
	data := &RecipeFormModel{Category: string(models.CategoryMain), Servings: "2"}
	m.editingID = ""
	if r != nil {
		m.editingID = r.ID
		data.Name = r.Name
		data.Category = string(r.Category)
		data.Servings = strconv.Itoa(r.Servings)
		data.Ingredients = formatIngredientLines(r.Ingredients)
		data.Steps = strings.Join(r.Steps, "\n")
	}
	m.formData = data

	title := "New recipe"
	if r != nil {
		title = "Edit recipe"
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Name").
				Value(&data.Name),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&data.Category),
			huh.NewInput().
				Title("Servings").
				Value(&data.Servings),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Ingredients").
				Description("one per line: name:amount:unit[:note]").
				Value(&data.Ingredients),
			huh.NewText().
				Title("Steps").
				Description("one per line").
				Value(&data.Steps),
		),
	)
	m.state = StateForm
}

// submitForm parses the entered text and persists the recipe.
func (m *Model) submitForm() error {
	data := m.formData
	form, err := buildForm(data)
	if err != nil {
		return err
	}
	if m.editingID != "" {
		_, err = m.svc.Update(m.editingID, form)
	} else {
		_, err = m.svc.Create(form)
	}
	if err != nil {
		return err
	}
	if m.editingID != "" {
		m.status = statusStyle.Render("updated " + form.Name)
	} else {
		m.status = statusStyle.Render("added " + form.Name)
	}
	return nil
}

func buildForm(data *RecipeFormModel) (recipes.Form, error) {
	var form recipes.Form
	form.Name = strings.TrimSpace(data.Name)
	form.Category = models.Category(data.Category)
	if s := strings.TrimSpace(data.Servings); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return form, fmt.Errorf("servings must be a positive number, got %q", s)
		}
		form.Servings = n
	}
	for _, line := range splitLines(data.Ingredients) {
		ing, err := parseIngredientLine(line)
		if err != nil {
			return form, err
		}
		form.Ingredients = append(form.Ingredients, ing)
	}
	form.Steps = splitLines(data.Steps)
	return form, nil
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// parseIngredientLine accepts "name:amount:unit" with an optional
// ":note" tail. An empty amount records the no-quantity sentinel.
func parseIngredientLine(line string) (models.Ingredient, error) {
	parts := strings.SplitN(line, ":", 4)
	if len(parts) < 3 {
		return models.Ingredient{}, fmt.Errorf("ingredient %q: want name:amount:unit[:note]", line)
	}
	var ing models.Ingredient
	ing.Name = strings.TrimSpace(parts[0])
	amount := strings.TrimSpace(parts[1])
	if amount != "" {
		v, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			return models.Ingredient{}, fmt.Errorf("ingredient %q: bad amount %q", line, amount)
		}
		ing.Amount = v
	}
	ing.Unit = strings.TrimSpace(parts[2])
	if len(parts) == 4 {
		ing.Note = strings.TrimSpace(parts[3])
	}
	return ing, nil
}

func formatIngredientLines(ings []models.Ingredient) string {
	lines := make([]string, 0, len(ings))
	for _, ing := range ings {
		amount := ""
		if ing.Amount != 0 {
			amount = strconv.FormatFloat(ing.Amount, 'f', -1, 64)
		}
		line := fmt.Sprintf("%s:%s:%s", ing.Name, amount, ing.Unit)
		if ing.Note != "" {
			line += ":" + ing.Note
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
