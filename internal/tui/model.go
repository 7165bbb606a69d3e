package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/bochang/recipebox/internal/models"
	"github.com/bochang/recipebox/internal/recipes"
)

type SessionState int

const (
	StateList SessionState = iota
	StateDetail
	StateForm
)

// Item adapts a recipe for the list component.
type Item struct {
	Recipe models.Recipe
}

func (i Item) Title() string {
	star := "☆"
	if i.Recipe.IsStarred {
		star = "⭐"
	}
	return fmt.Sprintf("%s %s", star, i.Recipe.Name)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%s | %d serving(s) | updated %s",
		i.Recipe.Category.DisplayName(), i.Recipe.Servings, i.Recipe.UpdatedAt)
	if i.Recipe.ViewCount > 0 {
		desc += fmt.Sprintf(" | %d views", i.Recipe.ViewCount)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Recipe.Name }

// RecipeFormModel carries the editable fields while the huh form is open.
// Ingredients and steps are entered one per line.
type RecipeFormModel struct {
	Name        string
	Category    string
	Servings    string
	Ingredients string
	Steps       string
}

type Model struct {
	svc   *recipes.Service
	state SessionState
	keys  KeyMap
	help  help.Model

	recipeList list.Model
	sortMode   recipes.SortMode

	detail   *models.Recipe
	portions float64

	form      *huh.Form
	formData  *RecipeFormModel
	editingID string

	status   string
	quitting bool
	width    int
	height   int
}

func NewModel(svc *recipes.Service) Model {
	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.Title = "RecipeBox"
	l.SetShowHelp(false)

	m := Model{
		svc:        svc,
		state:      StateList,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		recipeList: l,
		sortMode:   recipes.SortByTime,
		portions:   1,
	}
	m.reloadList()
	return m
}

// reloadList resorts the collection and refreshes the list items.
func (m *Model) reloadList() {
	_ = m.svc.Sort(m.sortMode)
	all := m.svc.All()
	items := make([]list.Item, 0, len(all))
	for _, r := range all {
		items = append(items, Item{Recipe: r})
	}
	m.recipeList.SetItems(items)
	m.recipeList.Title = fmt.Sprintf("RecipeBox · %s", m.sortMode)
}

func (m Model) selectedRecipe() (models.Recipe, bool) {
	item, ok := m.recipeList.SelectedItem().(Item)
	if !ok {
		return models.Recipe{}, false
	}
	return item.Recipe, true
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case StateDetail:
		return []key.Binding{m.keys.More, m.keys.Less, m.keys.Star, m.keys.Edit, m.keys.Back}
	default:
		return []key.Binding{m.keys.Enter, m.keys.Add, m.keys.Star, m.keys.Sort, m.keys.Quit}
	}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Enter, m.keys.Back, m.keys.Quit},
		{m.keys.Add, m.keys.Edit, m.keys.Star, m.keys.Sort},
		{m.keys.More, m.keys.Less},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
