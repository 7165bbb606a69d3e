// Package recipes holds the in-memory recipe collection and its derived
// views. The collection is the single source of truth while the app runs;
// every mutation is mirrored wholesale to persisted storage.
package recipes

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bochang/recipebox/internal/models"
	"github.com/bochang/recipebox/internal/storage"
)

type SortMode string

const (
	SortByTime    SortMode = "time"    // newest updated first
	SortByName    SortMode = "name"    // name ascending
	SortByStarred SortMode = "starred" // starred first, then newest updated
	SortByPopular SortMode = "popular" // most viewed first, then newest updated
)

// Form carries the user-submitted fields for create and update. Optional
// metadata is nil/empty when left blank.
type Form struct {
	Name        string
	Category    models.Category
	Servings    int
	Ingredients []models.Ingredient
	Steps       []string
	Yield       *string
	CookingTime *string
	Equipment   []string
	Notes       *string
}

// Service owns the live collection. It is not safe for concurrent use; the
// CLI and TUI drive it from a single goroutine. Two processes sharing the
// same storage file silently overwrite each other (last write wins).
type Service struct {
	store   storage.Provider
	recipes []models.Recipe
	now     func() time.Time
}

// New loads the collection from storage. A missing or corrupt blob degrades
// to the seed set inside the store, so this only fails on real I/O errors.
func New(store storage.Provider) (*Service, error) {
	recipes, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Service{
		store:   store,
		recipes: recipes,
		now:     time.Now,
	}, nil
}

// All returns the live collection in its current order.
func (s *Service) All() []models.Recipe {
	return s.recipes
}

// Get returns the recipe with the given id without recording a view.
func (s *Service) Get(id string) (models.Recipe, error) {
	i := s.index(id)
	if i < 0 {
		return models.Recipe{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.recipes[i], nil
}

// Search returns the subset whose name contains query, case-insensitively.
// An empty query returns the full collection. The underlying collection is
// never mutated; the result is a filtered view.
func (s *Service) Search(query string) []models.Recipe {
	if query == "" {
		return s.recipes
	}
	q := strings.ToLower(query)
	var matched []models.Recipe
	for _, r := range s.recipes {
		if strings.Contains(strings.ToLower(r.Name), q) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Sort reorders the live collection in place.
func (s *Service) Sort(mode SortMode) error {
	switch mode {
	case SortByTime:
		sort.SliceStable(s.recipes, func(i, j int) bool {
			return s.recipes[i].UpdatedAt > s.recipes[j].UpdatedAt
		})
	case SortByName:
		sort.SliceStable(s.recipes, func(i, j int) bool {
			return strings.ToLower(s.recipes[i].Name) < strings.ToLower(s.recipes[j].Name)
		})
	case SortByStarred:
		sort.SliceStable(s.recipes, func(i, j int) bool {
			a, b := s.recipes[i], s.recipes[j]
			if a.IsStarred != b.IsStarred {
				return a.IsStarred
			}
			return a.UpdatedAt > b.UpdatedAt
		})
	case SortByPopular:
		sort.SliceStable(s.recipes, func(i, j int) bool {
			a, b := s.recipes[i], s.recipes[j]
			if a.ViewCount != b.ViewCount {
				return a.ViewCount > b.ViewCount
			}
			return a.UpdatedAt > b.UpdatedAt
		})
	default:
		return fmt.Errorf("unknown sort mode: %s", mode)
	}
	return nil
}

// View records a detail view (view count + timestamp, persisted) and returns
// the recipe. Viewing does not append a version entry.
func (s *Service) View(id string) (models.Recipe, error) {
	i := s.index(id)
	if i < 0 {
		return models.Recipe{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	s.recipes[i].ViewCount++
	now := s.today()
	s.recipes[i].LastViewedAt = &now

	if err := s.save(); err != nil {
		return models.Recipe{}, err
	}
	return s.recipes[i], nil
}

// ToggleStar flips the favorite flag and persists. No version entry is
// appended.
func (s *Service) ToggleStar(id string) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	s.recipes[i].IsStarred = !s.recipes[i].IsStarred
	if err := s.save(); err != nil {
		return false, err
	}
	return s.recipes[i].IsStarred, nil
}

// Create validates the form, assigns a fresh id and seeds the version log,
// then prepends the recipe so the collection stays newest-first at the data
// level.
func (s *Service) Create(form Form) (models.Recipe, error) {
	if err := validate(form); err != nil {
		return models.Recipe{}, err
	}

	today := s.today()
	recipe := models.Recipe{
		ID:          uuid.New().String(),
		Name:        form.Name,
		Category:    form.Category,
		Servings:    servingsOrDefault(form.Servings),
		Ingredients: form.Ingredients,
		Steps:       form.Steps,
		CreatedAt:   today,
		UpdatedAt:   today,
		Versions: []models.Version{
			{Version: "1.0", Date: today, Changes: "initial creation"},
		},
		Yield:       form.Yield,
		CookingTime: form.CookingTime,
		Equipment:   form.Equipment,
		Notes:       form.Notes,
	}

	s.recipes = append([]models.Recipe{recipe}, s.recipes...)
	if err := s.save(); err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

// Update validates the form, overwrites the mutable fields and appends a
// version entry whose changes field summarizes what was edited.
func (s *Service) Update(id string, form Form) (models.Recipe, error) {
	if err := validate(form); err != nil {
		return models.Recipe{}, err
	}

	i := s.index(id)
	if i < 0 {
		return models.Recipe{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	old := s.recipes[i]
	today := s.today()

	r := &s.recipes[i]
	r.Name = form.Name
	r.Category = form.Category
	r.Servings = servingsOrDefault(form.Servings)
	r.Ingredients = form.Ingredients
	r.Steps = form.Steps
	r.Yield = form.Yield
	r.CookingTime = form.CookingTime
	r.Equipment = form.Equipment
	r.Notes = form.Notes
	r.UpdatedAt = today
	r.Versions = append(r.Versions, models.Version{
		Version: fmt.Sprintf("%d.0", len(old.Versions)+1),
		Date:    today,
		Changes: changeSummary(old, form),
	})

	if err := s.save(); err != nil {
		return models.Recipe{}, err
	}
	return *r, nil
}

// changeSummary produces a human-readable description of an edit by diffing
// the tracked fields: name, ingredient count, step count.
func changeSummary(old models.Recipe, form Form) string {
	var parts []string
	if old.Name != form.Name {
		parts = append(parts, fmt.Sprintf("name: %s → %s", old.Name, form.Name))
	}
	if len(old.Ingredients) != len(form.Ingredients) {
		parts = append(parts, fmt.Sprintf("ingredients: %d → %d", len(old.Ingredients), len(form.Ingredients)))
	}
	if len(old.Steps) != len(form.Steps) {
		parts = append(parts, fmt.Sprintf("steps: %d → %d", len(old.Steps), len(form.Steps)))
	}
	if len(parts) == 0 {
		return "minor edit"
	}
	return strings.Join(parts, "; ")
}

func validate(form Form) error {
	var missing []string
	if strings.TrimSpace(form.Name) == "" {
		missing = append(missing, "name")
	}
	if len(form.Ingredients) == 0 {
		missing = append(missing, "ingredients")
	}
	if len(form.Steps) == 0 {
		missing = append(missing, "steps")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

func servingsOrDefault(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func (s *Service) save() error {
	return s.store.Save(s.recipes)
}

func (s *Service) today() string {
	return s.now().Format("2006-01-02")
}

func (s *Service) index(id string) int {
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			return i
		}
	}
	return -1
}
