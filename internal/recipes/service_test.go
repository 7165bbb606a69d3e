package recipes

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bochang/recipebox/internal/models"
)

// fakeStore keeps the collection in memory and records saves, so tests can
// assert persistence without touching the filesystem.
type fakeStore struct {
	recipes []models.Recipe
	saves   int
	saveErr error
}

func (f *fakeStore) Load() ([]models.Recipe, error) { return f.recipes, nil }

func (f *fakeStore) Save(recipes []models.Recipe) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.recipes = make([]models.Recipe, len(recipes))
	copy(f.recipes, recipes)
	return nil
}

func (f *fakeStore) Path() string { return "fake" }

func newTestService(t *testing.T, seed []models.Recipe) (*Service, *fakeStore) {
	t.Helper()
	store := &fakeStore{recipes: seed}
	svc, err := New(store)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	svc.now = func() time.Time {
		return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	}
	return svc, store
}

func testForm() Form {
	return Form{
		Name:     "Test Soup",
		Category: models.CategoryMain,
		Servings: 2,
		Ingredients: []models.Ingredient{
			{Name: "Water", Amount: 500, Unit: "ml"},
			{Name: "Salt", Amount: 3.5, Unit: "g"},
		},
		Steps: []string{"Boil the water", "Add the salt"},
	}
}

func TestCreate(t *testing.T) {
	svc, store := newTestService(t, nil)

	created, err := svc.Create(testForm())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if created.ID == "" {
		t.Error("Create() did not assign an id")
	}
	if created.CreatedAt != "2026-03-14" || created.UpdatedAt != "2026-03-14" {
		t.Errorf("Create() dates = %s / %s, want 2026-03-14 for both", created.CreatedAt, created.UpdatedAt)
	}
	if len(created.Versions) != 1 {
		t.Fatalf("Create() version count = %d, want 1", len(created.Versions))
	}
	v := created.Versions[0]
	if v.Version != "1.0" || v.Changes != "initial creation" {
		t.Errorf("Create() first version = %q / %q, want 1.0 / initial creation", v.Version, v.Changes)
	}
	if store.saves != 1 {
		t.Errorf("Create() saves = %d, want 1", store.saves)
	}
	if len(svc.All()) != 1 || svc.All()[0].ID != created.ID {
		t.Error("Create() did not prepend the recipe to the collection")
	}
}

func TestCreateDefaultsServings(t *testing.T) {
	svc, _ := newTestService(t, nil)

	form := testForm()
	form.Servings = 0
	created, err := svc.Create(form)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created.Servings != 1 {
		t.Errorf("Create() servings = %d, want default 1", created.Servings)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, store := newTestService(t, nil)

	_, err := svc.Create(Form{Name: "  "})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Create() error = %v, want *ValidationError", err)
	}
	want := []string{"name", "ingredients", "steps"}
	if len(verr.Fields) != len(want) {
		t.Fatalf("ValidationError fields = %v, want %v", verr.Fields, want)
	}
	for i, f := range want {
		if verr.Fields[i] != f {
			t.Errorf("ValidationError fields[%d] = %s, want %s", i, verr.Fields[i], f)
		}
	}
	if !strings.Contains(verr.Error(), "missing required fields: name, ingredients, steps") {
		t.Errorf("ValidationError message = %q", verr.Error())
	}
	if store.saves != 0 || len(svc.All()) != 0 {
		t.Error("failed Create() must not change state")
	}
}

func TestUpdateAppendsVersion(t *testing.T) {
	svc, _ := newTestService(t, nil)
	created, err := svc.Create(testForm())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	form := testForm()
	form.Name = "Miso Soup"
	form.Ingredients = append(form.Ingredients, models.Ingredient{Name: "Miso", Amount: 20, Unit: "g"})

	updated, err := svc.Update(created.ID, form)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if len(updated.Versions) != 2 {
		t.Fatalf("Update() version count = %d, want 2", len(updated.Versions))
	}
	v := updated.Versions[1]
	if v.Version != "2.0" {
		t.Errorf("Update() new version = %s, want 2.0", v.Version)
	}
	wantChanges := "name: Test Soup → Miso Soup; ingredients: 2 → 3"
	if v.Changes != wantChanges {
		t.Errorf("Update() changes = %q, want %q", v.Changes, wantChanges)
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Error("Update() must not touch CreatedAt")
	}
}

func TestUpdateMinorEdit(t *testing.T) {
	svc, _ := newTestService(t, nil)
	created, err := svc.Create(testForm())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Same name, same counts, only a step reworded.
	form := testForm()
	form.Steps = []string{"Bring the water to a boil", "Add the salt"}

	updated, err := svc.Update(created.ID, form)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if got := updated.Versions[len(updated.Versions)-1].Changes; got != "minor edit" {
		t.Errorf("Update() changes = %q, want %q", got, "minor edit")
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc, _ := newTestService(t, nil)
	if _, err := svc.Update("nope", testForm()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestVersionNumbersAreMonotonic(t *testing.T) {
	svc, _ := newTestService(t, nil)
	created, err := svc.Create(testForm())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.Update(created.ID, testForm()); err != nil {
			t.Fatalf("Update() #%d error: %v", i, err)
		}
	}

	r, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	want := []string{"1.0", "2.0", "3.0", "4.0"}
	if len(r.Versions) != len(want) {
		t.Fatalf("version count = %d, want %d", len(r.Versions), len(want))
	}
	for i, v := range r.Versions {
		if v.Version != want[i] {
			t.Errorf("versions[%d] = %s, want %s", i, v.Version, want[i])
		}
	}
}

func TestViewIncrementsAndPersists(t *testing.T) {
	svc, store := newTestService(t, nil)
	created, err := svc.Create(testForm())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	versionsBefore := len(created.Versions)
	savesBefore := store.saves

	viewed, err := svc.View(created.ID)
	if err != nil {
		t.Fatalf("View() error: %v", err)
	}
	if viewed.ViewCount != 1 {
		t.Errorf("View() count = %d, want 1", viewed.ViewCount)
	}
	if viewed.LastViewedAt == nil || *viewed.LastViewedAt != "2026-03-14" {
		t.Errorf("View() LastViewedAt = %v, want 2026-03-14", viewed.LastViewedAt)
	}
	if len(viewed.Versions) != versionsBefore {
		t.Error("View() must not append a version entry")
	}
	if store.saves != savesBefore+1 {
		t.Error("View() must persist the collection")
	}
}

func TestViewNotFound(t *testing.T) {
	svc, _ := newTestService(t, nil)
	if _, err := svc.View("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("View() error = %v, want ErrNotFound", err)
	}
}

func TestToggleStar(t *testing.T) {
	svc, _ := newTestService(t, nil)
	created, err := svc.Create(testForm())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	on, err := svc.ToggleStar(created.ID)
	if err != nil {
		t.Fatalf("ToggleStar() error: %v", err)
	}
	if !on {
		t.Error("first ToggleStar() = false, want true")
	}
	off, err := svc.ToggleStar(created.ID)
	if err != nil {
		t.Fatalf("ToggleStar() error: %v", err)
	}
	if off {
		t.Error("second ToggleStar() = true, want false")
	}

	r, _ := svc.Get(created.ID)
	if len(r.Versions) != 1 {
		t.Error("ToggleStar() must not append version entries")
	}
}

func TestSearch(t *testing.T) {
	seed := []models.Recipe{
		{ID: "a", Name: "Chocolate Mousse"},
		{ID: "b", Name: "Caramel Sauce"},
		{ID: "c", Name: "Hot Chocolate"},
	}
	svc, _ := newTestService(t, seed)

	got := svc.Search("CHOCO")
	if len(got) != 2 {
		t.Fatalf("Search() matched %d, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("Search() ids = %s, %s; want a, c", got[0].ID, got[1].ID)
	}

	if got := svc.Search(""); len(got) != 3 {
		t.Errorf("empty Search() matched %d, want full collection of 3", len(got))
	}
	if got := svc.Search("xyzzy"); len(got) != 0 {
		t.Errorf("Search() with no match returned %d items", len(got))
	}

	// The live collection must be untouched by filtering.
	if len(svc.All()) != 3 {
		t.Error("Search() mutated the collection")
	}
}

func TestSort(t *testing.T) {
	seed := []models.Recipe{
		{ID: "a", Name: "banana bread", UpdatedAt: "2026-01-01", ViewCount: 5},
		{ID: "b", Name: "Apple Pie", UpdatedAt: "2026-02-01", IsStarred: true},
		{ID: "c", Name: "cocoa", UpdatedAt: "2026-03-01", ViewCount: 5},
	}

	cases := []struct {
		mode SortMode
		want []string
	}{
		{SortByTime, []string{"c", "b", "a"}},
		{SortByName, []string{"b", "a", "c"}},
		{SortByStarred, []string{"b", "c", "a"}},
		{SortByPopular, []string{"c", "a", "b"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.mode), func(t *testing.T) {
			svc, _ := newTestService(t, seed)
			if err := svc.Sort(tc.mode); err != nil {
				t.Fatalf("Sort(%s) error: %v", tc.mode, err)
			}
			all := svc.All()
			for i, id := range tc.want {
				if all[i].ID != id {
					t.Errorf("Sort(%s)[%d] = %s, want %s", tc.mode, i, all[i].ID, id)
				}
			}
		})
	}
}

func TestSortUnknownMode(t *testing.T) {
	svc, _ := newTestService(t, nil)
	if err := svc.Sort(SortMode("bogus")); err == nil {
		t.Error("Sort() with unknown mode should error")
	}
}
