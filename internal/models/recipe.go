package models

type Category string

const (
	CategoryMain    Category = "main"
	CategoryDessert Category = "dessert"
	CategorySauce   Category = "sauce"
	CategoryDrink   Category = "drink"
	CategorySide    Category = "side"
	CategoryBread   Category = "bread"
)

// DisplayName returns a human-readable label for known categories.
// Unknown values pass through unchanged so imported data still renders.
func (c Category) DisplayName() string {
	switch c {
	case CategoryMain:
		return "Main dish"
	case CategoryDessert:
		return "Dessert"
	case CategorySauce:
		return "Sauce & seasoning"
	case CategoryDrink:
		return "Drink"
	case CategorySide:
		return "Side dish"
	case CategoryBread:
		return "Bread"
	default:
		return string(c)
	}
}

// Ingredient is one entry of a recipe's ingredient list. An Amount of 0 is a
// sentinel meaning "no numeric quantity" (e.g. a pinch, to taste); in that
// case Unit holds the descriptive phrase and scaling leaves it untouched.
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Note   string  `json:"note,omitempty"`
}

// Version is one entry of a recipe's append-only revision log.
type Version struct {
	Version string `json:"version"`
	Date    string `json:"date"` // YYYY-MM-DD
	Changes string `json:"changes"`
}

// Recipe is a single dish entry.
type Recipe struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	Servings  int      `json:"servings"`

	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`

	CreatedAt string    `json:"createdAt"` // YYYY-MM-DD
	UpdatedAt string    `json:"updatedAt"` // YYYY-MM-DD
	Versions  []Version `json:"versions"`

	Yield       *string  `json:"yield,omitempty"`
	CookingTime *string  `json:"cookingTime,omitempty"`
	Equipment   []string `json:"equipment,omitempty"`
	Notes       *string  `json:"notes,omitempty"`

	IsStarred    bool    `json:"isStarred"`
	ViewCount    int     `json:"viewCount,omitempty"`
	LastViewedAt *string `json:"lastViewedAt,omitempty"`
}

// CurrentVersion returns the number of the latest revision, or "1.0" for a
// recipe that has somehow lost its log.
func (r *Recipe) CurrentVersion() string {
	if len(r.Versions) == 0 {
		return "1.0"
	}
	return r.Versions[len(r.Versions)-1].Version
}
