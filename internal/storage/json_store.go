package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bochang/recipebox/internal/logging"
	"github.com/bochang/recipebox/internal/models"
)

// JSONStore keeps the recipe collection in a single JSON file: an array of
// recipe records, written wholesale on every save. The format has no schema
// version field and evolves by additive optional fields only.
type JSONStore struct {
	path string
	log  logging.Logger
}

func NewJSONStore(path string, log logging.Logger) *JSONStore {
	if log == nil {
		log = logging.Nop()
	}
	return &JSONStore{
		path: path,
		log:  log,
	}
}

// Load reads the stored collection. On first run (no file) or when the blob
// cannot be parsed, the seed set is returned; corruption must degrade to
// usable defaults, never crash the app.
func (s *JSONStore) Load() ([]models.Recipe, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return SeedRecipes(), nil
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	var recipes []models.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		s.log.Warn(context.Background(), "stored recipes unparsable, falling back to seed set",
			"path", s.path, "err", err)
		return SeedRecipes(), nil
	}

	return recipes, nil
}

// Save serializes and persists the full collection.
func (s *JSONStore) Save(recipes []models.Recipe) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(recipes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Path() string {
	return s.path
}
