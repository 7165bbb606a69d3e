package storage

import "github.com/bochang/recipebox/internal/models"

// Provider persists the full recipe collection as one unit. There is no
// incremental write path: every mutation saves the whole collection.
type Provider interface {
	// Load reads the persisted collection. A missing or unparsable blob is
	// not an error: the built-in seed set is returned instead.
	Load() ([]models.Recipe, error)

	// Save serializes and persists the full collection, replacing whatever
	// was stored before.
	Save(recipes []models.Recipe) error

	// Path returns the location of the underlying storage file.
	Path() string
}
