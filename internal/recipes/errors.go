package recipes

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when an operation references a recipe id that is
// not in the collection. Callers generally treat it as a no-op.
var ErrNotFound = errors.New("recipe not found")

// ValidationError reports which required fields are missing from a submitted
// recipe form. It is user-facing: the operation aborts with no state change.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}
