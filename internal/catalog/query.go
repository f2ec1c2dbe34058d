package catalog

import (
	"fmt"
	"strings"
)

// FilterBySubject returns the courses whose ID contains any of markers, sorted
// by ID. It returns ErrEmptyCatalog when idx holds nothing and ErrNoMatches
// when nothing matched.
func FilterBySubject(idx *Index, markers ...string) ([]Course, error) {
	if idx.Len() == 0 {
		return nil, ErrEmptyCatalog
	}

	var out []Course
	for _, c := range idx.All() {
		if containsAny(c.ID, markers) {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("subjects %s: %w", strings.Join(markers, ", "), ErrNoMatches)
	}
	return out, nil
}

// Lookup returns the course stored under id, or an error wrapping ErrNotFound.
func Lookup(idx *Index, id string) (Course, error) {
	c, ok := idx.Find(id)
	if !ok {
		return Course{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return c, nil
}

func containsAny(id string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(id, m) {
			return true
		}
	}
	return false
}
