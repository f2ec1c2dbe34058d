package catalog

import "errors"

var (
	// ErrNotFound indicates no course has the requested identifier.
	ErrNotFound = errors.New("course not found")

	// ErrNoMatches indicates a non-empty catalog had no course for the requested subjects.
	ErrNoMatches = errors.New("no matching courses")

	// ErrEmptyCatalog indicates a query ran against an index holding no courses.
	ErrEmptyCatalog = errors.New("catalog is empty")
)
