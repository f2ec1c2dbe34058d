package loader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kamusis/advising-cli/internal/catalog"
)

// DefaultDelimiter separates fields when no other delimiter is configured.
const DefaultDelimiter = ','

// ErrMalformedLine indicates a line without both an identifier and a title.
var ErrMalformedLine = errors.New("malformed line")

// Split cuts line at every delim and drops empty tokens, so runs of
// delimiters and trailing delimiters produce no fields.
func Split(line string, delim rune) []string {
	return strings.FieldsFunc(line, func(r rune) bool { return r == delim })
}

// ParseLine builds a course from one catalog line.
func ParseLine(line string, delim rune) (catalog.Course, error) {
	fields := Split(line, delim)
	if len(fields) < 2 {
		return catalog.Course{}, fmt.Errorf("%w: want at least 2 fields, got %d", ErrMalformedLine, len(fields))
	}
	c := catalog.Course{ID: fields[0], Title: fields[1]}
	if len(fields) > 2 {
		c.Prerequisites = append([]string(nil), fields[2:]...)
	}
	return c, nil
}
