package catalog

import "strings"

// Course is one catalog entry.
type Course struct {
	ID            string
	Title         string
	Prerequisites []string
}

// Less orders courses by identifier, byte-wise.
func (c Course) Less(other Course) bool {
	return c.ID < other.ID
}

// HasPrerequisites reports whether c lists any prerequisite.
func (c Course) HasPrerequisites() bool {
	return len(c.Prerequisites) > 0
}

// clone returns a copy of c that shares no backing array with it.
func (c Course) clone() Course {
	out := c
	if c.Prerequisites != nil {
		out.Prerequisites = make([]string, len(c.Prerequisites))
		copy(out.Prerequisites, c.Prerequisites)
	}
	return out
}

func compareCourses(a, b Course) int {
	return strings.Compare(a.ID, b.ID)
}
