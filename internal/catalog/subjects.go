package catalog

import (
	"strings"
	"unicode"

	"github.com/google/btree"
)

// SubjectCount is the number of courses sharing one subject prefix.
type SubjectCount struct {
	Subject string
	Courses int
}

// Subject returns the subject family of id: its leading run of letters, or
// id itself when it does not start with a letter.
func Subject(id string) string {
	end := strings.IndexFunc(id, func(r rune) bool { return !unicode.IsLetter(r) })
	if end <= 0 {
		return id
	}
	return id[:end]
}

// Subjects groups the courses in idx by subject, sorted by subject.
func Subjects(idx *Index) []SubjectCount {
	tree := btree.NewG[SubjectCount](8, func(a, b SubjectCount) bool { return a.Subject < b.Subject })
	for _, bucket := range idx.buckets {
		for _, c := range bucket {
			key := SubjectCount{Subject: Subject(c.ID)}
			if prev, ok := tree.Get(key); ok {
				key = prev
			}
			key.Courses++
			tree.ReplaceOrInsert(key)
		}
	}

	out := make([]SubjectCount, 0, tree.Len())
	tree.Ascend(func(s SubjectCount) bool {
		out = append(out, s)
		return true
	})
	return out
}
