package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(courses []Course) []string {
	out := make([]string, len(courses))
	for i, c := range courses {
		out[i] = c.ID
	}
	return out
}

func newIndex(t *testing.T, courseIDs ...string) *Index {
	t.Helper()
	idx := NewIndex()
	for _, id := range courseIDs {
		require.True(t, idx.Insert(Course{ID: id, Title: "title " + id}))
	}
	return idx
}

func TestHash(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want int
	}{
		{"empty", "", 0},
		{"course code", "CSCI101", 36},
		{"letters", "ABC", 98},
		{"very long", strings.Repeat("Z", 100000), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hash(tt.id))
		})
	}
}

func TestHash_AnagramsShareBucket(t *testing.T) {
	assert.Equal(t, Hash("CSCI101"), Hash("101ICSC"))

	idx := newIndex(t, "CSCI101", "101ICSC")
	bucket, chain := idx.BucketOf("CSCI101")
	assert.Equal(t, 36, bucket)
	assert.Equal(t, 2, chain)

	a, ok := idx.Find("CSCI101")
	require.True(t, ok)
	assert.Equal(t, "title CSCI101", a.Title)
	b, ok := idx.Find("101ICSC")
	require.True(t, ok)
	assert.Equal(t, "title 101ICSC", b.Title)
}

func TestInsert_FirstWins(t *testing.T) {
	idx := NewIndex()
	assert.True(t, idx.Insert(Course{ID: "a", Title: "first"}))
	assert.False(t, idx.Insert(Course{ID: "a", Title: "second"}))
	assert.True(t, idx.Insert(Course{ID: "b", Title: "other"}))

	c, ok := idx.Find("a")
	require.True(t, ok)
	assert.Equal(t, "first", c.Title)
	assert.Equal(t, 2, idx.Len())
	assert.Len(t, idx.All(), 2)
}

func TestInsert_EmptyIdentifier(t *testing.T) {
	idx := NewIndex()
	assert.True(t, idx.Insert(Course{ID: "", Title: "blank"}))

	c, ok := idx.Find("")
	require.True(t, ok)
	assert.Equal(t, "blank", c.Title)
}

func TestFind_RoundTrip(t *testing.T) {
	in := Course{
		ID:            "CSCI300",
		Title:         "Introduction to Algorithms",
		Prerequisites: []string{"CSCI200", "MATH201", "CSCI200"},
	}
	idx := NewIndex()
	require.True(t, idx.Insert(in))

	got, ok := idx.Find("CSCI300")
	require.True(t, ok)
	assert.Equal(t, in, got)
}

func TestFind_NotFound(t *testing.T) {
	idx := newIndex(t, "CSCI101", "MATH201")

	c, ok := idx.Find("NOPE999")
	assert.False(t, ok)
	assert.Equal(t, Course{}, c)
}

func TestFind_DoesNotAliasStorage(t *testing.T) {
	prereqs := []string{"CSCI100"}
	idx := NewIndex()
	require.True(t, idx.Insert(Course{ID: "CSCI101", Title: "Intro", Prerequisites: prereqs}))
	prereqs[0] = "changed"

	c, _ := idx.Find("CSCI101")
	assert.Equal(t, []string{"CSCI100"}, c.Prerequisites)

	c.Prerequisites[0] = "changed again"
	c, _ = idx.Find("CSCI101")
	assert.Equal(t, []string{"CSCI100"}, c.Prerequisites)
}

func TestAll_SortedByID(t *testing.T) {
	idx := newIndex(t, "CSCI300", "CSCI101", "MATH201")
	assert.Equal(t, []string{"CSCI101", "CSCI300", "MATH201"}, ids(idx.All()))
}

func TestAll_Snapshot(t *testing.T) {
	idx := newIndex(t, "CSCI300", "CSCI101", "MATH201")

	first := idx.All()
	second := idx.All()
	assert.Equal(t, first, second)

	require.True(t, idx.Insert(Course{ID: "CSCI200"}))
	assert.Equal(t, []string{"CSCI101", "CSCI300", "MATH201"}, ids(first))
	assert.Len(t, idx.All(), 4)
}

func TestAll_Empty(t *testing.T) {
	assert.Empty(t, NewIndex().All())
}

func TestCourse_Less(t *testing.T) {
	assert.True(t, Course{ID: "CSCI101"}.Less(Course{ID: "CSCI300"}))
	assert.False(t, Course{ID: "MATH201"}.Less(Course{ID: "CSCI300"}))
	assert.True(t, Course{ID: "CSCI"}.Less(Course{ID: "CSCI100"}))
}
