package catalog

import "slices"

// BucketCount is the fixed number of buckets. The table never grows.
const BucketCount = 100

// Hash returns the bucket for id: the sum of its code points modulo BucketCount.
//
// Anagrams share a bucket. The sum is reduced per rune so arbitrarily long
// identifiers cannot overflow.
func Hash(id string) int {
	sum := 0
	for _, r := range id {
		sum = (sum + int(r)) % BucketCount
	}
	return sum
}

// Index maps course identifiers to courses using chained buckets.
type Index struct {
	buckets [BucketCount][]Course
	n       int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{}
}

// Insert stores c unless a course with the same ID is already present.
// It reports whether c was stored; the first course inserted for an ID wins.
func (idx *Index) Insert(c Course) bool {
	b := Hash(c.ID)
	for _, existing := range idx.buckets[b] {
		if existing.ID == c.ID {
			return false
		}
	}
	idx.buckets[b] = append(idx.buckets[b], c.clone())
	idx.n++
	return true
}

// Find returns the course stored under id.
func (idx *Index) Find(id string) (Course, bool) {
	for _, c := range idx.buckets[Hash(id)] {
		if c.ID == id {
			return c.clone(), true
		}
	}
	return Course{}, false
}

// Len returns the number of distinct courses held.
func (idx *Index) Len() int {
	return idx.n
}

// BucketOf returns the bucket id hashes to and how many courses that bucket holds.
func (idx *Index) BucketOf(id string) (bucket, chain int) {
	bucket = Hash(id)
	return bucket, len(idx.buckets[bucket])
}

// All returns every course sorted by ID. The result is a snapshot: later
// inserts do not affect it and modifying it does not affect the index.
func (idx *Index) All() []Course {
	out := make([]Course, 0, idx.n)
	for _, bucket := range idx.buckets {
		for _, c := range bucket {
			out = append(out, c.clone())
		}
	}
	slices.SortFunc(out, compareCourses)
	return out
}
