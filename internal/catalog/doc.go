// Package catalog holds the in-memory course index.
//
// The index is a fixed array of BucketCount buckets. A course lands in the
// bucket Hash(ID) and each bucket is an append-ordered chain scanned linearly.
// Bucket placement carries no ordering; sorted views are produced on demand
// by All, FilterBySubject and Subjects.
//
// An Index is not safe for concurrent use. Callers load it fully before
// serving any query.
package catalog
