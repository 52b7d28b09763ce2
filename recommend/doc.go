// Package recommend answers "most similar items" queries over a catalog.
//
// An Engine is constructed once from a catalog: construction tokenizes all
// tags, fixes the vocabulary and the count matrix and prepares the index.
// After New returns the engine is immutable and its query methods may be
// called from any number of goroutines without locking.
package recommend
