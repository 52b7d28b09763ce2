// Package index defines the nearest-neighbour index contract used by the
// recommender. Implementations live in subpackages.
package index
