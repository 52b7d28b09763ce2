// Package bruteforce provides an exact cosine index that scores the query row
// against every row of the feature matrix. It is the baseline index and is
// adequate for catalogs of a few tens of thousands of items.
package bruteforce
