// Package catalog defines the immutable item catalog consumed by the
// recommender and the loaders that produce it:
//   - Item and Catalog model
//   - CSV loader for title/tags tables
//   - Store: SQLite-backed storage of the raw catalog rows
package catalog
