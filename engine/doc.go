// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module. It intentionally keeps a thin surface so the catalog
// store and the CLI share the same driver instance.
package engine
