// Package vector turns catalog tag strings into a fixed bag-of-words feature
// space. It includes:
//   - TokenFilter: an explicit, versioned tokenization and stop-word table
//   - Vocabulary: the top-K most frequent tokens of a catalog
//   - Matrix: per-item token counts over the vocabulary
//   - Build and cosine similarity helpers
package vector
