package vector

// Vocabulary maps tokens to feature columns. It is immutable once built.
type Vocabulary struct {
	tokens  []string
	columns map[string]int
	version string
}

func newVocabulary(tokens []string, version string) *Vocabulary {
	columns := make(map[string]int, len(tokens))
	for i, t := range tokens {
		columns[t] = i
	}
	return &Vocabulary{tokens: tokens, columns: columns, version: version}
}

// Len returns the number of columns.
func (v *Vocabulary) Len() int { return len(v.tokens) }

// Column returns the column index of token.
func (v *Vocabulary) Column(token string) (int, bool) {
	col, ok := v.columns[token]
	return col, ok
}

// Token returns the token assigned to column col.
func (v *Vocabulary) Token(col int) string { return v.tokens[col] }

// Tokens returns a copy of all tokens in column order.
func (v *Vocabulary) Tokens() []string { return append([]string(nil), v.tokens...) }

// FilterVersion returns the TokenFilter version the vocabulary was built with.
func (v *Vocabulary) FilterVersion() string { return v.version }
