package recommend

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/viant/tagrec/catalog"
	"github.com/viant/tagrec/index"
	"github.com/viant/tagrec/index/bruteforce"
	"github.com/viant/tagrec/vector"
)

// DefaultK is the number of recommendations returned when k <= 0.
const DefaultK = 5

// NotFoundMessage is the text shown when a queried title is not in the catalog.
const NotFoundMessage = "Movie not found."

// Engine is an immutable recommender over a single catalog.
type Engine struct {
	cat     *catalog.Catalog
	vocab   *vector.Vocabulary
	matrix  *vector.Matrix
	index   index.Index
	byTitle map[string]int
	logger  logrus.FieldLogger
}

// Result is the outcome of a Recommend call. Found is false when the queried
// title matches no catalog item; that is an expected outcome, not an error.
type Result struct {
	Query  string
	Found  bool
	Item   catalog.Item
	Titles []string
}

// Message renders the result for display: the not-found message, or an
// empty string when the query matched.
func (r Result) Message() string {
	if !r.Found {
		return NotFoundMessage
	}
	return ""
}

// New builds the vocabulary, the count matrix and the index for cat. It
// fails with vector.ErrEmptyCatalog when cat has no items.
func New(cat *catalog.Catalog, opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	started := time.Now()
	vocab, matrix, err := vector.Build(cat,
		vector.WithMaxFeatures(o.maxFeatures),
		vector.WithTokenFilter(o.filter),
	)
	if err != nil {
		return nil, fmt.Errorf("recommend: build features: %w", err)
	}
	idx, err := bruteforce.New(matrix)
	if err != nil {
		return nil, fmt.Errorf("recommend: build index: %w", err)
	}

	byTitle := make(map[string]int, cat.Len())
	for i := 0; i < cat.Len(); i++ {
		key := foldTitle(cat.Item(i).Title)
		if _, ok := byTitle[key]; !ok {
			byTitle[key] = i
		}
	}

	e := &Engine{
		cat:     cat,
		vocab:   vocab,
		matrix:  matrix,
		index:   idx,
		byTitle: byTitle,
		logger:  o.logger,
	}
	e.logger.WithFields(logrus.Fields{
		"items":      cat.Len(),
		"vocabulary": vocab.Len(),
		"filter":     vocab.FilterVersion(),
		"elapsed":    time.Since(started).String(),
	}).Info("recommender ready")
	return e, nil
}

// Catalog returns the catalog the engine was built from.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// Vocabulary returns the fixed vocabulary.
func (e *Engine) Vocabulary() *vector.Vocabulary { return e.vocab }

// Matrix returns the fixed count matrix.
func (e *Engine) Matrix() *vector.Matrix { return e.matrix }

// Similarity returns the cosine similarity between items i and j.
func (e *Engine) Similarity(i, j int) float64 { return e.matrix.Cosine(i, j) }

// Lookup returns the first item whose title equals title case-insensitively.
func (e *Engine) Lookup(title string) (catalog.Item, bool) {
	i, ok := e.byTitle[foldTitle(title)]
	if !ok {
		return catalog.Item{}, false
	}
	return e.cat.Item(i), true
}

// Neighbor is a ranked catalog item with its similarity to the query item.
type Neighbor struct {
	Item  catalog.Item
	Score float64
}

// Recommend returns the titles of the k items most similar to title. Items
// are ranked by cosine similarity, ties by catalog order, and the queried
// item itself is never returned. Fewer than k titles are returned only when
// the catalog has fewer than k+1 items.
func (e *Engine) Recommend(title string, k int) Result {
	if k <= 0 {
		k = DefaultK
	}
	res := Result{Query: title}
	item, neighbors, ok := e.Neighbors(title, k)
	if !ok {
		return res
	}
	res.Found = true
	res.Item = item
	res.Titles = make([]string, len(neighbors))
	for i, n := range neighbors {
		res.Titles[i] = n.Item.Title
	}
	return res
}

// Neighbors resolves title like Recommend and returns up to k ranked
// neighbours with their scores; k <= 0 returns every other item. The boolean
// is false when title is not in the catalog.
func (e *Engine) Neighbors(title string, k int) (catalog.Item, []Neighbor, bool) {
	item, ok := e.Lookup(title)
	if !ok {
		e.logger.WithField("title", title).Debug("title not in catalog")
		return catalog.Item{}, nil, false
	}
	hits, err := e.index.Query(item.Index, 0)
	if err != nil {
		// Unreachable: item.Index comes from the catalog the index was built on.
		e.logger.WithError(err).WithField("title", title).Error("similarity query failed")
		return item, nil, true
	}
	if k <= 0 || k > len(hits)-1 {
		k = len(hits) - 1
	}
	out := make([]Neighbor, 0, k)
	for _, h := range hits {
		if len(out) == k {
			break
		}
		if h.Row == item.Index {
			continue
		}
		out = append(out, Neighbor{Item: e.cat.Item(h.Row), Score: h.Score})
	}
	return item, out, true
}

func foldTitle(title string) string {
	return cases.Lower(language.Und).String(title)
}
