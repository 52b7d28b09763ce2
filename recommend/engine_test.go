package recommend

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/tagrec/catalog"
	"github.com/viant/tagrec/vector"
)

func movies() *catalog.Catalog {
	return catalog.New([]catalog.Item{
		{Title: "Toy Story", Tags: "animation toys friendship pixar comedy"},
		{Title: "Toy Story 2", Tags: "animation toys friendship pixar sequel"},
		{Title: "Alien", Tags: "space alien horror ridley scott"},
		{Title: "Aliens", Tags: "space alien action marines cameron"},
		{Title: "Titanic", Tags: "romance ship disaster cameron"},
		{Title: "Finding Nemo", Tags: "animation ocean fish pixar comedy"},
		{Title: "The Notebook", Tags: "romance drama love"},
		{Title: "Empty", Tags: ""},
	})
}

func newEngine(t *testing.T, cat *catalog.Catalog, opts ...Option) *Engine {
	t.Helper()
	e, err := New(cat, opts...)
	require.NoError(t, err)
	return e
}

func TestNew_EmptyCatalog(t *testing.T) {
	e, err := New(catalog.New(nil))
	require.ErrorIs(t, err, vector.ErrEmptyCatalog)
	assert.Nil(t, e)
}

func TestNew_Invariants(t *testing.T) {
	e := newEngine(t, movies(), WithMaxFeatures(10))
	assert.Equal(t, e.Catalog().Len(), e.Matrix().Rows())
	assert.Equal(t, e.Vocabulary().Len(), e.Matrix().Cols())
	assert.LessOrEqual(t, e.Vocabulary().Len(), 10)
}

func TestRecommend_Scenario(t *testing.T) {
	cat := catalog.New([]catalog.Item{
		{Title: "A", Tags: "space alien robot"},
		{Title: "B", Tags: "space alien robot"},
		{Title: "C", Tags: "romance drama family"},
	})
	e := newEngine(t, cat)

	res := e.Recommend("A", 2)
	require.True(t, res.Found)
	assert.Equal(t, []string{"B", "C"}, res.Titles)
	assert.Equal(t, 0, res.Item.Index)
	assert.Empty(t, res.Message())

	// Fewer than k+1 items: return what is available.
	res = e.Recommend("A", 5)
	assert.Equal(t, []string{"B", "C"}, res.Titles)
}

func TestRecommend_Ranking(t *testing.T) {
	e := newEngine(t, movies())
	res := e.Recommend("Toy Story", 0)
	require.True(t, res.Found)
	require.Len(t, res.Titles, DefaultK)
	assert.Equal(t, "Toy Story 2", res.Titles[0])
	assert.Equal(t, "Finding Nemo", res.Titles[1])
	// Remaining items all score 0 and follow catalog order.
	assert.Equal(t, []string{"Alien", "Aliens", "Titanic"}, res.Titles[2:])
}

func TestRecommend_CaseInsensitive(t *testing.T) {
	e := newEngine(t, movies())
	a := e.Recommend("Toy Story", 5)
	b := e.Recommend("toy story", 5)
	c := e.Recommend("TOY STORY", 5)
	assert.Equal(t, a.Titles, b.Titles)
	assert.Equal(t, a.Titles, c.Titles)
}

func TestRecommend_NotFound(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	e := newEngine(t, movies(), WithLogger(logger))

	res := e.Recommend("Toy Stor", 5)
	assert.False(t, res.Found)
	assert.Empty(t, res.Titles)
	assert.Equal(t, NotFoundMessage, res.Message())
	assert.Equal(t, "title not in catalog", hook.LastEntry().Message)
}

func TestRecommend_Deterministic(t *testing.T) {
	e := newEngine(t, movies())
	first := e.Recommend("Alien", 5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first.Titles, e.Recommend("Alien", 5).Titles)
	}
	other := newEngine(t, movies())
	assert.Equal(t, first.Titles, other.Recommend("Alien", 5).Titles)
}

func TestRecommend_Properties(t *testing.T) {
	cat := movies()
	e := newEngine(t, cat)
	valid := map[string]bool{}
	for _, title := range cat.Titles() {
		valid[title] = true
	}
	for _, item := range cat.Items() {
		res := e.Recommend(item.Title, 5)
		require.True(t, res.Found, item.Title)
		assert.LessOrEqual(t, len(res.Titles), 5)
		for _, title := range res.Titles {
			assert.NotEqual(t, item.Title, title)
			assert.True(t, valid[title], title)
		}
	}
}

func TestSimilarity_SelfIsMaximal(t *testing.T) {
	cat := movies()
	e := newEngine(t, cat)
	for i := 0; i < cat.Len(); i++ {
		if e.Matrix().Norm(i) == 0 {
			continue
		}
		self := e.Similarity(i, i)
		assert.InDelta(t, 1.0, self, 1e-9)
		for j := 0; j < cat.Len(); j++ {
			assert.LessOrEqual(t, e.Similarity(i, j), self+1e-9)
		}
	}
}

func TestRecommend_EmptyTags(t *testing.T) {
	e := newEngine(t, movies())
	res := e.Recommend("empty", 3)
	require.True(t, res.Found)
	assert.Equal(t, []string{"Toy Story", "Toy Story 2", "Alien"}, res.Titles)
}

func TestRecommend_DuplicateTitles(t *testing.T) {
	var items []catalog.Item
	for i := 0; i < 9; i++ {
		items = append(items, catalog.Item{Title: fmt.Sprintf("M%d", i), Tags: fmt.Sprintf("tag%d", i)})
	}
	items[2] = catalog.Item{Title: "X", Tags: "space"}
	items[7] = catalog.Item{Title: "x", Tags: "romance"}
	items[4].Tags = "space"
	items[5].Tags = "romance"
	e := newEngine(t, catalog.New(items))

	item, ok := e.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, 2, item.Index)

	res := e.Recommend("x", 1)
	require.True(t, res.Found)
	assert.Equal(t, 2, res.Item.Index)
	assert.Equal(t, []string{"M4"}, res.Titles)
}

func TestRecommend_IdenticalEarlierItem(t *testing.T) {
	cat := catalog.New([]catalog.Item{
		{Title: "First", Tags: "space alien"},
		{Title: "Second", Tags: "space alien"},
		{Title: "Third", Tags: "drama"},
	})
	e := newEngine(t, cat)
	assert.Equal(t, []string{"First", "Third"}, e.Recommend("Second", 5).Titles)
}

func TestRecommend_Concurrent(t *testing.T) {
	e := newEngine(t, movies())
	want := e.Recommend("Titanic", 5).Titles
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, e.Recommend("titanic", 5).Titles)
		}()
	}
	wg.Wait()
}

func TestNew_LogsBuild(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	newEngine(t, movies(), WithLogger(logger))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "recommender ready", entry.Message)
	assert.Equal(t, 8, entry.Data["items"])
}

func TestWithTokenFilter(t *testing.T) {
	cat := catalog.New([]catalog.Item{
		{Title: "A", Tags: "the space"},
		{Title: "B", Tags: "the drama"},
		{Title: "C", Tags: "space drama"},
	})
	e := newEngine(t, cat, WithTokenFilter(vector.NewTokenFilter("none", 1, nil)))
	col, ok := e.Vocabulary().Column("the")
	require.True(t, ok)
	assert.Equal(t, 0, col)
	// A shares "the" with B and "space" with C; both score 0.5.
	assert.True(t, math.Abs(e.Similarity(0, 1)-e.Similarity(0, 2)) < 1e-12)
	assert.Equal(t, []string{"B", "C"}, e.Recommend("a", 2).Titles)
}

func TestNeighbors(t *testing.T) {
	e := newEngine(t, movies())
	item, neighbors, ok := e.Neighbors("toy story", 0)
	require.True(t, ok)
	assert.Equal(t, "Toy Story", item.Title)
	require.Len(t, neighbors, 7)
	assert.Equal(t, "Toy Story 2", neighbors[0].Item.Title)
	assert.InDelta(t, 0.8, neighbors[0].Score, 1e-9)
	assert.InDelta(t, 0.6, neighbors[1].Score, 1e-9)
	for i := 1; i < len(neighbors); i++ {
		assert.GreaterOrEqual(t, neighbors[i-1].Score, neighbors[i].Score)
	}

	_, neighbors, ok = e.Neighbors("Toy Story", 2)
	require.True(t, ok)
	assert.Len(t, neighbors, 2)

	_, _, ok = e.Neighbors("missing", 2)
	assert.False(t, ok)
}
