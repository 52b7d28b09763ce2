package rectab

import (
	"strings"
	"testing"

	"github.com/viant/tagrec/catalog"
	"github.com/viant/tagrec/engine"
	"github.com/viant/tagrec/recommend"
)

// TestMatchReturnsRankedRecommendations verifies that MATCH on the title
// column returns neighbours in rank order, excluding the queried item.
func TestMatchReturnsRankedRecommendations(t *testing.T) {
	eng, err := recommend.New(catalog.New([]catalog.Item{
		{Title: "A", Tags: "space alien robot"},
		{Title: "B", Tags: "space alien robot"},
		{Title: "C", Tags: "romance drama family"},
		{Title: "D", Tags: "space drama"},
	}))
	if err != nil {
		t.Fatalf("recommend.New failed: %v", err)
	}
	Attach("match_test", eng)
	defer Attach("match_test", nil)

	db, err := engine.Open(":memory:")
	if err != nil {
		t.Fatalf("engine.Open(:memory:) failed: %v", err)
	}
	defer db.Close()
	if err := Register(db); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := db.Exec(`CREATE VIRTUAL TABLE recs USING rectab(match_test)`); err != nil {
		if strings.Contains(err.Error(), "no such module: rectab") {
			t.Skipf("skipping: rectab vtab not available (%v)", err)
		}
		t.Fatalf("CREATE VIRTUAL TABLE failed: %v", err)
	}

	rows, err := db.Query(`SELECT title, rank, score FROM recs WHERE title MATCH ? LIMIT 2`, "a")
	if err != nil {
		t.Fatalf("MATCH query failed: %v", err)
	}
	defer rows.Close()

	var titles []string
	var ranks []int
	for rows.Next() {
		var title string
		var rank int
		var score float64
		if err := rows.Scan(&title, &rank, &score); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		titles = append(titles, title)
		ranks = append(ranks, rank)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows.Err: %v", err)
	}
	if strings.Join(titles, ",") != "B,D" {
		t.Fatalf("titles = %v, want [B D]", titles)
	}
	if ranks[0] != 1 || ranks[1] != 2 {
		t.Fatalf("ranks = %v, want [1 2]", ranks)
	}

	var n int
	if err := db.QueryRow(`SELECT count(*) FROM recs WHERE title MATCH 'missing'`).Scan(&n); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("count for missing title = %d, want 0", n)
	}
}

func TestConnectRequiresAttachedEngine(t *testing.T) {
	db, err := engine.Open(":memory:")
	if err != nil {
		t.Fatalf("engine.Open(:memory:) failed: %v", err)
	}
	defer db.Close()
	if err := Register(db); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := db.Exec(`CREATE VIRTUAL TABLE recs USING rectab(not_attached)`); err == nil {
		t.Fatal("expected error for unattached engine")
	}
}
