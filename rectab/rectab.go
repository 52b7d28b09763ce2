package rectab

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"modernc.org/sqlite/vtab"

	"github.com/viant/tagrec/recommend"
)

// ModuleName is the name used in CREATE VIRTUAL TABLE ... USING.
const ModuleName = "rectab"

const (
	idxEmpty = iota
	idxMatch
)

var engines = struct {
	mu     sync.RWMutex
	byName map[string]*recommend.Engine
}{byName: make(map[string]*recommend.Engine)}

// Attach makes eng available to virtual tables declared with
// USING rectab(name). Attaching a nil engine detaches name.
func Attach(name string, eng *recommend.Engine) {
	engines.mu.Lock()
	defer engines.mu.Unlock()
	if eng == nil {
		delete(engines.byName, name)
		return
	}
	engines.byName[name] = eng
}

func lookupEngine(name string) (*recommend.Engine, bool) {
	engines.mu.RLock()
	defer engines.mu.RUnlock()
	eng, ok := engines.byName[name]
	return eng, ok
}

// Module implements vtab.Module for the rectab virtual table.
type Module struct{}

// Table is a single rectab virtual table bound to an attached engine name.
type Table struct {
	engine string
}

// Cursor iterates over the ranked neighbours of one MATCH query.
type Cursor struct {
	table *Table
	rows  []recommend.Neighbor
	pos   int
}

// Register registers the rectab module with the driver.
func Register(db *sql.DB) error {
	if err := vtab.RegisterModule(db, ModuleName, &Module{}); err != nil {
		if !strings.Contains(err.Error(), "already registered") {
			return err
		}
	}
	return nil
}

// Create declares the table schema: title, rank and a score column.
func (m *Module) Create(ctx vtab.Context, args []string) (vtab.Table, error) {
	return m.connect(ctx, args)
}

// Connect attaches to an existing rectab table.
func (m *Module) Connect(ctx vtab.Context, args []string) (vtab.Table, error) {
	return m.connect(ctx, args)
}

func (m *Module) connect(ctx vtab.Context, args []string) (vtab.Table, error) {
	if len(args) < 4 {
		return nil, fmt.Errorf("rectab: expected USING %s(<engine>)", ModuleName)
	}
	name := strings.Trim(strings.TrimSpace(args[3]), `'"`)
	if _, ok := lookupEngine(name); !ok {
		return nil, fmt.Errorf("rectab: no engine attached as %q", name)
	}
	if err := ctx.Declare(fmt.Sprintf("CREATE TABLE %s(title TEXT, rank INTEGER, score REAL)", args[2])); err != nil {
		return nil, err
	}
	return &Table{engine: name}, nil
}

// BestIndex pushes down MATCH on the title column.
func (t *Table) BestIndex(info *vtab.IndexInfo) error {
	info.IdxNum = idxEmpty
	for i := range info.Constraints {
		c := &info.Constraints[i]
		if !c.Usable {
			continue
		}
		if c.Column == 0 && c.Op == vtab.OpMATCH {
			c.ArgIndex = 0
			c.Omit = true
			info.IdxNum = idxMatch
			break
		}
	}
	return nil
}

// Open allocates a new cursor.
func (t *Table) Open() (vtab.Cursor, error) { return &Cursor{table: t}, nil }

// Disconnect releases nothing; engines are owned by the caller.
func (t *Table) Disconnect() error { return nil }

// Destroy releases nothing; engines are owned by the caller.
func (t *Table) Destroy() error { return nil }

// Filter ranks the catalog against the MATCH title.
func (c *Cursor) Filter(idxNum int, idxStr string, vals []vtab.Value) error {
	_ = idxStr
	c.rows = nil
	c.pos = 0
	if idxNum != idxMatch || len(vals) == 0 || vals[0] == nil {
		return nil
	}
	title, ok := vals[0].(string)
	if !ok {
		return fmt.Errorf("rectab: MATCH expects a title as TEXT, got %T", vals[0])
	}
	eng, ok := lookupEngine(c.table.engine)
	if !ok {
		return fmt.Errorf("rectab: engine %q was detached", c.table.engine)
	}
	_, rows, found := eng.Neighbors(title, 0)
	if found {
		c.rows = rows
	}
	return nil
}

// Next advances the cursor.
func (c *Cursor) Next() error {
	if c.pos < len(c.rows) {
		c.pos++
	}
	return nil
}

// Eof reports end-of-rows.
func (c *Cursor) Eof() bool { return c.pos >= len(c.rows) }

// Column returns the value of a column in the current row.
func (c *Cursor) Column(col int) (vtab.Value, error) {
	if c.pos < 0 || c.pos >= len(c.rows) {
		return nil, fmt.Errorf("rectab: Column out of range (pos=%d,len=%d)", c.pos, len(c.rows))
	}
	switch col {
	case 0:
		return c.rows[c.pos].Item.Title, nil
	case 1:
		return int64(c.pos + 1), nil
	case 2:
		return c.rows[c.pos].Score, nil
	}
	return nil, fmt.Errorf("rectab: unsupported column %d", col)
}

// Rowid returns the catalog index of the current row.
func (c *Cursor) Rowid() (int64, error) {
	if c.pos < 0 || c.pos >= len(c.rows) {
		return 0, fmt.Errorf("rectab: Rowid out of range (pos=%d,len=%d)", c.pos, len(c.rows))
	}
	return int64(c.rows[c.pos].Item.Index), nil
}

// Close releases resources.
func (c *Cursor) Close() error { c.rows = nil; c.pos = 0; return nil }
