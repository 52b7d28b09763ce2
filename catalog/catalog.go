package catalog

// Item is a single catalog entry. Index is 0-based and stable for the
// lifetime of the Catalog that owns it.
type Item struct {
	Index int
	Title string
	Tags  string
}

// Catalog is an immutable ordered sequence of items.
type Catalog struct {
	items []Item
}

// New builds a Catalog from the given items. Items are copied and
// re-numbered 0..N-1 in the order supplied.
func New(items []Item) *Catalog {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = Item{Index: i, Title: it.Title, Tags: it.Tags}
	}
	return &Catalog{items: out}
}

// Len returns the number of items. A nil Catalog has zero items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Item returns the item at index i. It panics when i is out of range, like a
// slice access.
func (c *Catalog) Item(i int) Item { return c.items[i] }

// Items returns a copy of all items in catalog order.
func (c *Catalog) Items() []Item {
	if c == nil {
		return nil
	}
	return append([]Item(nil), c.items...)
}

// Titles returns item titles in catalog order.
func (c *Catalog) Titles() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.items))
	for i, it := range c.items {
		out[i] = it.Title
	}
	return out
}

// Tags returns item tag strings in catalog order.
func (c *Catalog) Tags() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.items))
	for i, it := range c.items {
		out[i] = it.Tags
	}
	return out
}
