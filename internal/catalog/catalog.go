// Package catalog holds the immutable menu catalog and the views derived from
// it: entries grouped by category and the featured entry.
package catalog

// Catalog is an immutable list of menu entries. Every accessor returns copies,
// so nothing handed out can change the catalog.
type Catalog struct {
	entries    []Entry
	categories []Category
	index      map[string]int
	featured   int
}

// New builds a catalog from entries, preserving their order.
func New(entries []Entry) *Catalog {
	c := &Catalog{
		entries:  CloneEntries(entries),
		index:    make(map[string]int),
		featured: -1,
	}
	for i, entry := range c.entries {
		pos, ok := c.index[entry.Category]
		if !ok {
			pos = len(c.categories)
			c.index[entry.Category] = pos
			c.categories = append(c.categories, Category{Name: entry.Category})
		}
		c.categories[pos].Items = append(c.categories[pos].Items, entry)
		if entry.Featured && c.featured < 0 {
			c.featured = i
		}
	}
	return c
}

// Empty returns a catalog with no entries.
func Empty() *Catalog {
	return New(nil)
}

// Len reports the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// ListAll returns the full catalog in stable order.
func (c *Catalog) ListAll() []Entry {
	if c == nil {
		return nil
	}
	return CloneEntries(c.entries)
}

// ListByCategory groups the catalog by category label. Categories appear in
// first-seen order and items keep their catalog order.
func (c *Catalog) ListByCategory() []Category {
	if c == nil {
		return nil
	}
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = Category{Name: cat.Name, Items: CloneEntries(cat.Items)}
	}
	return out
}

// Category looks up a single category by label.
func (c *Catalog) Category(name string) (Category, bool) {
	if c == nil {
		return Category{}, false
	}
	pos, ok := c.index[name]
	if !ok {
		return Category{}, false
	}
	cat := c.categories[pos]
	return Category{Name: cat.Name, Items: CloneEntries(cat.Items)}, true
}

// CategoryNames returns the category labels in first-seen order.
func (c *Catalog) CategoryNames() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Featured returns the first entry flagged as featured. When several entries
// carry the flag the first one in catalog order wins.
func (c *Catalog) Featured() (Entry, bool) {
	if c == nil || c.featured < 0 {
		return Entry{}, false
	}
	return c.entries[c.featured], true
}
