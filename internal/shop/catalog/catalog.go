package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sheetshop/storefront/internal/shop/model"
)

// UncategorizedLabel groups records whose category is absent or empty.
const UncategorizedLabel = "Uncategorized"

// SearchMode selects which columns a search term is matched against.
type SearchMode string

const (
	// SearchByName matches the name column only.
	SearchByName SearchMode = "name"
	// SearchExtended matches name, category, color and size.
	SearchExtended SearchMode = "extended"
)

// ParseSearchMode falls back to SearchExtended for unknown values.
func ParseSearchMode(v string) SearchMode {
	if SearchMode(strings.ToLower(strings.TrimSpace(v))) == SearchByName {
		return SearchByName
	}
	return SearchExtended
}

var extendedSearchKeys = []string{model.KeyName, model.KeyCategory, model.KeyColor, model.KeySize}

// Catalog is the master product sequence of one session. Filtered and grouped
// views are plain slices of the same *model.Product values, so a record keeps
// its ID and Position wherever it travels.
type Catalog struct {
	products []*model.Product
	byID     map[uuid.UUID]int
}

// New builds a catalog over products. Positions are reassigned to match the
// slice order.
func New(products []*model.Product) *Catalog {
	c := &Catalog{
		products: make([]*model.Product, len(products)),
		byID:     make(map[uuid.UUID]int, len(products)),
	}
	for i, p := range products {
		if p.Position != i {
			p = model.NewProduct(p.ID, i, p.Fields())
		}
		c.products[i] = p
		c.byID[p.ID] = i
	}
	return c
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// At returns the record at the global index.
func (c *Catalog) At(index int) (*model.Product, bool) {
	if c == nil || index < 0 || index >= len(c.products) {
		return nil, false
	}
	return c.products[index], true
}

func (c *Catalog) ByID(id uuid.UUID) (*model.Product, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return c.products[i], true
}

// Products returns the master sequence. The slice is a copy; the records are shared.
func (c *Catalog) Products() []*model.Product {
	if c == nil {
		return nil
	}
	out := make([]*model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ResolveIndex returns the global index of p, or -1. Records from this
// catalog resolve by ID. Anything else falls back to the first record with
// the same name and price, which cannot tell apart products that share both.
func (c *Catalog) ResolveIndex(p *model.Product) int {
	if c == nil || p == nil {
		return -1
	}
	if i, ok := c.byID[p.ID]; ok {
		return i
	}
	for i, q := range c.products {
		if q.Name() == p.Name() && q.Price() == p.Price() {
			return i
		}
	}
	return -1
}

// Group is one category bucket.
type Group struct {
	Category string
	Products []*model.Product
}

// GroupByCategory buckets list by category, keeping first-seen category
// order and input order within each bucket.
func GroupByCategory(list []*model.Product) []Group {
	var groups []Group
	pos := make(map[string]int)
	for _, p := range list {
		cat := p.Category()
		if cat == "" {
			cat = UncategorizedLabel
		}
		i, ok := pos[cat]
		if !ok {
			i = len(groups)
			pos[cat] = i
			groups = append(groups, Group{Category: cat})
		}
		groups[i].Products = append(groups[i].Products, p)
	}
	return groups
}

// GroupByCategory groups the whole catalog.
func (c *Catalog) GroupByCategory() []Group {
	return GroupByCategory(c.Products())
}

// Categories lists category labels in first-seen order.
func (c *Catalog) Categories() []string {
	groups := c.GroupByCategory()
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Category
	}
	return out
}

// Search returns the records whose searched columns contain term,
// case-insensitively. An empty term matches everything.
func Search(list []*model.Product, term string, mode SearchMode) []*model.Product {
	needle := strings.ToLower(term)
	keys := extendedSearchKeys
	if mode == SearchByName {
		keys = extendedSearchKeys[:1]
	}

	out := make([]*model.Product, 0, len(list))
	for _, p := range list {
		for _, k := range keys {
			if strings.Contains(strings.ToLower(p.Get(k)), needle) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Search runs Search over the whole catalog.
func (c *Catalog) Search(term string, mode SearchMode) []*model.Product {
	return Search(c.Products(), term, mode)
}
