package cart

import (
	"github.com/google/uuid"
	errx "github.com/sheetshop/storefront/internal/core/error"
	"github.com/sheetshop/storefront/internal/shop/catalog"
	"github.com/sheetshop/storefront/internal/shop/model"
	logx "github.com/sheetshop/storefront/pkg/logger"
)

// Cart is an ordered multiset of catalog records. Adding the same product
// twice yields two entries; there are no quantities and no clear operation.
//
// A Cart is not safe for concurrent use; mutations run on the caller's
// event loop one at a time.
type Cart struct {
	entries []*model.Product
}

func New() *Cart {
	return &Cart{}
}

// Add appends the record at the catalog's global index. An out-of-range index
// leaves the cart unchanged and is reported.
func (c *Cart) Add(cat *catalog.Catalog, index int) error {
	p, ok := cat.At(index)
	if !ok {
		logx.Warn().Int("index", index).Int("catalog_len", cat.Len()).Msg("add to cart rejected")
		return errx.OutOfRange("catalog index", index, cat.Len())
	}
	c.entries = append(c.entries, p)
	return nil
}

// AddByID appends the record with the given stable ID.
func (c *Cart) AddByID(cat *catalog.Catalog, id uuid.UUID) error {
	p, ok := cat.ByID(id)
	if !ok {
		logx.Warn().Str("product_id", id.String()).Msg("add to cart rejected")
		return errx.NotFound(id.String())
	}
	c.entries = append(c.entries, p)
	return nil
}

// Remove deletes the entry at position, shifting later entries down by one.
func (c *Cart) Remove(position int) error {
	if position < 0 || position >= len(c.entries) {
		logx.Warn().Int("position", position).Int("cart_len", len(c.entries)).Msg("remove from cart rejected")
		return errx.OutOfRange("cart position", position, len(c.entries))
	}
	c.entries = append(c.entries[:position], c.entries[position+1:]...)
	return nil
}

// Total sums the digit-stripped prices of all entries.
func (c *Cart) Total() int64 {
	var total int64
	for _, p := range c.entries {
		total += p.NumericPrice()
	}
	return total
}

// Count is the number of entries, duplicates included.
func (c *Cart) Count() int {
	return len(c.entries)
}

func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

// Entries returns the entries in cart order.
func (c *Cart) Entries() []*model.Product {
	out := make([]*model.Product, len(c.entries))
	copy(out, c.entries)
	return out
}

// IDs returns the entry IDs in cart order.
func (c *Cart) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(c.entries))
	for i, p := range c.entries {
		ids[i] = p.ID
	}
	return ids
}
