package model

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Recognized column keys. Any other header column is still carried on the
// record, it just has no dedicated accessor.
const (
	KeyName       = "name"
	KeyPrice      = "price"
	KeyCategory   = "category"
	KeyColor      = "color"
	KeySize       = "size"
	KeyImage      = "image"
	KeyFrontView  = "frontview"
	KeyTopView    = "topview"
	KeyBottomView = "bottomview"
	KeyBackView   = "backview"
)

// Product is one parsed catalog row. Fields are keyed by the lower-cased
// header name and are immutable once the record is built.
type Product struct {
	// ID is derived from the row content and its row number, so it is stable
	// across re-parses of identical text and distinct for duplicate rows.
	ID uuid.UUID
	// Position is the global index in the catalog the record was parsed into.
	Position int

	fields map[string]string
}

// NewProduct copies fields into a new record.
func NewProduct(id uuid.UUID, position int, fields map[string]string) *Product {
	cp := make(map[string]string, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return &Product{ID: id, Position: position, fields: cp}
}

// Get returns the value for key, or "" when the column is absent.
func (p *Product) Get(key string) string {
	if p == nil {
		return ""
	}
	return p.fields[key]
}

// Has reports whether the record carries the column at all (even empty).
func (p *Product) Has(key string) bool {
	if p == nil {
		return false
	}
	_, ok := p.fields[key]
	return ok
}

// Keys returns the column keys in sorted order.
func (p *Product) Keys() []string {
	keys := make([]string, 0, len(p.fields))
	for k := range p.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Fields returns a copy of the record's columns.
func (p *Product) Fields() map[string]string {
	cp := make(map[string]string, len(p.fields))
	for k, v := range p.fields {
		cp[k] = v
	}
	return cp
}

func (p *Product) Name() string     { return p.Get(KeyName) }
func (p *Product) Price() string    { return p.Get(KeyPrice) }
func (p *Product) Category() string { return p.Get(KeyCategory) }
func (p *Product) Color() string    { return p.Get(KeyColor) }
func (p *Product) Size() string     { return p.Get(KeySize) }

// NumericPrice is ParsePrice applied to the price column.
func (p *Product) NumericPrice() int64 {
	return ParsePrice(p.Price())
}

// ParsePrice keeps only the ASCII digits of s and parses them as an integer,
// so "12,500 RWF" is 12500. Strings without digits, or too large for int64,
// count as zero.
func ParsePrice(s string) int64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
