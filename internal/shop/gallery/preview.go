package gallery

import (
	"github.com/sheetshop/storefront/internal/shop/catalog"
	"github.com/sheetshop/storefront/internal/shop/model"
)

// Preview is the enlarged view of one product with step-through navigation.
type Preview struct {
	Product *model.Product
	views   []model.View
	index   int
}

func NewPreview(p *model.Product, fallback string) *Preview {
	return &Preview{Product: p, views: catalog.ResolveViews(p, fallback)}
}

func (p *Preview) Views() []model.View {
	return append([]model.View(nil), p.views...)
}

func (p *Preview) Current() model.View {
	return p.views[p.index]
}

// HasNavigation reports whether prev/next controls make sense.
func (p *Preview) HasNavigation() bool {
	return len(p.views) > 1
}

// Step moves by direction (negative goes back) and wraps at both ends.
func (p *Preview) Step(direction int) model.View {
	if !p.HasNavigation() {
		return p.Current()
	}
	n := len(p.views)
	p.index = ((p.index+direction)%n + n) % n
	return p.Current()
}
