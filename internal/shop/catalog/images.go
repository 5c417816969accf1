package catalog

import "github.com/sheetshop/storefront/internal/shop/model"

// minViewURLLen filters out placeholder strings in the optional view columns.
const minViewURLLen = 6

// PrimaryImage is frontview, then image, then fallback.
func PrimaryImage(p *model.Product, fallback string) string {
	if u := p.Get(model.KeyFrontView); u != "" {
		return u
	}
	if u := p.Get(model.KeyImage); u != "" {
		return u
	}
	return fallback
}

// HasOwnImage reports whether the record names a front or legacy image.
func HasOwnImage(p *model.Product) bool {
	return p.Get(model.KeyFrontView) != "" || p.Get(model.KeyImage) != ""
}

// ResolveViews returns the primary image followed by any top, bottom and back
// views that look like real URLs.
func ResolveViews(p *model.Product, fallback string) []model.View {
	views := make([]model.View, 0, 4)
	if HasOwnImage(p) {
		views = append(views, model.View{Label: model.LabelFront, URL: PrimaryImage(p, fallback)})
	} else {
		views = append(views, model.View{Label: model.LabelFallback, URL: fallback})
	}

	extras := []struct{ key, label string }{
		{model.KeyTopView, model.LabelTop},
		{model.KeyBottomView, model.LabelBottom},
		{model.KeyBackView, model.LabelBack},
	}
	for _, e := range extras {
		if u := p.Get(e.key); len(u) >= minViewURLLen {
			views = append(views, model.View{Label: e.label, URL: u})
		}
	}
	return views
}
