package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sheetshop/storefront/internal/shop/model"
	"github.com/stretchr/testify/assert"
)

const fallbackURL = "https://cdn.example/logo.png"

func product(fields map[string]string) *model.Product {
	return model.NewProduct(uuid.New(), 0, fields)
}

func TestPrimaryImage_Priority(t *testing.T) {
	p := product(map[string]string{"name": "a", "frontview": "", "image": "http://x/y.png"})
	assert.Equal(t, "http://x/y.png", PrimaryImage(p, fallbackURL))

	p = product(map[string]string{"name": "a", "frontview": "", "image": ""})
	assert.Equal(t, fallbackURL, PrimaryImage(p, fallbackURL))

	p = product(map[string]string{"name": "a", "frontview": "http://x/front.png", "image": "http://x/y.png"})
	assert.Equal(t, "http://x/front.png", PrimaryImage(p, fallbackURL))

	p = product(map[string]string{"name": "a"})
	assert.Equal(t, fallbackURL, PrimaryImage(p, fallbackURL))
}

func TestResolveViews(t *testing.T) {
	p := product(map[string]string{
		"name":       "Bag",
		"frontview":  "http://x/front.png",
		"topview":    "http://x/top.png",
		"bottomview": "n/a",
		"backview":   "abcdef",
	})

	views := ResolveViews(p, fallbackURL)
	assert.Equal(t, []model.View{
		{Label: model.LabelFront, URL: "http://x/front.png"},
		{Label: model.LabelTop, URL: "http://x/top.png"},
		{Label: model.LabelBack, URL: "abcdef"},
	}, views)
}

func TestResolveViews_FallbackOnly(t *testing.T) {
	p := product(map[string]string{"name": "Bag", "topview": "-"})

	views := ResolveViews(p, fallbackURL)
	assert.Equal(t, []model.View{{Label: model.LabelFallback, URL: fallbackURL}}, views)
	assert.False(t, HasOwnImage(p))
}
