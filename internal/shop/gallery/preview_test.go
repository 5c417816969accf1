package gallery

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sheetshop/storefront/internal/shop/model"
	"github.com/stretchr/testify/assert"
)

func TestPreview_StepWrapsBothWays(t *testing.T) {
	p := model.NewProduct(uuid.New(), 0, map[string]string{
		"name":       "Bag",
		"frontview":  "http://x/front.png",
		"topview":    "http://x/top.png",
		"bottomview": "http://x/bottom.png",
	})
	pv := NewPreview(p, "http://x/logo.png")

	assert.True(t, pv.HasNavigation())
	assert.Len(t, pv.Views(), 3)
	assert.Equal(t, model.LabelFront, pv.Current().Label)
	assert.Equal(t, model.LabelBottom, pv.Step(-1).Label)
	assert.Equal(t, model.LabelFront, pv.Step(1).Label)
	assert.Equal(t, model.LabelTop, pv.Step(1).Label)
	assert.Equal(t, model.LabelBottom, pv.Step(1).Label)
	assert.Equal(t, model.LabelFront, pv.Step(1).Label)
}

func TestPreview_FallbackHasNoNavigation(t *testing.T) {
	p := model.NewProduct(uuid.New(), 0, map[string]string{"name": "Bag"})
	pv := NewPreview(p, "http://x/logo.png")

	assert.False(t, pv.HasNavigation())
	assert.Equal(t, model.View{Label: model.LabelFallback, URL: "http://x/logo.png"}, pv.Current())
	assert.Equal(t, pv.Current(), pv.Step(1))
}
