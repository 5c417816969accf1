package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cloudwego/eino/components/tool"
	"github.com/sheetshop/storefront/internal/shop/cart"
	"github.com/sheetshop/storefront/internal/shop/catalog"
	"github.com/sheetshop/storefront/internal/shop/checkout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toolSheet = `name,price,category,color,size,image,topview
Shoe,5000,Footwear,Black,42,http://x/shoe.png,http://x/shoe-top.png
Bag,10000,Bags,Brown,,http://x/bag.png,
Sandal,3000,Footwear,Red,40,,
Scarf,1500,,Blue,,,
`

func newDeps(t *testing.T) Deps {
	t.Helper()
	cat := catalog.New(catalog.ParseProducts(toolSheet))
	require.Equal(t, 4, cat.Len())
	return Deps{
		Session:     cart.NewSession("t1", cat, nil),
		Checkout:    &checkout.Checkout{Formatter: checkout.NewFormatter("", "RWF"), Handoff: checkout.Handoff{Recipient: "123"}},
		FallbackURL: "http://x/logo.png",
		Currency:    "RWF",
	}
}

func findTool(t *testing.T, tools []tool.BaseTool, name string) tool.InvokableTool {
	t.Helper()
	for _, tl := range tools {
		info, err := tl.Info(context.Background())
		require.NoError(t, err)
		if info.Name == name {
			inv, ok := tl.(tool.InvokableTool)
			require.True(t, ok)
			return inv
		}
	}
	t.Fatalf("tool %s not registered", name)
	return nil
}

func run[T any](t *testing.T, tl tool.InvokableTool, args string) T {
	t.Helper()
	out, err := tl.InvokableRun(context.Background(), args)
	require.NoError(t, err)
	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	return v
}

func TestGetToolInfos(t *testing.T) {
	infos, err := GetToolInfos(context.Background(), GetQueryTools(newDeps(t)))
	require.NoError(t, err)

	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	assert.Equal(t, []string{ToolSearchProduct, ToolGetProductDetails, ToolAddToCart, ToolCheckout}, names)
}

func TestSearchProductTool(t *testing.T) {
	tools := GetQueryTools(newDeps(t))
	search := findTool(t, tools, ToolSearchProduct)

	out := run[SearchProductOutput](t, search, `{"query":"footwear"}`)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, "Shoe", out.Products[0].Name)
	assert.Equal(t, int64(5000), out.Products[0].PriceValue)
	assert.Equal(t, "http://x/shoe.png", out.Products[0].Image)
	assert.Equal(t, "http://x/logo.png", out.Products[1].Image)

	out = run[SearchProductOutput](t, search, `{"query":"s","category":"uncategorized"}`)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Scarf", out.Products[0].Name)

	out = run[SearchProductOutput](t, search, `{"query":"a","max_results":1}`)
	assert.Equal(t, 1, out.Total)

	out = run[SearchProductOutput](t, search, `{"query":"nothing-like-this"}`)
	assert.Equal(t, 0, out.Total)
	assert.NotNil(t, out.Products)

	_, err := search.InvokableRun(context.Background(), `{"query":"  "}`)
	assert.Error(t, err)
}

func TestGetProductDetailsTool(t *testing.T) {
	deps := newDeps(t)
	detail := findTool(t, GetQueryTools(deps), ToolGetProductDetails)
	shoe, _ := deps.Session.Catalog().At(0)

	out := run[GetProductDetailsOutput](t, detail, `{"product_id":"`+shoe.ID.String()+`"}`)
	assert.Equal(t, "Shoe", out.Name)
	assert.Equal(t, "42", out.Specifications["size"])
	require.Len(t, out.Views, 2)
	assert.Equal(t, "http://x/shoe-top.png", out.Views[1].URL)

	_, err := detail.InvokableRun(context.Background(), `{"product_id":"prod-001"}`)
	assert.Error(t, err)
	_, err = detail.InvokableRun(context.Background(), `{}`)
	assert.Error(t, err)
}

func TestAddToCartAndCheckoutTools(t *testing.T) {
	deps := newDeps(t)
	tools := GetQueryTools(deps)
	add := findTool(t, tools, ToolAddToCart)
	co := findTool(t, tools, ToolCheckout)

	_, err := co.InvokableRun(context.Background(), `{}`)
	assert.Error(t, err, "empty cart is rejected")

	bag, _ := deps.Session.Catalog().At(1)
	status := run[CartStatus](t, add, `{"product_id":"`+bag.ID.String()+`"}`)
	assert.Equal(t, 1, status.Items)
	status = run[CartStatus](t, add, `{"product_id":"`+bag.ID.String()+`"}`)
	assert.Equal(t, 2, status.Items)
	assert.Equal(t, int64(20000), status.Total)
	assert.Equal(t, "RWF", status.Currency)

	out := run[CheckoutOutput](t, co, `{}`)
	assert.Equal(t, 2, out.Items)
	assert.Contains(t, out.Message, "- Bag ( Brown): 10000\n")
	assert.Contains(t, out.Message, "Total: 20000 RWF")
	assert.Contains(t, out.Link, "https://wa.me/123?text=")
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 1, clampInt(-3, 1, 20))
	assert.Equal(t, 20, clampInt(99, 1, 20))
	assert.Equal(t, 7, clampInt(7, 1, 20))
}
