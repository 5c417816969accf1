package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shopSheet = "Name,Price,Category\nShoe,5000,Footwear\nBag,10000,Bags\n"

func TestParse_BasicScenario(t *testing.T) {
	res := Parse(shopSheet)

	require.Len(t, res.Products, 2)
	assert.Equal(t, []string{"name", "price", "category"}, res.Header)
	assert.Equal(t, "Shoe", res.Products[0].Name())
	assert.Equal(t, "5000", res.Products[0].Price())
	assert.Equal(t, "Footwear", res.Products[0].Category())
	assert.Equal(t, 0, res.Products[0].Position)
	assert.Equal(t, 1, res.Products[1].Position)
	// the trailing empty line is short
	assert.Equal(t, 1, res.SkippedRows)
}

func TestParse_ShortRowDropped(t *testing.T) {
	res := Parse("Name,Price,Category\nShoe,5000\nBag,10000,Bags")

	require.Len(t, res.Products, 1)
	assert.Equal(t, "Bag", res.Products[0].Name())
	assert.Equal(t, 1, res.SkippedRows)
}

func TestParse_EveryRecordHasExactlyHeaderKeys(t *testing.T) {
	raw := " NAME , Price,COLOR,Size\nShoe,5000,Red,42,extra,cols\n,100,Blue,M\nHat,,,\n"
	res := Parse(raw)

	want := []string{"color", "name", "price", "size"}
	require.Len(t, res.Products, 2)
	for _, p := range res.Products {
		assert.Equal(t, want, p.Keys())
		assert.NotEmpty(t, p.Name())
	}
	assert.Equal(t, 1, res.DroppedRows)
	assert.Equal(t, "", res.Products[1].Price())
}

func TestParse_StripsQuotesAndWhitespace(t *testing.T) {
	res := Parse("name,price\n\"  Scarf \", \"2,500\"\r\n")

	require.Len(t, res.Products, 1)
	p := res.Products[0]
	assert.Equal(t, "Scarf", p.Name())
	// no quoted-comma support: the price splits at the comma
	assert.Equal(t, "2", p.Price())
}

func TestParse_CRLFLineEndings(t *testing.T) {
	res := Parse("Name,Price\r\nShoe,5000\r\nBag,10000\r\n")

	require.Len(t, res.Products, 2)
	assert.Equal(t, "10000", res.Products[1].Price())
	assert.Equal(t, []string{"name", "price"}, res.Header)
}

func TestParse_ImageRekeyedToFrontView(t *testing.T) {
	res := Parse("name,image\nShoe,http://x/shoe.png\n")

	require.Len(t, res.Products, 1)
	p := res.Products[0]
	assert.Equal(t, "http://x/shoe.png", p.Get("frontview"))
	assert.False(t, p.Has("image"))
	assert.Equal(t, []string{"name", "frontview"}, res.Header)
}

func TestParse_ImageKeptWhenFrontViewPresent(t *testing.T) {
	res := Parse("name,frontview,image\nShoe,,http://x/y.png\n")

	require.Len(t, res.Products, 1)
	p := res.Products[0]
	assert.Equal(t, "", p.Get("frontview"))
	assert.Equal(t, "http://x/y.png", p.Get("image"))
}

func TestParse_Idempotent(t *testing.T) {
	raw := "name,price,category\nShoe,5000,Footwear\nShoe,5000,Footwear\nBag,10000,\n"
	a := Parse(raw).Products
	b := Parse(raw).Products

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
		assert.Equal(t, a[i].Position, b[i].Position)
		assert.Equal(t, a[i].Fields(), b[i].Fields())
	}
	// identical rows still get distinct identities
	assert.NotEqual(t, a[0].ID, a[1].ID)
}

func TestParse_EmptyInput(t *testing.T) {
	res := Parse("")
	assert.Empty(t, res.Products)

	res = Parse("name\n\n\n")
	assert.Empty(t, res.Products)
	assert.Equal(t, 3, res.DroppedRows)
}

func TestParseProducts_NoNameColumn(t *testing.T) {
	products := ParseProducts("title,price\nShoe,5000\n")
	assert.Empty(t, products)
}

func TestParse_HeaderKeysSorted(t *testing.T) {
	res := Parse("Size,Name\nM,Shirt\n")
	require.Len(t, res.Products, 1)
	keys := res.Products[0].Keys()
	assert.True(t, sort.StringsAreSorted(keys))
}
