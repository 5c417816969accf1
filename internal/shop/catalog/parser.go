package catalog

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sheetshop/storefront/internal/shop/model"
	logx "github.com/sheetshop/storefront/pkg/logger"
)

// productNamespace scopes the name-based UUIDs given to parsed rows.
var productNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("storefront/catalog/product"))

// ParseResult is the outcome of parsing one sheet export.
type ParseResult struct {
	Products []*model.Product
	// Header is the normalized header row, after the image re-key.
	Header []string
	// SkippedRows counts rows with fewer fields than the header.
	SkippedRows int
	// DroppedRows counts rows that had enough fields but no name.
	DroppedRows int
}

// Parse turns the raw export into product records. It splits on newlines and
// commas only: quoted fields with embedded commas are not supported, and
// literal double quotes are simply removed. The first row is the header.
func Parse(raw string) ParseResult {
	rows := strings.Split(raw, "\n")
	header := normalizeHeader(strings.Split(rows[0], ","))

	res := ParseResult{Header: header}
	for i := 1; i < len(rows); i++ {
		fields := strings.Split(rows[i], ",")
		if len(fields) < len(header) {
			res.SkippedRows++
			continue
		}

		rec := make(map[string]string, len(header))
		for idx, key := range header {
			rec[key] = cleanField(fields[idx])
		}
		if strings.TrimSpace(rec[model.KeyName]) == "" {
			res.DroppedRows++
			continue
		}

		id := uuid.NewSHA1(productNamespace, []byte(strconv.Itoa(i)+"\x00"+rows[i]))
		res.Products = append(res.Products, model.NewProduct(id, len(res.Products), rec))
	}

	logx.Debug().
		Int("products", len(res.Products)).
		Int("skipped_short_rows", res.SkippedRows).
		Int("dropped_nameless_rows", res.DroppedRows).
		Msg("catalog parsed")
	return res
}

// ParseProducts is Parse without the bookkeeping.
func ParseProducts(raw string) []*model.Product {
	return Parse(raw).Products
}

// normalizeHeader lower-cases and trims each cell. A legacy "image" column is
// re-keyed to "frontview" unless the sheet already has a frontview column.
func normalizeHeader(cells []string) []string {
	header := make([]string, len(cells))
	hasFront := false
	for i, c := range cells {
		header[i] = strings.ToLower(strings.TrimSpace(c))
		if header[i] == model.KeyFrontView {
			hasFront = true
		}
	}
	if !hasFront {
		for i, h := range header {
			if h == model.KeyImage {
				header[i] = model.KeyFrontView
			}
		}
	}
	return header
}

func cleanField(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}
