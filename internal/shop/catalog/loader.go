package catalog

import (
	"context"

	errx "github.com/sheetshop/storefront/internal/core/error"
	logx "github.com/sheetshop/storefront/pkg/logger"
)

// Load fetches and parses the sheet into a catalog. A fetch failure returns
// an errx load error and no catalog; zero products returns errx.ErrNoProducts.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	raw, err := src.Fetch(ctx)
	if err != nil {
		logx.Error().Err(err).Msg("catalog load failed")
		return nil, errx.WrapFetch(err)
	}

	res := Parse(raw)
	if res.SkippedRows > 0 || res.DroppedRows > 0 {
		logx.Warn().
			Int("skipped_short_rows", res.SkippedRows).
			Int("dropped_nameless_rows", res.DroppedRows).
			Msg("catalog rows ignored")
	}
	if len(res.Products) == 0 {
		logx.Warn().Msg("catalog has no products")
		return nil, errx.EmptyCatalog()
	}

	logx.Info().Int("products", len(res.Products)).Msg("catalog loaded")
	return New(res.Products), nil
}
