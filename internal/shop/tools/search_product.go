package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
	"github.com/sheetshop/storefront/internal/shop/catalog"
	"github.com/sheetshop/storefront/internal/shop/model"
)

// ===================================
// Search Product Tool
// ===================================

const (
	defaultMaxResults = 10
	maxMaxResults     = 20
)

type SearchProductInput struct {
	Query      string `json:"query"`
	Category   string `json:"category,omitempty"`
	MaxResults int    `json:"max_results,omitempty"`
}

type ProductSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Color      string `json:"color,omitempty"`
	Size       string `json:"size,omitempty"`
	Price      string `json:"price"`
	PriceValue int64  `json:"price_value"`
	Image      string `json:"image"`
}

type SearchProductOutput struct {
	Products []ProductSummary `json:"products"`
	Total    int              `json:"total"`
}

func summarize(p *model.Product, fallback string) ProductSummary {
	cat := p.Category()
	if cat == "" {
		cat = catalog.UncategorizedLabel
	}
	return ProductSummary{
		ID:         p.ID.String(),
		Name:       p.Name(),
		Category:   cat,
		Color:      p.Color(),
		Size:       p.Size(),
		Price:      p.Price(),
		PriceValue: p.NumericPrice(),
		Image:      catalog.PrimaryImage(p, fallback),
	}
}

func createSearchProductTool(deps Deps) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolSearchProduct,
			Desc: "Search the shop catalog. Matches the query against product name, category, color and size, case-insensitively. Returns product IDs, names, prices and images. Use this tool whenever the customer mentions any product.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query": {
					Type:     schema.String,
					Desc:     "Search keywords, e.g. a product name, a color, a size or a category.",
					Required: true,
				},
				"category": {
					Type: schema.String,
					Desc: "Optional exact category filter, as shown in the catalog grouping.",
				},
				"max_results": {
					Type: schema.Integer,
					Desc: "Maximum number of products to return (default: 10, max: 20)",
				},
			}),
		},
		func(ctx context.Context, in *SearchProductInput) (*SearchProductOutput, error) {
			query := strings.TrimSpace(in.Query)
			if query == "" {
				return nil, fmt.Errorf("query is required")
			}

			limit := defaultMaxResults
			if in.MaxResults != 0 {
				limit = clampInt(in.MaxResults, 1, maxMaxResults)
			}

			cat := deps.Session.Catalog()
			matches := catalog.Search(cat.Products(), query, catalog.SearchExtended)

			out := &SearchProductOutput{Products: []ProductSummary{}}
			for _, p := range matches {
				if in.Category != "" && !strings.EqualFold(categoryOf(p), strings.TrimSpace(in.Category)) {
					continue
				}
				out.Products = append(out.Products, summarize(p, deps.FallbackURL))
				if len(out.Products) == limit {
					break
				}
			}
			out.Total = len(out.Products)
			return out, nil
		},
	)
}

func categoryOf(p *model.Product) string {
	if c := p.Category(); c != "" {
		return c
	}
	return catalog.UncategorizedLabel
}
