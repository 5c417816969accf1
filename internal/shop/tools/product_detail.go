package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"
	errx "github.com/sheetshop/storefront/internal/core/error"
	"github.com/sheetshop/storefront/internal/shop/catalog"
	"github.com/sheetshop/storefront/internal/shop/model"
)

type GetProductDetailsInput struct {
	ProductID string `json:"product_id"`
}

type GetProductDetailsOutput struct {
	ProductSummary
	Specifications map[string]string `json:"specifications"`
	Views          []model.View      `json:"views"`
}

func createGetProductDetailsTool(deps Deps) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolGetProductDetails,
			Desc: "Get every sheet column of one product plus its labelled image views. Use this tool when the customer needs detailed product information or comparisons.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_id": {
					Type:     schema.String,
					Desc:     "Product ID obtained from search_product results. Must be the exact ID.",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *GetProductDetailsInput) (*GetProductDetailsOutput, error) {
			p, err := lookup(deps, in.ProductID)
			if err != nil {
				return nil, err
			}
			return &GetProductDetailsOutput{
				ProductSummary: summarize(p, deps.FallbackURL),
				Specifications: p.Fields(),
				Views:          catalog.ResolveViews(p, deps.FallbackURL),
			}, nil
		},
	)
}

func lookup(deps Deps, rawID string) (*model.Product, error) {
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return nil, fmt.Errorf("product_id is required")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, errx.NotFound(rawID)
	}
	p, ok := deps.Session.Catalog().ByID(id)
	if !ok {
		return nil, errx.NotFound(rawID)
	}
	return p, nil
}
