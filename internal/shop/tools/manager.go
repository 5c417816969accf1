package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
	"github.com/sheetshop/storefront/internal/shop/cart"
	"github.com/sheetshop/storefront/internal/shop/checkout"
)

const (
	ToolSearchProduct     = "search_product"
	ToolGetProductDetails = "get_product_details"
	ToolAddToCart         = "add_to_cart"
	ToolCheckout          = "checkout_cart"
)

// Deps is what the shop tools operate on: one shopper session and the
// settings needed to describe products and compose the order link.
type Deps struct {
	Session     *cart.Session
	Checkout    *checkout.Checkout
	FallbackURL string
	Currency    string
}

// GetQueryTools returns the assistant tools bound to deps.
func GetQueryTools(deps Deps) []tool.BaseTool {
	return []tool.BaseTool{
		createSearchProductTool(deps),
		createGetProductDetailsTool(deps),
		createAddToCartTool(deps),
		createCheckoutTool(deps),
	}
}

// GetToolInfos collects the schema of every tool, for binding to a chat model.
func GetToolInfos(ctx context.Context, tools []tool.BaseTool) ([]*schema.ToolInfo, error) {
	infos := make([]*schema.ToolInfo, 0, len(tools))
	for _, t := range tools {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("tool info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// clampInt returns v limited to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
