package tools

import (
	"context"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
)

type AddToCartInput struct {
	ProductID string `json:"product_id"`
}

type CartStatus struct {
	Items    int    `json:"items"`
	Total    int64  `json:"total"`
	Currency string `json:"currency"`
}

type CheckoutInput struct{}

type CheckoutOutput struct {
	CartStatus
	Message string `json:"message"`
	Link    string `json:"link"`
}

func createAddToCartTool(deps Deps) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolAddToCart,
			Desc: "Add one unit of a product to the customer's cart. Adding the same product again adds another entry.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_id": {
					Type:     schema.String,
					Desc:     "Product ID obtained from search_product results.",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *AddToCartInput) (*CartStatus, error) {
			p, err := lookup(deps, in.ProductID)
			if err != nil {
				return nil, err
			}
			if err := deps.Session.AddByID(ctx, p.ID); err != nil {
				return nil, err
			}
			c := deps.Session.Cart()
			return &CartStatus{Items: c.Count(), Total: c.Total(), Currency: deps.Currency}, nil
		},
	)
}

func createCheckoutTool(deps Deps) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name:        ToolCheckout,
			Desc:        "Compose the order message and the chat link that sends it to the shop. Fails when the cart is empty.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
		},
		func(ctx context.Context, _ *CheckoutInput) (*CheckoutOutput, error) {
			res, err := deps.Checkout.Prepare(deps.Session.Cart())
			if err != nil {
				return nil, err
			}
			return &CheckoutOutput{
				CartStatus: CartStatus{Items: res.Items, Total: res.Total, Currency: deps.Currency},
				Message:    res.Message,
				Link:       res.Link,
			}, nil
		},
	)
}
