package checkout

import (
	"net/url"
	"strings"

	"github.com/sheetshop/storefront/internal/shop/cart"
	logx "github.com/sheetshop/storefront/pkg/logger"
)

const DefaultLinkBase = "https://wa.me/"

// Handoff composes the chat deep link that carries an order message.
type Handoff struct {
	BaseURL   string
	Recipient string
}

// Link returns <base><recipient>?text=<message>, with the message
// percent-encoded and spaces as %20.
func (h Handoff) Link(message string) string {
	base := h.BaseURL
	if base == "" {
		base = DefaultLinkBase
	}
	return base + url.PathEscape(h.Recipient) + "?text=" + encodeComponent(message)
}

func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Checkout formats the cart and wraps the message into a deep link. Nothing
// is returned for an empty cart.
type Checkout struct {
	Formatter *Formatter
	Handoff   Handoff
}

// Result is a ready-to-open order.
type Result struct {
	Message string
	Link    string
	Total   int64
	Items   int
}

func (c *Checkout) Prepare(crt *cart.Cart) (*Result, error) {
	msg, err := c.Formatter.Format(crt)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Message: msg,
		Link:    c.Handoff.Link(msg),
		Total:   crt.Total(),
		Items:   crt.Count(),
	}
	logx.Info().Int("items", res.Items).Int64("total", res.Total).Msg("checkout prepared")
	return res, nil
}
