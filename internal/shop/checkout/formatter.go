package checkout

import (
	"fmt"
	"strings"

	errx "github.com/sheetshop/storefront/internal/core/error"
	"github.com/sheetshop/storefront/internal/shop/cart"
	logx "github.com/sheetshop/storefront/pkg/logger"
)

const DefaultGreeting = "Hello, I want to order:"

// Formatter renders a cart as the order message sent to the shop.
type Formatter struct {
	Greeting string
	Currency string
	// IncludeVariant adds "(<size> <color>)" after each product name.
	IncludeVariant bool
}

func NewFormatter(greeting, currency string) *Formatter {
	if greeting == "" {
		greeting = DefaultGreeting
	}
	return &Formatter{Greeting: greeting, Currency: currency, IncludeVariant: true}
}

// Format builds the message. An empty cart is rejected with errx.ErrEmptyCart
// and no message.
func (f *Formatter) Format(c *cart.Cart) (string, error) {
	if c == nil || c.IsEmpty() {
		logx.Warn().Msg("checkout rejected: cart is empty")
		return "", errx.EmptyCart()
	}

	var b strings.Builder
	b.WriteString(f.Greeting)
	b.WriteString("\n\n")
	for _, p := range c.Entries() {
		if f.IncludeVariant {
			fmt.Fprintf(&b, "- %s (%s %s): %s\n", p.Name(), p.Size(), p.Color(), p.Price())
		} else {
			fmt.Fprintf(&b, "- %s: %s\n", p.Name(), p.Price())
		}
	}
	fmt.Fprintf(&b, "\nTotal: %d", c.Total())
	if f.Currency != "" {
		b.WriteString(" " + f.Currency)
	}
	return b.String(), nil
}
