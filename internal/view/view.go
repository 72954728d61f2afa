// Package view is the terminal frontend over the storefront core. It owns
// rendering, currency formatting and the theme; every user action is
// forwarded to the session and the screen is redrawn from the ViewState
// pushed back. The view never mutates core state directly.
package view

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"storefront/internal/checkout"
	"storefront/internal/model"
	"storefront/internal/session"
)

// Controller is the slice of the session the view drives.
type Controller interface {
	Subscribe(fn func(session.ViewState))
	Search(text string)
	SetCategory(category model.Category) error
	SetSortMode(mode model.SortMode) error
	AddToCart(productID string, quantity int) error
	SetQuantity(productID string, quantity int) error
	RemoveItem(productID string)
	InitiateCheckout() checkout.State
	ConfirmCheckout() (*checkout.Receipt, error)
	CancelCheckout() error
	Acknowledge()
}

// View reads commands line by line and renders the storefront after every
// state change.
type View struct {
	controller Controller
	in         io.Reader
	out        io.Writer
	format     Formatter
	theme      model.Theme
	state      session.ViewState
	logger     zerolog.Logger
}

// New creates a view over the given controller. The theme arrives as plain
// configuration; toggling it is a local transition followed by a redraw.
func New(controller Controller, in io.Reader, out io.Writer, format Formatter, theme model.Theme, logger zerolog.Logger) *View {
	v := &View{
		controller: controller,
		in:         in,
		out:        out,
		format:     format,
		theme:      theme,
		logger:     logger.With().Str("component", "view").Logger(),
	}
	controller.Subscribe(func(state session.ViewState) {
		v.state = state
		v.render()
	})
	return v
}

// Run reads commands until EOF, the quit command, or context cancellation.
// Input is read on a separate goroutine so cancellation is honoured even
// while blocked waiting for a line; commands are still dispatched here, one
// at a time, in arrival order.
func (v *View) Run(ctx context.Context) error {
	v.printHelp()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(v.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case raw, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return err
				default:
					return ctx.Err()
				}
			}
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}
			if line == "quit" || line == "exit" {
				return nil
			}
			v.dispatch(line)
		}
	}
}

func (v *View) dispatch(line string) {
	fields := strings.Fields(line)
	command, args := fields[0], fields[1:]

	var err error
	switch command {
	case "search":
		v.controller.Search(strings.Join(args, " "))
	case "category":
		if len(args) != 1 {
			err = fmt.Errorf("usage: category <name|All>")
			break
		}
		err = v.controller.SetCategory(model.Category(args[0]))
	case "sort":
		if len(args) != 1 {
			err = fmt.Errorf("usage: sort <default|price_asc|price_desc>")
			break
		}
		err = v.controller.SetSortMode(model.SortMode(args[0]))
	case "add":
		err = v.addCommand(args)
	case "qty":
		err = v.qtyCommand(args)
	case "remove":
		if len(args) != 1 {
			err = fmt.Errorf("usage: remove <product-id>")
			break
		}
		v.controller.RemoveItem(args[0])
	case "checkout":
		v.controller.InitiateCheckout()
	case "confirm":
		_, err = v.controller.ConfirmCheckout()
	case "cancel":
		err = v.controller.CancelCheckout()
	case "ok":
		v.controller.Acknowledge()
	case "theme":
		v.theme = v.theme.Toggle()
		v.render()
	case "help":
		v.printHelp()
	default:
		err = fmt.Errorf("unknown command %q (try help)", command)
	}

	if err != nil {
		v.logger.Debug().Str("command", command).Err(err).Msg("command rejected")
		fmt.Fprintf(v.out, "! %s\n", err)
	}
}

func (v *View) addCommand(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: add <product-id> [quantity]")
	}
	quantity := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		quantity = n
	}
	return v.controller.AddToCart(args[0], quantity)
}

func (v *View) qtyCommand(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: qty <product-id> <quantity>")
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid quantity %q", args[1])
	}
	return v.controller.SetQuantity(args[0], n)
}

func (v *View) render() {
	v.printHeading("PRODUCTS")
	for _, p := range v.state.Visible {
		fmt.Fprintf(v.out, "  %-4s %-20s %-9s %-10s stock %d\n",
			p.ID, p.Name, v.format.Price(p.Price), p.Category, p.Stock)
	}
	if len(v.state.Visible) == 0 {
		fmt.Fprintln(v.out, "  (no products match)")
	}

	v.printHeading("CART")
	for _, line := range v.state.Cart.Lines {
		fmt.Fprintf(v.out, "  %-4s %-20s x%-3d %s\n",
			line.Product.ID, line.Product.Name, line.Quantity, v.format.Price(line.Total()))
	}
	totals := v.state.Cart.Totals
	fmt.Fprintf(v.out, "  %d items, total %s\n", totals.ItemCount, v.format.Price(totals.TotalPrice))

	switch v.state.Checkout {
	case checkout.StateConfirmPending:
		fmt.Fprintf(v.out, "Proceed with checkout? Total: %s (confirm/cancel)\n",
			v.format.Price(totals.TotalPrice))
	case checkout.StateEmpty:
		fmt.Fprintln(v.out, "Your cart is empty. (ok)")
	case checkout.StateCompleted:
		if v.state.Receipt != nil {
			fmt.Fprintf(v.out, "Thank you for your purchase! Receipt %s, %d items, %s (ok)\n",
				v.state.Receipt.ID, v.state.Receipt.Totals.ItemCount,
				v.format.Price(v.state.Receipt.Totals.TotalPrice))
		}
	case checkout.StateCancelled:
		fmt.Fprintln(v.out, "Checkout cancelled. (ok)")
	}
}

// printHeading writes a section heading, bold on the dark theme.
func (v *View) printHeading(title string) {
	if v.theme == model.ThemeDark {
		fmt.Fprintf(v.out, "\x1b[1m%s\x1b[0m\n", title)
		return
	}
	fmt.Fprintf(v.out, "%s\n", title)
}

func (v *View) printHelp() {
	fmt.Fprintln(v.out, `commands:
  search <text>                    filter products by name or description
  category <Pizza|Burgers|Salads|Indian|Desserts|All>
  sort <default|price_asc|price_desc>
  add <product-id> [quantity]      add to cart
  qty <product-id> <quantity>      set cart line quantity
  remove <product-id>              remove cart line
  checkout / confirm / cancel / ok
  theme                            toggle dark and light
  quit`)
}
