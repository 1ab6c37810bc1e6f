// Package cli implements the interactive order loop. It is deliberately
// thin: it parses codes, drives a cart, and renders the returned breakdown.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"cartcalc/internal/cart"
	"cartcalc/internal/money"
)

const divider = "----------------------------------------"

// Runner reads order lines from an input stream and writes priced summaries
// to an output stream. Streams are injected so sessions can be scripted in
// tests.
type Runner struct {
	in      io.Reader
	out     io.Writer
	log     zerolog.Logger
	newCart func() *cart.Cart
	symbol  string
}

// RunnerConfig groups Runner dependencies.
type RunnerConfig struct {
	In             io.Reader
	Out            io.Writer
	Logger         zerolog.Logger
	NewCart        func() *cart.Cart
	CurrencySymbol string
}

// NewRunner validates the configuration and builds a Runner.
func NewRunner(cfg RunnerConfig) (*Runner, error) {
	if cfg.In == nil || cfg.Out == nil {
		return nil, errors.New("runner requires input and output streams")
	}
	if cfg.NewCart == nil {
		return nil, errors.New("runner requires a cart factory")
	}
	symbol := cfg.CurrencySymbol
	if symbol == "" {
		symbol = "$"
	}
	return &Runner{
		in:      cfg.In,
		out:     cfg.Out,
		log:     cfg.Logger,
		newCart: cfg.NewCart,
		symbol:  symbol,
	}, nil
}

// Run processes order lines until "exit" or end of input. Each line is
// priced against a fresh cart.
func (r *Runner) Run() error {
	r.println("Welcome to Cart Calculator!")
	r.println("Enter product codes separated by spaces (e.g., 'B01 B01 G01')")
	r.println("Type 'exit' to quit")
	r.println("")

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "exit") {
			break
		}
		if line == "" {
			continue
		}
		r.processOrder(line)
		r.println("")
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	r.println("Thank you for using Cart Calculator!")
	return nil
}

// processOrder adds each code in turn. Every add commits independently: the
// first failure stops the rest of the line, reports the offending code, and
// skips the summary; prior adds stay in the cart.
func (r *Runner) processOrder(line string) {
	c := r.newCart()
	for _, code := range strings.Fields(line) {
		if err := c.Add(code); err != nil {
			r.log.Debug().Err(err).Str("code", code).Msg("add rejected")
			r.println("Error: " + err.Error())
			return
		}
	}
	r.renderSummary(c)
}

func (r *Runner) renderSummary(c *cart.Cart) {
	s := c.Summary()
	r.println("")
	r.println("Order Summary:")
	r.println(divider)
	for _, item := range c.Items() {
		r.println(fmt.Sprintf("%s (%s) x%d: %s", item.Product.Name, item.Product.Code, item.Qty, r.amount(item.Subtotal())))
	}
	r.println(divider)
	r.println("Subtotal: " + r.amount(s.Subtotal))
	if s.Discount.IsPositive() {
		r.println("Discount: -" + r.amount(s.Discount))
	}
	r.println("Delivery: " + r.amount(s.Delivery))
	r.println(divider)
	r.println("Grand Total: " + r.amount(s.Total))
}

func (r *Runner) amount(d decimal.Decimal) string {
	return r.symbol + money.FormatAmount(d)
}

func (r *Runner) println(msg string) {
	fmt.Fprintln(r.out, msg)
}
