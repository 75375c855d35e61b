// Package generate builds a synthetic, referentially consistent e-commerce
// dataset from a single seeded random stream.
//
// Stages run in a fixed order on one stream: customers, categories,
// products, orders, order lines, then the order-total back-fill. Within each
// stage every record consumes draws in the order documented on its builder,
// so the same Options always reproduce the same Dataset.
package generate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JonMunkholm/shopseed/internal/config"
	"github.com/JonMunkholm/shopseed/internal/dataset"
	"github.com/JonMunkholm/shopseed/internal/random"
)

// DefaultWindow is how far before Now customer creation dates may fall.
const DefaultWindow = 3 * 365 * 24 * time.Hour

// Options configures a generation run.
type Options struct {
	Seed       uint32
	Customers  int
	Categories int
	Products   int
	Orders     int
	MinItems   int // per order, inclusive
	MaxItems   int // per order, inclusive

	// Now is the upper bound for every generated timestamp. It is an input
	// rather than a wall-clock read so runs are reproducible.
	Now time.Time

	// Window is the look-back from Now for customer creation dates.
	Window time.Duration
}

// DefaultOptions returns the reference configuration for the given clock.
func DefaultOptions(now time.Time) Options {
	return Options{
		Seed:       42,
		Customers:  1000,
		Categories: 1000,
		Products:   1000,
		Orders:     1000,
		MinItems:   1,
		MaxItems:   6,
		Now:        now,
		Window:     DefaultWindow,
	}
}

// FromConfig builds Options from the GEN_* settings. GEN_NOW wins over the
// now captured by the caller.
func FromConfig(g config.GenerateConfig, now time.Time) Options {
	if !g.Now.IsZero() {
		now = g.Now
	}
	return Options{
		Seed:       g.Seed,
		Customers:  g.Customers,
		Categories: g.Categories,
		Products:   g.Products,
		Orders:     g.Orders,
		MinItems:   g.MinItems,
		MaxItems:   g.MaxItems,
		Now:        now,
		Window:     g.HistoryWindow,
	}
}

// Validate checks that the options describe a satisfiable run.
// Returns an error describing all failures.
func (o Options) Validate() error {
	var errs []string

	if o.Customers < 0 || o.Categories < 0 || o.Products < 0 || o.Orders < 0 {
		errs = append(errs, "entity counts must be non-negative")
	}
	if o.MinItems < 1 {
		errs = append(errs, fmt.Sprintf("min items per order (%d) must be at least 1", o.MinItems))
	}
	if o.MaxItems < o.MinItems {
		errs = append(errs, fmt.Sprintf("max items per order (%d) must be >= min items (%d)", o.MaxItems, o.MinItems))
	}
	if o.Now.IsZero() {
		errs = append(errs, "now must be set")
	}
	if o.Window <= 0 {
		errs = append(errs, "history window must be positive")
	}
	if o.Products > 0 && o.Categories == 0 {
		errs = append(errs, "products require at least one category")
	}
	if o.Orders > 0 && o.Customers == 0 {
		errs = append(errs, "orders require at least one customer")
	}

	if len(errs) > 0 {
		return errors.New("invalid generate options: " + strings.Join(errs, "; "))
	}
	return nil
}

// Run generates a complete dataset.
func Run(opts Options) (*dataset.Dataset, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	now := opts.Now.UTC().Truncate(time.Millisecond)
	start := now.Add(-opts.Window)
	src := random.New(opts.Seed)

	customers := generateCustomers(src, opts.Customers, start, now)
	categories := generateCategories(src, opts.Categories)
	products := generateProducts(src, opts.Products, categories)
	orders := generateOrders(src, opts.Orders, customers, now)
	lines := generateOrderLines(src, orders, products, opts.MinItems, opts.MaxItems)

	return &dataset.Dataset{
		Customers:  customers,
		Categories: categories,
		Products:   products,
		Orders:     ApplyTotals(orders, Totals(lines)),
		OrderLines: lines,
	}, nil
}

func customerID(i int) string  { return fmt.Sprintf("CUST%04d", i) }
func categoryID(i int) string  { return fmt.Sprintf("CAT%04d", i) }
func productID(i int) string   { return fmt.Sprintf("PROD%05d", i) }
func orderID(i int) string     { return fmt.Sprintf("ORD%05d", i) }
func orderLineID(i int) string { return fmt.Sprintf("ORDDET%06d", i) }
