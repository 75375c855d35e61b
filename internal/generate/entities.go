package generate

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/JonMunkholm/shopseed/internal/dataset"
	"github.com/JonMunkholm/shopseed/internal/random"
	"github.com/shopspring/decimal"
)

// generateCustomers builds n customers created within [start, now].
//
// Draws per customer: first name, last name, email domain, created-at,
// phone exchange, phone line, city, country.
func generateCustomers(src *random.Source, n int, start, now time.Time) []dataset.Customer {
	customers := make([]dataset.Customer, 0, n)
	seen := make(map[string]struct{}, n)

	for i := 1; i <= n; i++ {
		first := random.Pick(src, firstNames)
		last := random.Pick(src, lastNames)
		domain := random.Pick(src, emailDomains)
		createdAt := src.Timestamp(start, now)
		phone := fmt.Sprintf("+1-555-%03d-%04d", src.Int(100, 999), src.Int(1000, 9999))
		city := random.Pick(src, cities)
		country := random.Pick(src, countries)

		customers = append(customers, dataset.Customer{
			CustomerID: customerID(i),
			FirstName:  first,
			LastName:   last,
			Email:      uniqueEmail(seen, strings.ToLower(first+"."+last), domain),
			Phone:      phone,
			City:       city,
			Country:    country,
			CreatedAt:  createdAt,
		})
	}
	return customers
}

// uniqueEmail returns local@domain, appending the smallest counter that
// makes the address unused, and records the result in seen.
func uniqueEmail(seen map[string]struct{}, local, domain string) string {
	email := local + "@" + domain
	for n := 1; ; n++ {
		if _, taken := seen[email]; !taken {
			break
		}
		email = fmt.Sprintf("%s%d@%s", local, n, domain)
	}
	seen[email] = struct{}{}
	return email
}

// generateCategories builds n categories.
//
// Draws per category: root label, department, parent coin.
func generateCategories(src *random.Source, n int) []dataset.Category {
	categories := make([]dataset.Category, 0, n)
	for i := 1; i <= n; i++ {
		root := random.Pick(src, RootCategories)
		dept := random.Pick(src, departments)

		var parent string
		if src.Float64() < parentProbability {
			parent = root
		}

		categories = append(categories, dataset.Category{
			CategoryID:     categoryID(i),
			CategoryName:   fmt.Sprintf("%s - %s %d", root, dept, i),
			Department:     dept,
			ParentCategory: parent,
		})
	}
	return categories
}

// generateProducts builds n products, each assigned to one of categories.
//
// Draws per product: adjective, noun, category, price, margin, SKU, stock,
// active coin.
func generateProducts(src *random.Source, n int, categories []dataset.Category) []dataset.Product {
	products := make([]dataset.Product, 0, n)
	for i := 1; i <= n; i++ {
		adjective := random.Pick(src, productAdjectives)
		noun := random.Pick(src, productNouns)
		category := random.Pick(src, categories)

		price := decimal.NewFromFloat(minPrice + src.Float64()*(maxPrice-minPrice)).Round(2)
		margin := decimal.NewFromFloat(minMargin + src.Float64()*(maxMargin-minMargin))
		cost := price.Mul(margin).Round(2)

		sku := fmt.Sprintf("SKU-%d", src.Int(minSKU, maxSKU))
		stock := int(src.Int(minStock, maxStock))
		active := src.Float64() > inactiveProbability

		products = append(products, dataset.Product{
			ProductID:     productID(i),
			SKU:           sku,
			ProductName:   adjective + " " + noun,
			CategoryID:    category.CategoryID,
			UnitPrice:     price,
			UnitCost:      cost,
			StockQuantity: stock,
			Active:        active,
		})
	}
	return products
}

// generateOrders builds n orders placed by customers between each
// customer's creation and now. OrderTotal is left zero for the back-fill.
//
// Draws per order: customer, order date, shipping lag, status, shipping
// method, shipping city, shipping country. The lag is drawn for every order
// whether or not the status ships.
func generateOrders(src *random.Source, n int, customers []dataset.Customer, now time.Time) []dataset.Order {
	orders := make([]dataset.Order, 0, n)
	for i := 1; i <= n; i++ {
		customer := random.Pick(src, customers)
		orderDate := src.Timestamp(customer.CreatedAt, now)
		lag := int(src.Int(minShippingDays, maxShippingDays))
		status := orderStatuses[src.Weighted(statusWeights)]
		method := random.Pick(src, shippingMethods)
		city := random.Pick(src, cities)
		country := random.Pick(src, countries)

		var shipped *time.Time
		if dataset.IsShippedStatus(status) {
			d := orderDate.AddDate(0, 0, lag)
			shipped = &d
		}

		orders = append(orders, dataset.Order{
			OrderID:         orderID(i),
			CustomerID:      customer.CustomerID,
			OrderDate:       orderDate,
			ShippedDate:     shipped,
			OrderStatus:     status,
			ShippingMethod:  method,
			ShippingCity:    city,
			ShippingCountry: country,
			OrderTotal:      decimal.Zero,
		})
	}
	return orders
}

// generateOrderLines builds the lines for every order in order. Detail IDs
// are numbered across the whole run; line numbers restart at 1 per order.
//
// Draws per order: item count, then one pool index per picked product, then
// quantity and discount per line.
func generateOrderLines(src *random.Source, orders []dataset.Order, products []dataset.Product, minItems, maxItems int) []dataset.OrderLine {
	lines := make([]dataset.OrderLine, 0, len(orders)*(minItems+maxItems)/2)
	detail := 0

	for _, order := range orders {
		count := int(src.Int(int64(minItems), int64(maxItems)))
		picked := pickDistinct(src, products, count)

		for j, product := range picked {
			qty := int(src.Int(minQuantity, maxQuantity))
			discount := random.Pick(src, discounts)

			detail++
			lines = append(lines, dataset.OrderLine{
				OrderDetailID: orderLineID(detail),
				OrderID:       order.OrderID,
				ProductID:     product.ProductID,
				Quantity:      qty,
				UnitPrice:     product.UnitPrice,
				Discount:      discount,
				LineNumber:    j + 1,
				LineTotal:     LineTotal(qty, product.UnitPrice, discount),
			})
		}
	}
	return lines
}

// pickDistinct draws up to count products without replacement. It stops
// early when the pool runs out, so the result may be shorter than count.
func pickDistinct(src *random.Source, products []dataset.Product, count int) []dataset.Product {
	pool := slices.Clone(products)
	picked := make([]dataset.Product, 0, min(count, len(pool)))
	for len(picked) < count && len(pool) > 0 {
		idx := int(src.Int(0, int64(len(pool)-1)))
		picked = append(picked, pool[idx])
		pool = slices.Delete(pool, idx, idx+1)
	}
	return picked
}

// LineTotal is quantity × unit price × (1 − discount), rounded to cents.
func LineTotal(qty int, unitPrice, discount decimal.Decimal) decimal.Decimal {
	return unitPrice.
		Mul(decimal.NewFromInt(int64(qty))).
		Mul(decimal.NewFromInt(1).Sub(discount)).
		Round(2)
}

// Totals sums line totals per order ID.
func Totals(lines []dataset.OrderLine) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, l := range lines {
		totals[l.OrderID] = totals[l.OrderID].Add(l.LineTotal)
	}
	return totals
}

// ApplyTotals returns a copy of orders with OrderTotal taken from totals.
// Orders without lines get zero.
func ApplyTotals(orders []dataset.Order, totals map[string]decimal.Decimal) []dataset.Order {
	out := make([]dataset.Order, len(orders))
	for i, o := range orders {
		o.OrderTotal = totals[o.OrderID].Round(2)
		out[i] = o
	}
	return out
}
