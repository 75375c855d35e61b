// Package dataset defines the five entity record types exchanged between the
// generation and load stages, and their CSV encoding.
package dataset

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// File names inside the data directory, one per entity kind.
const (
	CustomersFile    = "customers.csv"
	CategoriesFile   = "categories.csv"
	ProductsFile     = "products.csv"
	OrdersFile       = "orders.csv"
	OrderDetailsFile = "order_details.csv"
)

// TimeLayout renders timestamps as UTC ISO-8601 with millisecond precision.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Order statuses.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

// IsShippedStatus reports whether an order in this status carries a shipped date.
func IsShippedStatus(status string) bool {
	return status == StatusShipped || status == StatusDelivered
}

// Customer is a registered shopper.
type Customer struct {
	CustomerID string
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	City       string
	Country    string
	CreatedAt  time.Time
}

// Category is a product category. ParentCategory is empty for top-level entries.
type Category struct {
	CategoryID     string
	CategoryName   string
	Department     string
	ParentCategory string
}

// Product is a catalog item.
type Product struct {
	ProductID     string
	SKU           string
	ProductName   string
	CategoryID    string
	UnitPrice     decimal.Decimal
	UnitCost      decimal.Decimal
	StockQuantity int
	Active        bool
}

// Order is a customer order. ShippedDate is nil unless the status is
// Shipped or Delivered. OrderTotal is set by the back-fill pass.
type Order struct {
	OrderID         string
	CustomerID      string
	OrderDate       time.Time
	ShippedDate     *time.Time
	OrderStatus     string
	ShippingMethod  string
	ShippingCity    string
	ShippingCountry string
	OrderTotal      decimal.Decimal
}

// OrderLine is one product line on an order.
type OrderLine struct {
	OrderDetailID string
	OrderID       string
	ProductID     string
	Quantity      int
	UnitPrice     decimal.Decimal
	Discount      decimal.Decimal
	LineNumber    int
	LineTotal     decimal.Decimal
}

// Dataset holds one complete generated run.
type Dataset struct {
	Customers  []Customer
	Categories []Category
	Products   []Product
	Orders     []Order
	OrderLines []OrderLine
}

// FormatTime renders t in TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// FormatMoney renders d with exactly two decimals.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ----------------------------------------------------------------------------
// CSV encoding
// ----------------------------------------------------------------------------

// CustomerHeader is the CSV header for customers.csv.
func CustomerHeader() []string {
	return []string{"CustomerID", "FirstName", "LastName", "Email", "Phone", "City", "Country", "CreatedAt"}
}

// CSVRow returns the customer's fields in CustomerHeader order.
func (c Customer) CSVRow() []string {
	return []string{
		c.CustomerID, c.FirstName, c.LastName, c.Email, c.Phone, c.City, c.Country,
		FormatTime(c.CreatedAt),
	}
}

// CategoryHeader is the CSV header for categories.csv.
func CategoryHeader() []string {
	return []string{"CategoryID", "CategoryName", "Department", "ParentCategory"}
}

// CSVRow returns the category's fields in CategoryHeader order.
func (c Category) CSVRow() []string {
	return []string{c.CategoryID, c.CategoryName, c.Department, c.ParentCategory}
}

// ProductHeader is the CSV header for products.csv.
func ProductHeader() []string {
	return []string{"ProductID", "SKU", "ProductName", "CategoryID", "UnitPrice", "UnitCost", "StockQuantity", "Active"}
}

// CSVRow returns the product's fields in ProductHeader order.
func (p Product) CSVRow() []string {
	return []string{
		p.ProductID, p.SKU, p.ProductName, p.CategoryID,
		FormatMoney(p.UnitPrice),
		FormatMoney(p.UnitCost),
		strconv.Itoa(p.StockQuantity),
		strconv.FormatBool(p.Active),
	}
}

// OrderHeader is the CSV header for orders.csv.
func OrderHeader() []string {
	return []string{
		"OrderID", "CustomerID", "OrderDate", "ShippedDate", "OrderStatus",
		"ShippingMethod", "ShippingCity", "ShippingCountry", "OrderTotal",
	}
}

// CSVRow returns the order's fields in OrderHeader order.
func (o Order) CSVRow() []string {
	shipped := ""
	if o.ShippedDate != nil {
		shipped = FormatTime(*o.ShippedDate)
	}
	return []string{
		o.OrderID, o.CustomerID, FormatTime(o.OrderDate), shipped, o.OrderStatus,
		o.ShippingMethod, o.ShippingCity, o.ShippingCountry,
		FormatMoney(o.OrderTotal),
	}
}

// OrderLineHeader is the CSV header for order_details.csv.
func OrderLineHeader() []string {
	return []string{
		"OrderDetailID", "OrderID", "ProductID", "Quantity", "UnitPrice",
		"Discount", "LineNumber", "LineTotal",
	}
}

// CSVRow returns the line's fields in OrderLineHeader order.
func (l OrderLine) CSVRow() []string {
	return []string{
		l.OrderDetailID, l.OrderID, l.ProductID,
		strconv.Itoa(l.Quantity),
		FormatMoney(l.UnitPrice),
		FormatMoney(l.Discount),
		strconv.Itoa(l.LineNumber),
		FormatMoney(l.LineTotal),
	}
}
