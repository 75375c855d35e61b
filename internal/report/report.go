// Package report extracts the denormalized order-line report from a loaded
// store.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/JonMunkholm/shopseed/internal/core"
	"github.com/JonMunkholm/shopseed/internal/csvtext"
	"github.com/shopspring/decimal"
)

// ErrMissingDatabase is returned when the SQLite file has not been created.
var ErrMissingDatabase = errors.New("database not found")

// Query joins every order line to its order, customer, product and category.
const Query = `SELECT
    c.FirstName || ' ' || c.LastName AS CustomerName,
    o.OrderDate,
    p.ProductName,
    cat.CategoryName,
    od.Quantity,
    ROUND(CAST(od.Quantity * od.UnitPrice AS NUMERIC), 2) AS TotalPrice
FROM Orders o
JOIN Customers c ON c.CustomerID = o.CustomerID
JOIN OrderDetails od ON od.OrderID = o.OrderID
JOIN Products p ON p.ProductID = od.ProductID
JOIN Categories cat ON cat.CategoryID = p.CategoryID
ORDER BY o.OrderDate DESC, o.OrderID, od.LineNumber`

// Header is the column order of the CSV and console output.
var Header = []string{"CustomerName", "OrderDate", "ProductName", "CategoryName", "Quantity", "TotalPrice"}

// Line is one report row.
type Line struct {
	CustomerName string          `json:"customerName"`
	OrderDate    string          `json:"orderDate"`
	ProductName  string          `json:"productName"`
	CategoryName string          `json:"categoryName"`
	Quantity     int             `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
}

// Row renders l in Header order.
func (l Line) Row() []string {
	return []string{
		l.CustomerName,
		l.OrderDate,
		l.ProductName,
		l.CategoryName,
		strconv.Itoa(l.Quantity),
		l.TotalPrice.StringFixed(2),
	}
}

// Fetch runs Query against store.
func Fetch(ctx context.Context, store core.Store) ([]Line, error) {
	rows, err := store.Query(ctx, Query)
	if err != nil {
		return nil, fmt.Errorf("report query: %w", err)
	}
	defer rows.Close()

	var lines []Line
	for rows.Next() {
		var (
			l     Line
			total float64
		)
		if err := rows.Scan(&l.CustomerName, &l.OrderDate, &l.ProductName, &l.CategoryName, &l.Quantity, &total); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		l.TotalPrice = decimal.NewFromFloat(total).Round(2)
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report rows: %w", err)
	}
	return lines, nil
}

// WriteCSV writes lines with a header row.
func WriteCSV(w io.Writer, lines []Line) error {
	rows := make([][]string, len(lines))
	for i, l := range lines {
		rows[i] = l.Row()
	}
	return csvtext.WriteAll(w, Header, rows)
}

// WriteFile writes lines as CSV to path.
func WriteFile(path string, lines []Line) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, lines); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Print renders lines as an aligned console table.
func Print(w io.Writer, lines []Line) error {
	if len(lines) == 0 {
		_, err := fmt.Fprintln(w, "No rows returned.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeRow := func(cells []string) {
		for i, c := range cells {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, c)
		}
		fmt.Fprintln(tw)
	}

	writeRow(Header)
	for _, l := range lines {
		writeRow(l.Row())
	}
	return tw.Flush()
}

// CheckDatabase reports ErrMissingDatabase when the SQLite file at path
// does not exist.
func CheckDatabase(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w at %s: run the load command first", ErrMissingDatabase, path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return nil
}
