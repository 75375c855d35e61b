package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/JonMunkholm/shopseed/internal/csvtext"
)

// FileInfo describes one written file.
type FileInfo struct {
	Path string
	Rows int
}

// WriteDir writes every entity kind of ds to its fixed file in dir, creating
// dir if needed. Each file is written to a temporary name and renamed into
// place so a failed run never leaves a truncated file behind.
func WriteDir(dir string, ds *Dataset) ([]FileInfo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}

	files := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{CustomersFile, CustomerHeader(), rowsOf(ds.Customers)},
		{CategoriesFile, CategoryHeader(), rowsOf(ds.Categories)},
		{ProductsFile, ProductHeader(), rowsOf(ds.Products)},
		{OrdersFile, OrderHeader(), rowsOf(ds.Orders)},
		{OrderDetailsFile, OrderLineHeader(), rowsOf(ds.OrderLines)},
	}

	written := make([]FileInfo, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := writeFile(path, f.header, f.rows); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, FileInfo{Path: path, Rows: len(f.rows)})
	}
	return written, nil
}

type csvRower interface {
	CSVRow() []string
}

func rowsOf[T csvRower](items []T) [][]string {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = item.CSVRow()
	}
	return rows
}

func writeFile(path string, header []string, rows [][]string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := csvtext.WriteAll(tmp, header, rows); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
