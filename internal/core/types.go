package core

import (
	"context"
	"strings"
	"time"
)

// FieldType represents the expected data type for a CSV field.
type FieldType int

const (
	FieldText FieldType = iota
	FieldTimestamp
	FieldReal
	FieldInt
	FieldBool
)

// String returns the lower-case type name.
func (t FieldType) String() string {
	switch t {
	case FieldText:
		return "text"
	case FieldTimestamp:
		return "timestamp"
	case FieldReal:
		return "real"
	case FieldInt:
		return "int"
	case FieldBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Reference names the parent column of a foreign key.
type Reference struct {
	Table  string // Parent table name, e.g. "Customers"
	Column string // Parent column name, e.g. "CustomerID"
}

// FieldSpec defines one CSV column and the database column it loads into.
// The CSV header name and the column name are the same.
type FieldSpec struct {
	Name        string     // Column header name (matched case-insensitively)
	Type        FieldType  // Expected data type
	NotNull     bool       // Column rejects NULL; empty input is an error
	EmptyAsNull bool       // Empty text is stored as NULL rather than ""
	Default     string     // SQL default expression, e.g. "0"
	Check       string     // SQL CHECK expression, e.g. "Active IN (0,1)"
	References  *Reference // Foreign key target, nil if none
}

// TableInfo contains display information about a table.
type TableInfo struct {
	Key   string `json:"key"`   // Table name in the store: "Customers"
	Label string `json:"label"` // Display name: "Customers"
	File  string `json:"file"`  // Source file inside the data directory: "customers.csv"
}

// HeaderIndex maps column names (lowercase) to their position in the CSV row.
type HeaderIndex map[string]int

// TableDefinition contains everything needed to create and load a table.
type TableDefinition struct {
	Info       TableInfo
	FieldSpecs []FieldSpec
	PrimaryKey string
}

// Columns returns the column names in FieldSpec order.
func (t TableDefinition) Columns() []string {
	cols := make([]string, len(t.FieldSpecs))
	for i, spec := range t.FieldSpecs {
		cols[i] = spec.Name
	}
	return cols
}

// Dependencies returns the distinct tables this table references.
func (t TableDefinition) Dependencies() []string {
	var deps []string
	seen := make(map[string]bool)
	for _, spec := range t.FieldSpecs {
		if spec.References == nil {
			continue
		}
		key := strings.ToLower(spec.References.Table)
		if seen[key] {
			continue
		}
		seen[key] = true
		deps = append(deps, spec.References.Table)
	}
	return deps
}

// Dialect selects the SQL flavour used for DDL.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Rows is a forward-only query result. Both *sql.Rows and pgx.Rows satisfy
// it through thin adapters in the store package.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Store is the relational engine the loader and report run against.
//
// InsertRows writes every row in one transaction: either all rows land or
// none do, and the transaction is rolled back before an error is returned.
type Store interface {
	Dialect() Dialect
	Recreate(ctx context.Context) error
	Exec(ctx context.Context, stmt string) error
	InsertRows(ctx context.Context, table string, columns []string, rows [][]any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	Close()
}

// TableResult reports one loaded table.
type TableResult struct {
	Key      string        `json:"table"`
	File     string        `json:"file"`
	Rows     int64         `json:"rows"`
	Duration time.Duration `json:"durationNs"`
}

// LoadResult reports a complete load run.
type LoadResult struct {
	RunID    string        `json:"runId"`
	Tables   []TableResult `json:"tables"`
	Duration time.Duration `json:"durationNs"`
}

// TotalRows sums the rows inserted across all tables.
func (r LoadResult) TotalRows() int64 {
	var n int64
	for _, t := range r.Tables {
		n += t.Rows
	}
	return n
}
