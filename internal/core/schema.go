package core

import (
	"fmt"
	"strings"
)

// columnType returns the SQL type for a field in the given dialect.
// Timestamps are stored as their ISO-8601 text so both dialects sort and
// display them identically.
func columnType(t FieldType, d Dialect) string {
	switch t {
	case FieldReal:
		if d == DialectPostgres {
			return "DOUBLE PRECISION"
		}
		return "REAL"
	case FieldInt, FieldBool:
		return "INTEGER"
	default:
		return "TEXT"
	}
}

// CreateTableSQL renders the CREATE TABLE statement for def.
func CreateTableSQL(def TableDefinition, d Dialect) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", def.Info.Key)

	lines := make([]string, 0, len(def.FieldSpecs)+2)
	for _, spec := range def.FieldSpecs {
		col := fmt.Sprintf("    %s %s", spec.Name, columnType(spec.Type, d))
		if strings.EqualFold(spec.Name, def.PrimaryKey) {
			col += " PRIMARY KEY"
		}
		if spec.NotNull {
			col += " NOT NULL"
		}
		if spec.Default != "" {
			col += " DEFAULT " + spec.Default
		}
		if spec.Check != "" {
			col += " CHECK (" + spec.Check + ")"
		}
		lines = append(lines, col)
	}
	for _, spec := range def.FieldSpecs {
		if spec.References == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("    FOREIGN KEY (%s) REFERENCES %s(%s)",
			spec.Name, spec.References.Table, spec.References.Column))
	}

	b.WriteString(strings.Join(lines, ",\n"))
	b.WriteString("\n)")
	return b.String()
}

// DropTableSQL renders a DROP statement that tolerates a missing table.
func DropTableSQL(def TableDefinition, d Dialect) string {
	if d == DialectPostgres {
		return fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", def.Info.Key)
	}
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", def.Info.Key)
}

// SchemaStatements returns the DDL for every registered table in load order.
// For SQLite, foreign key enforcement is switched on first.
func SchemaStatements(d Dialect) ([]string, error) {
	defs, err := LoadOrder()
	if err != nil {
		return nil, err
	}

	var stmts []string
	if d == DialectSQLite {
		stmts = append(stmts, "PRAGMA foreign_keys = ON")
	}
	for _, def := range defs {
		stmts = append(stmts, CreateTableSQL(def, d))
	}
	return stmts, nil
}
