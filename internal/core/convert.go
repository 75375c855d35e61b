package core

// convert.go turns CSV cells into the values handed to the store.
//
// Every Parse* function returns a pgtype value. pgtype values implement
// driver.Valuer, so the same row feeds both database/sql (SQLite) and the
// pgx COPY protocol (PostgreSQL). Valid=false means NULL.

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// timestampLayouts are tried in order by ParseTimestamp.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.000Z07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseText returns s as text. Empty input is kept as the empty string.
func ParseText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

// ParseNullableText returns NULL for empty or whitespace-only input.
func ParseNullableText(s string) pgtype.Text {
	if strings.TrimSpace(s) == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// ParseTimestamp validates an ISO-8601 timestamp and returns the original
// text. Empty input is NULL.
func ParseTimestamp(s string) (pgtype.Text, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Text{Valid: false}, nil
	}
	for _, layout := range timestampLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return pgtype.Text{String: s, Valid: true}, nil
		}
	}
	return pgtype.Text{}, fmt.Errorf("invalid date %q", s)
}

// ParseReal converts a decimal string to a float. Empty input is NULL.
func ParseReal(s string) (pgtype.Float8, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Float8{Valid: false}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return pgtype.Float8{}, fmt.Errorf("invalid number %q", s)
	}
	return pgtype.Float8{Float64: f, Valid: true}, nil
}

// ParseInt converts a base-10 integer string. Empty input is NULL.
func ParseInt(s string) (pgtype.Int4, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Int4{Valid: false}, nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return pgtype.Int4{}, fmt.Errorf("invalid number %q", s)
	}
	return pgtype.Int4{Int32: int32(n), Valid: true}, nil
}

// ParseFlag converts a boolean-like string to a 0/1 integer.
// Accepts various representations: true/false, yes/no, t/f, y/n, 1/0.
func ParseFlag(s string) (pgtype.Int4, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "":
		return pgtype.Int4{Valid: false}, nil
	case "true", "t", "yes", "y", "1":
		return pgtype.Int4{Int32: 1, Valid: true}, nil
	case "false", "f", "no", "n", "0":
		return pgtype.Int4{Int32: 0, Valid: true}, nil
	default:
		return pgtype.Int4{}, fmt.Errorf("invalid bool %q", s)
	}
}

// ParseField converts one cell according to spec.
func ParseField(spec FieldSpec, raw string) (any, error) {
	if spec.NotNull && strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("required field %q is empty", spec.Name)
	}

	var (
		v   any
		err error
	)
	switch spec.Type {
	case FieldTimestamp:
		v, err = ParseTimestamp(raw)
	case FieldReal:
		v, err = ParseReal(raw)
	case FieldInt:
		v, err = ParseInt(raw)
	case FieldBool:
		v, err = ParseFlag(raw)
	default:
		if spec.EmptyAsNull {
			v = ParseNullableText(raw)
		} else {
			v = ParseText(raw)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec.Name, err)
	}
	return v, nil
}

// BuildRow converts a CSV record into store values in FieldSpec order.
func BuildRow(def TableDefinition, idx HeaderIndex, fields []string) ([]any, error) {
	row := make([]any, len(def.FieldSpecs))
	for i, spec := range def.FieldSpecs {
		pos, ok := idx[strings.ToLower(spec.Name)]
		if !ok {
			return nil, fmt.Errorf("missing required column %q", spec.Name)
		}
		var raw string
		if pos < len(fields) {
			raw = fields[pos]
		}
		v, err := ParseField(spec, raw)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}

// MakeHeaderIndex creates a HeaderIndex from a CSV header row.
// Keys are lowercased for case-insensitive matching.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := strings.ToLower(CleanCell(h))
		idx[key] = i
	}
	return idx
}

// ValidateHeader checks that every column of def is present in idx.
func ValidateHeader(def TableDefinition, idx HeaderIndex) error {
	var missing []string
	for _, spec := range def.FieldSpecs {
		if _, ok := idx[strings.ToLower(spec.Name)]; !ok {
			missing = append(missing, spec.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("column not found: %s", strings.Join(missing, ", "))
	}
	return nil
}

// CleanCell trims whitespace and surrounding quotes from a header cell.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return s
}
