package core

import (
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
)

// ----------------------------------------------------------------------------
// ParseReal Tests
// ----------------------------------------------------------------------------

func TestParseReal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantValue float64
		wantErr   bool
	}{
		{name: "two decimals", input: "19.99", wantValid: true, wantValue: 19.99},
		{name: "integer", input: "5", wantValid: true, wantValue: 5},
		{name: "zero", input: "0.00", wantValid: true, wantValue: 0},
		{name: "negative", input: "-1.5", wantValid: true, wantValue: -1.5},
		{name: "surrounding whitespace", input: "  7.25 ", wantValid: true, wantValue: 7.25},
		{name: "empty is null", input: "", wantValid: false},
		{name: "whitespace is null", input: "   ", wantValid: false},
		{name: "currency symbol", input: "$5.00", wantErr: true},
		{name: "letters", input: "abc", wantErr: true},
		{name: "NaN rejected", input: "NaN", wantErr: true},
		{name: "Inf rejected", input: "Inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReal(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseReal(%q) expected error", tt.input)
				}
				if !strings.Contains(err.Error(), "invalid number") {
					t.Errorf("error %q should mention invalid number", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseReal(%q) unexpected error: %v", tt.input, err)
			}
			if got.Valid != tt.wantValid {
				t.Errorf("ParseReal(%q).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}
			if got.Valid && got.Float64 != tt.wantValue {
				t.Errorf("ParseReal(%q) = %v, want %v", tt.input, got.Float64, tt.wantValue)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// ParseInt Tests
// ----------------------------------------------------------------------------

func TestParseInt(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantValue int32
		wantErr   bool
	}{
		{name: "positive", input: "42", wantValid: true, wantValue: 42},
		{name: "zero", input: "0", wantValid: true, wantValue: 0},
		{name: "negative", input: "-3", wantValid: true, wantValue: -3},
		{name: "empty is null", input: "", wantValid: false},
		{name: "decimal rejected", input: "1.5", wantErr: true},
		{name: "overflow rejected", input: "99999999999", wantErr: true},
		{name: "text rejected", input: "five", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInt(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInt(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.Valid != tt.wantValid || (got.Valid && got.Int32 != tt.wantValue) {
				t.Errorf("ParseInt(%q) = %+v, want valid=%v value=%d", tt.input, got, tt.wantValid, tt.wantValue)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// ParseFlag Tests
// ----------------------------------------------------------------------------

func TestParseFlag(t *testing.T) {
	tests := []struct {
		input     string
		wantValid bool
		wantValue int32
		wantErr   bool
	}{
		{"true", true, 1, false},
		{"TRUE", true, 1, false},
		{"t", true, 1, false},
		{"yes", true, 1, false},
		{"y", true, 1, false},
		{"1", true, 1, false},
		{"false", true, 0, false},
		{"False", true, 0, false},
		{"f", true, 0, false},
		{"no", true, 0, false},
		{"n", true, 0, false},
		{"0", true, 0, false},
		{"", false, 0, false},
		{"maybe", false, 0, true},
		{"2", false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFlag(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFlag(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !strings.Contains(err.Error(), "invalid bool") {
					t.Errorf("error %q should mention invalid bool", err)
				}
				return
			}
			if got.Valid != tt.wantValid || got.Int32 != tt.wantValue {
				t.Errorf("ParseFlag(%q) = %+v, want valid=%v value=%d", tt.input, got, tt.wantValid, tt.wantValue)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// ParseTimestamp Tests
// ----------------------------------------------------------------------------

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantErr   bool
	}{
		{name: "millisecond ISO", input: "2024-03-09T14:05:07.123Z", wantValid: true},
		{name: "RFC3339 with offset", input: "2024-03-09T14:05:07+02:00", wantValid: true},
		{name: "space separated", input: "2024-03-09 14:05:07", wantValid: true},
		{name: "date only", input: "2024-03-09", wantValid: true},
		{name: "empty is null", input: "", wantValid: false},
		{name: "US date rejected", input: "03/09/2024", wantErr: true},
		{name: "garbage rejected", input: "yesterday", wantErr: true},
		{name: "impossible date rejected", input: "2024-02-30T00:00:00.000Z", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimestamp(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !strings.Contains(err.Error(), "invalid date") {
					t.Errorf("error %q should mention invalid date", err)
				}
				return
			}
			if got.Valid != tt.wantValid {
				t.Errorf("ParseTimestamp(%q).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}
			if got.Valid && got.String != tt.input {
				t.Errorf("ParseTimestamp(%q) = %q, want original text", tt.input, got.String)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// Text Tests
// ----------------------------------------------------------------------------

func TestParseText(t *testing.T) {
	if got := ParseText(""); !got.Valid || got.String != "" {
		t.Errorf("ParseText(\"\") = %+v, want valid empty string", got)
	}
	if got := ParseText(" padded "); got.String != " padded " {
		t.Errorf("ParseText should keep the value untouched, got %q", got.String)
	}
	if got := ParseNullableText(""); got.Valid {
		t.Errorf("ParseNullableText(\"\") should be NULL")
	}
	if got := ParseNullableText("Books"); !got.Valid || got.String != "Books" {
		t.Errorf("ParseNullableText(\"Books\") = %+v", got)
	}
}

// ----------------------------------------------------------------------------
// BuildRow Tests
// ----------------------------------------------------------------------------

func testProductDef() TableDefinition {
	return TableDefinition{
		Info:       TableInfo{Key: "Products", File: "products.csv"},
		PrimaryKey: "ProductID",
		FieldSpecs: []FieldSpec{
			{Name: "ProductID", Type: FieldText, NotNull: true},
			{Name: "Note", Type: FieldText, EmptyAsNull: true},
			{Name: "UnitPrice", Type: FieldReal, NotNull: true},
			{Name: "StockQuantity", Type: FieldInt, NotNull: true},
			{Name: "Active", Type: FieldBool, NotNull: true},
		},
	}
}

func TestBuildRow(t *testing.T) {
	def := testProductDef()
	// Header order differs from FieldSpec order and case differs.
	idx := MakeHeaderIndex([]string{"active", "UNITPRICE", "ProductID", "StockQuantity", "Note"})

	row, err := BuildRow(def, idx, []string{"true", "10.50", "PROD00001", "12", ""})
	if err != nil {
		t.Fatalf("BuildRow() unexpected error: %v", err)
	}
	if len(row) != 5 {
		t.Fatalf("BuildRow() returned %d values, want 5", len(row))
	}
	if v := row[0].(pgtype.Text); v.String != "PROD00001" {
		t.Errorf("ProductID = %+v", v)
	}
	if v := row[1].(pgtype.Text); v.Valid {
		t.Errorf("Note should be NULL, got %+v", v)
	}
	if v := row[2].(pgtype.Float8); v.Float64 != 10.5 {
		t.Errorf("UnitPrice = %+v", v)
	}
	if v := row[3].(pgtype.Int4); v.Int32 != 12 {
		t.Errorf("StockQuantity = %+v", v)
	}
	if v := row[4].(pgtype.Int4); v.Int32 != 1 {
		t.Errorf("Active = %+v", v)
	}
}

func TestBuildRow_Errors(t *testing.T) {
	def := testProductDef()
	idx := MakeHeaderIndex([]string{"ProductID", "Note", "UnitPrice", "StockQuantity", "Active"})

	tests := []struct {
		name    string
		fields  []string
		wantErr string
	}{
		{"empty required", []string{"", "", "1", "1", "true"}, `required field "ProductID"`},
		{"bad number", []string{"P", "", "ten", "1", "true"}, "UnitPrice: invalid number"},
		{"bad int", []string{"P", "", "1", "1.5", "true"}, "StockQuantity: invalid number"},
		{"bad flag", []string{"P", "", "1", "1", "sometimes"}, "Active: invalid bool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildRow(def, idx, tt.fields)
			if err == nil {
				t.Fatal("BuildRow() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateHeader(t *testing.T) {
	def := testProductDef()

	if err := ValidateHeader(def, MakeHeaderIndex(def.Columns())); err != nil {
		t.Errorf("ValidateHeader() with full header: %v", err)
	}

	err := ValidateHeader(def, MakeHeaderIndex([]string{"ProductID", "UnitPrice"}))
	if err == nil {
		t.Fatal("ValidateHeader() expected error for missing columns")
	}
	for _, col := range []string{"Note", "StockQuantity", "Active"} {
		if !strings.Contains(err.Error(), col) {
			t.Errorf("error %q should name %s", err, col)
		}
	}
}

func TestMakeHeaderIndex(t *testing.T) {
	idx := MakeHeaderIndex([]string{" CustomerID ", `"Email"`, "City"})

	want := map[string]int{"customerid": 0, "email": 1, "city": 2}
	for k, v := range want {
		if idx[k] != v {
			t.Errorf("idx[%q] = %d, want %d", k, idx[k], v)
		}
	}
}
