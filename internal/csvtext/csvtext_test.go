package csvtext

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"", ""},
		{"a,b", `"a,b"`},
		{`say "hi"`, `"say ""hi"""`},
		{"two\nlines", "\"two\nlines\""},
		{"cr\rhere", "\"cr\rhere\""},
		{" leading space", " leading space"},
		{"Home & Kitchen - Decor 12", "Home & Kitchen - Decor 12"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}

func TestWriteAll_Layout(t *testing.T) {
	var buf bytes.Buffer
	err := WriteAll(&buf, []string{"ID", "Name"}, [][]string{
		{"1", "Alpha"},
		{"2", "Beta, Inc."},
		{"3", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, "ID,Name\n1,Alpha\n2,\"Beta, Inc.\"\n3,\n", buf.String())
}

func TestWriteAll_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAll(&buf, []string{"A", "B"}, nil))
	assert.Equal(t, "A,B\n", buf.String())
}

func TestRoundTrip(t *testing.T) {
	header := []string{"ID", "Text", "Note"}
	rows := [][]string{
		{"1", "simple", ""},
		{"2", "comma, inside", "x"},
		{"3", `quote " inside`, `""`},
		{"4", "line\nbreak", "multi\nple\nlines"},
		{"5", "crlf\r\ninside", "trailing,"},
		{"6", `"`, ","},
		{"7", "unicode é ü 漢字", "tab\tsep"},
		{"8", "", ""},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAll(&buf, header, rows))

	doc, err := ParseBytes(buf.Bytes(), "roundtrip.csv")
	require.NoError(t, err)
	assert.Equal(t, header, doc.Header)
	require.Len(t, doc.Rows, len(rows))
	for i, row := range rows {
		assert.Equal(t, row, doc.Rows[i].Fields, "row %d", i)
	}
}

func TestParse_LineNumbers(t *testing.T) {
	input := "A,B\n1,\"x\ny\"\n2,z\n"
	doc, err := ParseBytes([]byte(input), "lines.csv")
	require.NoError(t, err)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, 2, doc.Rows[0].Line)
	assert.Equal(t, 4, doc.Rows[1].Line, "multi-line field advances the physical line")
}

func TestParse_CRLFAndBlankLines(t *testing.T) {
	input := "A,B\r\n\r\n1,2\r\n   \r\n3,4"
	doc, err := ParseBytes([]byte(input), "crlf.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, doc.Header)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, []string{"1", "2"}, doc.Rows[0].Fields)
	assert.Equal(t, []string{"3", "4"}, doc.Rows[1].Fields)
	assert.Equal(t, 5, doc.Rows[1].Line)
}

func TestParse_BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("ID,Name\n1,x\n")...)
	doc, err := ParseBytes(input, "bom.csv")
	require.NoError(t, err)
	assert.Equal(t, "ID", doc.Header[0])
}

func TestParse_QuoteMidField(t *testing.T) {
	// A quote outside a quoted span opens one, even mid-field.
	doc, err := ParseBytes([]byte("A,B\nab\"c,d\"e,f\n"), "mid.csv")
	require.NoError(t, err)
	require.Len(t, doc.Rows, 1)
	assert.Equal(t, []string{"abc,de", "f"}, doc.Rows[0].Fields)
}

func TestParse_Empty(t *testing.T) {
	doc, err := ParseBytes(nil, "empty.csv")
	require.NoError(t, err)
	assert.Nil(t, doc.Header)
	assert.Empty(t, doc.Rows)
}

func TestParse_FieldCountMismatch(t *testing.T) {
	input := "A,B,C\n1,2,3\n4,5\n"
	_, err := ParseBytes([]byte(input), "data/orders.csv")
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "data/orders.csv", pe.File)
	assert.Equal(t, 3, pe.Line)
	assert.Equal(t, 3, pe.Want)
	assert.Equal(t, 2, pe.Got)
	assert.True(t, errors.Is(err, ErrFieldCount))
	assert.Contains(t, err.Error(), "data/orders.csv line 3")
}

func TestParse_TooManyFields(t *testing.T) {
	_, err := ParseBytes([]byte("A,B\n1,2,3\n"), "x.csv")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Got)
}

func TestParse_UnterminatedQuote(t *testing.T) {
	_, err := ParseBytes([]byte("A,B\n1,\"open\n2,3\n"), "bad.csv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnterminatedQuote))

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.csv")
	require.NoError(t, os.WriteFile(path, []byte("A\nx\n"), 0o644))

	doc, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Name)
	assert.Equal(t, []string{"x"}, doc.Rows[0].Fields)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParse_Reader(t *testing.T) {
	doc, err := Parse(strings.NewReader("A,B\n1,2\n"), "reader")
	require.NoError(t, err)
	assert.Equal(t, "reader", doc.Name)
	assert.Len(t, doc.Rows, 1)
}
