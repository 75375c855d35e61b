// Package csvtext reads and writes the comma-delimited interchange files
// produced by the generate step and consumed by the load step.
//
// The writer quotes a field only when it contains a comma, a double quote,
// or a line break, doubling any embedded quotes. The parser is the exact
// inverse: every value the writer emits is read back unchanged, including
// values spanning several physical lines.
package csvtext

import (
	"bufio"
	"io"
	"strings"
)

// Delimiter separates fields within a record.
const Delimiter = ','

// Writer writes records to an underlying io.Writer.
type Writer struct {
	w *bufio.Writer
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write writes a single record followed by a newline.
func (w *Writer) Write(record []string) error {
	for i, field := range record {
		if i > 0 {
			if err := w.w.WriteByte(Delimiter); err != nil {
				return err
			}
		}
		if _, err := w.w.WriteString(Escape(field)); err != nil {
			return err
		}
	}
	return w.w.WriteByte('\n')
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// WriteAll writes the header and all rows, then flushes.
func WriteAll(w io.Writer, header []string, rows [][]string) error {
	cw := NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Flush()
}

// Escape returns field as it must appear in a record.
func Escape(field string) string {
	if !needsQuotes(field) {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func needsQuotes(field string) bool {
	return strings.ContainsAny(field, ",\"\n\r")
}
