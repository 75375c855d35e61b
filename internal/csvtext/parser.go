package csvtext

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// utf8BOM is skipped when it prefixes the input (Windows editors add it).
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrFieldCount is wrapped by a ParseError when a data record does not have
// the same number of fields as the header.
var ErrFieldCount = errors.New("wrong number of fields")

// ErrUnterminatedQuote is wrapped by a ParseError when the input ends inside
// a quoted field.
var ErrUnterminatedQuote = errors.New("unterminated quoted field")

// ParseError reports a malformed record. Line is the 1-based physical line
// on which the record starts.
type ParseError struct {
	File string
	Line int
	Want int // header field count, set for ErrFieldCount
	Got  int // record field count, set for ErrFieldCount
	Err  error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrFieldCount) {
		return fmt.Sprintf("invalid csv %s line %d: expected %d fields, got %d", e.File, e.Line, e.Want, e.Got)
	}
	return fmt.Sprintf("invalid csv %s line %d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Row is one data record and the line it started on.
type Row struct {
	Line   int
	Fields []string
}

// Document is a parsed file: the header record and every data record.
// Header is nil for an empty input.
type Document struct {
	Name   string
	Header []string
	Rows   []Row
}

// ParseFile reads and parses the file at path.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data, path)
}

// Parse reads all of r and parses it. name identifies the input in errors.
func Parse(r io.Reader, name string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return ParseBytes(data, name)
}

// ParseBytes parses data. name identifies the input in errors.
func ParseBytes(data []byte, name string) (*Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	doc := &Document{Name: name}
	sc := scanner{data: data, line: 1}

	for {
		fields, line, ok, err := sc.next()
		if err != nil {
			return nil, &ParseError{File: name, Line: line, Err: err}
		}
		if !ok {
			break
		}

		if doc.Header == nil {
			doc.Header = fields
			continue
		}
		if len(fields) != len(doc.Header) {
			return nil, &ParseError{
				File: name,
				Line: line,
				Want: len(doc.Header),
				Got:  len(fields),
				Err:  ErrFieldCount,
			}
		}
		doc.Rows = append(doc.Rows, Row{Line: line, Fields: fields})
	}

	return doc, nil
}

// scanner splits input into records in a single pass, tracking whether the
// cursor is inside a quoted span. Inside quotes a doubled quote is a literal
// quote, any other quote closes the span, and line breaks are part of the
// value. Outside quotes a comma ends the field and LF or CRLF ends the record.
type scanner struct {
	data []byte
	pos  int
	line int
}

// next returns the next non-blank record and the line it starts on.
// ok is false once the input is exhausted.
func (s *scanner) next() (fields []string, line int, ok bool, err error) {
	for s.pos < len(s.data) {
		fields, line, quoted, err := s.record()
		if err != nil {
			return nil, line, false, err
		}
		if isBlank(fields, quoted) {
			continue
		}
		return fields, line, true, nil
	}
	return nil, s.line, false, nil
}

func (s *scanner) record() (fields []string, line int, quoted bool, err error) {
	line = s.line
	var cur strings.Builder
	inQuotes := false

	for s.pos < len(s.data) {
		c := s.data[s.pos]

		if inQuotes {
			switch {
			case c == '"' && s.pos+1 < len(s.data) && s.data[s.pos+1] == '"':
				cur.WriteByte('"')
				s.pos += 2
			case c == '"':
				inQuotes = false
				s.pos++
			default:
				if c == '\n' {
					s.line++
				}
				cur.WriteByte(c)
				s.pos++
			}
			continue
		}

		switch c {
		case '"':
			inQuotes = true
			quoted = true
			s.pos++
		case Delimiter:
			fields = append(fields, cur.String())
			cur.Reset()
			s.pos++
		case '\n':
			s.pos++
			s.line++
			return append(fields, cur.String()), line, quoted, nil
		case '\r':
			if s.pos+1 < len(s.data) && s.data[s.pos+1] == '\n' {
				s.pos += 2
				s.line++
				return append(fields, cur.String()), line, quoted, nil
			}
			cur.WriteByte(c)
			s.pos++
		default:
			cur.WriteByte(c)
			s.pos++
		}
	}

	if inQuotes {
		return nil, line, quoted, ErrUnterminatedQuote
	}
	return append(fields, cur.String()), line, quoted, nil
}

// isBlank reports whether a record is an empty or whitespace-only line.
func isBlank(fields []string, quoted bool) bool {
	return !quoted && len(fields) == 1 && strings.TrimSpace(fields[0]) == ""
}
