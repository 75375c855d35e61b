package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/JonMunkholm/shopseed/internal/csvtext"
	"github.com/JonMunkholm/shopseed/internal/logging"
	"github.com/google/uuid"
)

// MaxFileSize is the maximum allowed CSV file size (100MB).
var MaxFileSize int64 = 100 * 1024 * 1024

// ContextCheckInterval is how often to check for context cancellation.
var ContextCheckInterval = 1000

// ErrMissingSource is returned when the data directory or one of its CSV
// files does not exist.
var ErrMissingSource = errors.New("source file not found")

// TableError describes a failure loading one table. Line is the 1-based
// line in File where the offending record starts, or 0 when the failure is
// not tied to a record.
type TableError struct {
	Table string
	File  string
	Line  int
	Err   error
}

func (e *TableError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load %s from %s line %d: %v", e.Table, e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s from %s: %v", e.Table, e.File, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// Loader moves the CSV files in a data directory into a Store.
type Loader struct {
	store   Store
	dataDir string
}

// NewLoader creates a loader reading from dataDir.
func NewLoader(store Store, dataDir string) *Loader {
	return &Loader{store: store, dataDir: dataDir}
}

// Run recreates the store, applies the schema and loads every registered
// table in foreign key order. Sources are checked before anything is
// dropped, so a missing file leaves the existing store untouched.
func (l *Loader) Run(ctx context.Context) (*LoadResult, error) {
	start := time.Now()

	runID := logging.RunIDFromContext(ctx)
	if runID == "" {
		runID = uuid.NewString()
		ctx = logging.ContextWithRunID(ctx, runID)
	}
	logger := logging.FromContext(ctx)

	defs, err := LoadOrder()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no tables registered")
	}

	if err := l.checkSources(defs); err != nil {
		return nil, err
	}

	dialect := l.store.Dialect()
	logger.Info("recreating store", "dialect", dialect, "tables", len(defs))
	if err := l.store.Recreate(ctx); err != nil {
		return nil, fmt.Errorf("recreate store: %w", err)
	}

	stmts, err := SchemaStatements(dialect)
	if err != nil {
		return nil, err
	}
	for _, stmt := range stmts {
		if err := l.store.Exec(ctx, stmt); err != nil {
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}

	result := &LoadResult{RunID: runID}
	for _, def := range defs {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("load cancelled before %s: %w", def.Info.Key, err)
		}
		tr, err := l.LoadTable(ctx, def)
		if err != nil {
			return result, err
		}
		result.Tables = append(result.Tables, tr)
	}
	result.Duration = time.Since(start)

	logger.Info("load complete",
		"tables", len(result.Tables),
		"rows", result.TotalRows(),
		"duration_ms", result.Duration.Milliseconds(),
	)
	return result, nil
}

// checkSources verifies the data directory and every table's file exist.
func (l *Loader) checkSources(defs []TableDefinition) error {
	info, err := os.Stat(l.dataDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: data directory %s does not exist; run the generate command first",
			ErrMissingSource, l.dataDir)
	}
	for _, def := range defs {
		path := filepath.Join(l.dataDir, def.Info.File)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return missingSource(path)
		}
	}
	return nil
}

func missingSource(path string) error {
	return fmt.Errorf("%w: %s; run the generate command first", ErrMissingSource, path)
}

// LoadTable parses def's file, converts every record and inserts the rows
// in one transaction. Any bad record aborts the table before the insert.
func (l *Loader) LoadTable(ctx context.Context, def TableDefinition) (TableResult, error) {
	start := time.Now()
	path := filepath.Join(l.dataDir, def.Info.File)
	logger := logging.WithFields(ctx,
		"table", def.Info.Key,
		"file", path,
	)

	fail := func(line int, err error) (TableResult, error) {
		return TableResult{}, &TableError{Table: def.Info.Key, File: path, Line: line, Err: err}
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return TableResult{}, missingSource(path)
	}
	if err != nil {
		return fail(0, err)
	}
	if info.Size() > MaxFileSize {
		return fail(0, fmt.Errorf("file too large: %d bytes exceeds %dMB limit", info.Size(), MaxFileSize/(1024*1024)))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fail(0, err)
	}
	if !utf8.Valid(data) {
		logger.Warn("replacing invalid UTF-8 sequences")
		data = sanitizeUTF8(data)
	}

	doc, err := csvtext.ParseBytes(data, path)
	if err != nil {
		return fail(0, err)
	}
	if doc.Header == nil {
		return fail(0, errors.New("empty file"))
	}

	idx := MakeHeaderIndex(doc.Header)
	if err := ValidateHeader(def, idx); err != nil {
		return fail(1, err)
	}

	rows := make([][]any, 0, len(doc.Rows))
	for i, rec := range doc.Rows {
		if i%ContextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return fail(rec.Line, err)
			}
		}
		row, err := BuildRow(def, idx, rec.Fields)
		if err != nil {
			return fail(rec.Line, err)
		}
		rows = append(rows, row)
	}

	n, err := l.store.InsertRows(ctx, def.Info.Key, def.Columns(), rows)
	if err != nil {
		return fail(0, fmt.Errorf("insert: %w", err))
	}

	tr := TableResult{
		Key:      def.Info.Key,
		File:     def.Info.File,
		Rows:     n,
		Duration: time.Since(start),
	}
	logger.Info("table loaded", "rows", n, "duration_ms", tr.Duration.Milliseconds())
	return tr, nil
}

func sanitizeUTF8(data []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('\uFFFD')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}
