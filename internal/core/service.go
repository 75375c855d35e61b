package core

import (
	"context"
	"fmt"
	"time"
)

// LoadTimeout is the default maximum duration for a load run.
var LoadTimeout = 10 * time.Minute

// Service ties a Store to a data directory for the commands and the HTTP
// server.
type Service struct {
	store       Store
	dataDir     string
	loadTimeout time.Duration
}

// NewService creates a Service. A zero loadTimeout uses LoadTimeout.
func NewService(store Store, dataDir string, loadTimeout time.Duration) *Service {
	if loadTimeout <= 0 {
		loadTimeout = LoadTimeout
	}
	return &Service{
		store:       store,
		dataDir:     dataDir,
		loadTimeout: loadTimeout,
	}
}

// Store returns the underlying store.
func (s *Service) Store() Store {
	return s.store
}

// Load runs a full load of the data directory under the load timeout.
func (s *Service) Load(ctx context.Context) (*LoadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.loadTimeout)
	defer cancel()
	return NewLoader(s.store, s.dataDir).Run(ctx)
}

// ListTables returns information about all registered tables in load order.
func (s *Service) ListTables() ([]TableInfo, error) {
	defs, err := LoadOrder()
	if err != nil {
		return nil, err
	}
	infos := make([]TableInfo, len(defs))
	for i, def := range defs {
		infos[i] = def.Info
	}
	return infos, nil
}

// TableStat is a table and its current row count.
type TableStat struct {
	TableInfo
	Rows int64 `json:"rows"`
}

// TableStats counts the rows of every registered table.
func (s *Service) TableStats(ctx context.Context) ([]TableStat, error) {
	infos, err := s.ListTables()
	if err != nil {
		return nil, err
	}

	stats := make([]TableStat, 0, len(infos))
	for _, info := range infos {
		n, err := countTable(ctx, s.store, info.Key)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", info.Key, err)
		}
		stats = append(stats, TableStat{TableInfo: info, Rows: n})
	}
	return stats, nil
}

// Ping checks that the store answers a trivial query.
func (s *Service) Ping(ctx context.Context) error {
	rows, err := s.store.Query(ctx, "SELECT 1")
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
	}
	return rows.Err()
}

// countTable returns the row count for a registered table. The key comes
// from the registry, never from user input.
func countTable(ctx context.Context, store Store, tableKey string) (int64, error) {
	rows, err := store.Query(ctx, "SELECT COUNT(*) FROM "+tableKey)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var n int64
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, err
		}
	}
	return n, rows.Err()
}
