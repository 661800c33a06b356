package schema

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Syncer synchronizes a batch of tables.
type Syncer struct {
	Logger *slog.Logger

	// Parallelism bounds concurrent syncs. Values below 2 sync one table at
	// a time in the given order. Only raise it when the connection allows
	// concurrent statements.
	Parallelism int
}

// SyncAll syncs every table, continuing past failures. The returned error
// joins one *domain.SchemaSyncError per failed table.
func (s *Syncer) SyncAll(ctx context.Context, tables []*Table) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("run_id", uuid.NewString())
	start := time.Now()

	var (
		mu   sync.Mutex
		errs []error
	)
	record := func(t *Table, err error) {
		if err == nil {
			return
		}
		logger.Error("table sync failed", "table", t.Name(), "error", err)
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	if s.Parallelism < 2 {
		for _, t := range tables {
			record(t, t.Sync(ctx))
		}
	} else {
		var g errgroup.Group
		g.SetLimit(s.Parallelism)
		for _, t := range tables {
			g.Go(func() error {
				record(t, t.Sync(ctx))
				return nil // don't stop the other tables
			})
		}
		_ = g.Wait()
	}

	logger.Info("schema sync finished",
		"tables", len(tables),
		"failed", len(errs),
		"duration", time.Since(start))
	return errors.Join(errs...)
}
