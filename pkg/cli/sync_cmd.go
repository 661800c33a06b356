package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/CinisterOne/LWC/internal/catalog"
	"github.com/CinisterOne/LWC/internal/db"
	"github.com/CinisterOne/LWC/internal/metrics"
	"github.com/CinisterOne/LWC/internal/schema"
)

func newSyncCmd(a *app) *cobra.Command {
	var parallel int

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Create any missing LWC tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			counters := metrics.NewSchemaCounters()
			syncErr, err := a.syncCatalog(cmd.Context(), counters, parallel)
			if err != nil {
				return err
			}
			if perr := a.printCounters(cmd.OutOrStdout(), counters.Snapshot()); perr != nil {
				return perr
			}
			return syncErr
		},
	}
	cmd.Flags().IntVar(&parallel, "parallel", 1, "Number of tables to sync concurrently")
	return cmd
}

// syncCatalog opens the configured database and syncs every catalog table.
// err is an open or build failure; syncErr joins per-table failures.
func (a *app) syncCatalog(ctx context.Context, counters *metrics.SchemaCounters, parallel int) (syncErr, err error) {
	database, pool, err := db.Open(ctx, a.store.Current().Database, a.store, a.logger)
	if err != nil {
		return nil, err
	}
	defer pool.Close() //nolint:errcheck

	tables, err := catalog.Build(database, counters)
	if err != nil {
		return nil, err
	}

	s := &schema.Syncer{Logger: a.logger, Parallelism: parallel}
	return s.SyncAll(ctx, tables), nil
}

func (a *app) printCounters(w io.Writer, snap metrics.Snapshot) error {
	if a.output == "json" {
		return printJSON(w, snap)
	}
	_, err := fmt.Fprintf(w, "physical tables synced: %d\nmemory tables synced:   %d\n",
		snap.PhysicalQueries, snap.MemoryQueries)
	return err
}
