package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/CinisterOne/LWC/internal/api"
	"github.com/CinisterOne/LWC/internal/catalog"
	"github.com/CinisterOne/LWC/internal/config"
	"github.com/CinisterOne/LWC/internal/db"
	"github.com/CinisterOne/LWC/internal/ddl"
	"github.com/CinisterOne/LWC/internal/domain"
	"github.com/CinisterOne/LWC/internal/metrics"
	"github.com/CinisterOne/LWC/internal/schema"
)

func newServeCmd(a *app) *cobra.Command {
	var parallel int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Sync the schema, then serve schema metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// The synced Database keeps its dialect for the life of the
			// process; a reload may only change the prefix.
			dialect, err := a.store.Current().Dialect()
			if err != nil {
				return err
			}

			counters := metrics.NewSchemaCounters()
			syncErr, err := a.syncCatalog(ctx, counters, parallel)
			if err != nil {
				return err
			}
			if syncErr != nil {
				// Keep serving: the metrics show what did sync.
				a.logger.Error("schema sync incomplete", "error", syncErr)
			}

			if a.configPath != "" {
				go func() {
					if err := config.Watch(ctx, a.store, a.configPath, a.logger); err != nil {
						a.logger.Warn("config watcher stopped", "error", err)
					}
				}()
			}

			srv := &http.Server{
				Addr:              a.store.Current().ListenAddr,
				Handler:           api.NewHandler(counters, catalogSource(dialect, a.store, a.logger), a.logger).Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("metrics listener started", "addr", srv.Addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().IntVar(&parallel, "parallel", 1, "Number of tables to sync concurrently")
	return cmd
}

// catalogSource renders the catalog for a fixed dialect, reading the prefix
// on every call.
func catalogSource(dialect ddl.Dialect, prefix domain.PrefixSource, logger *slog.Logger) api.TableSource {
	return func() ([]*schema.Table, error) {
		return catalog.Build(db.New(dialect, nil, prefix, logger), nil)
	}
}
