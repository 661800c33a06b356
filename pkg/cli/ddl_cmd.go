package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CinisterOne/LWC/internal/catalog"
	"github.com/CinisterOne/LWC/internal/db"
	"github.com/CinisterOne/LWC/internal/ddl"
	"github.com/CinisterOne/LWC/internal/domain"
)

func newDDLCmd(a *app) *cobra.Command {
	var (
		adapter string
		prefix  string
	)

	cmd := &cobra.Command{
		Use:   "ddl",
		Short: "Print the CREATE TABLE statements without connecting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.store.Current()
			if adapter == "" {
				adapter = cfg.Database.Adapter
			}
			dialect, err := ddl.LookupDialect(adapter)
			if err != nil {
				return err
			}

			var source domain.PrefixSource = a.store
			if cmd.Flags().Changed("prefix") {
				source = db.StaticPrefix(prefix)
			}

			tables, err := catalog.Build(db.New(dialect, nil, source, a.logger), nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.output == "json" {
				stmts := make(map[string]string, len(tables))
				for _, t := range tables {
					stmts[t.Name()] = t.CreateStatement()
				}
				return printJSON(out, stmts)
			}
			for _, t := range tables {
				if _, err := fmt.Fprintln(out, t.CreateStatement()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&adapter, "adapter", "", "Render for this adapter instead of the configured one")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Table prefix to render with (networked adapters)")
	return cmd
}
