// Package cli implements the lwcdb command tree.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/CinisterOne/LWC/internal/config"
)

var (
	version = "dev"
	commit  = "none"
)

// app carries state resolved by the root command for its subcommands.
type app struct {
	configPath string
	envFile    string
	logLevel   string
	output     string

	store  *config.Store
	logger *slog.Logger
}

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output, _ := rootCmd.PersistentFlags().GetString("output")
		if output == "json" {
			_ = printJSON(os.Stdout, map[string]string{"error": err.Error()})
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "lwcdb",
		Short:         "LWC schema synchronizer",
		Long:          "Creates the LWC tables on MySQL, PostgreSQL, SQLite or DuckDB and reports schema metrics.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	a.bindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newSyncCmd(a))
	rootCmd.AddCommand(newDDLCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newCheckPermissionCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (a *app) bindFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&a.configPath, "config", "c", "", "Path to the YAML configuration file")
	flags.StringVar(&a.envFile, "env-file", ".env", "Path to a .env file (missing file is ignored)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flags.StringVarP(&a.output, "output", "o", "text", "Output format (text, json)")
}

// setup loads the environment and configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if a.output != "text" && a.output != "json" {
		return fmt.Errorf("unsupported output format %q: use 'text' or 'json'", a.output)
	}
	if err := config.LoadDotEnv(a.envFile); err != nil {
		return err
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	a.logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	for _, w := range cfg.Warnings {
		a.logger.Warn(w)
	}
	a.store = config.NewStore(cfg)
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
