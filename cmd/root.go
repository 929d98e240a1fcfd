package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/studymesh/cpaprep/internal/app"
	"github.com/studymesh/cpaprep/internal/config"
	"github.com/studymesh/cpaprep/internal/logging"
	"github.com/studymesh/cpaprep/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "cpaprep",
	Short: "Adaptive study scheduler for CPA exam prep",
	Long:  "cpaprep tracks per-item mastery, gates content by lesson coverage, and composes a time-boxed daily study plan.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CPAPREP_DB env var)")
	rootCmd.PersistentFlags().String("section", "", "Exam section (far, aud, reg; overrides config)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then CPAPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openServices loads config, opens the store, and wires the service graph.
// The returned Store must be closed by the caller.
func openServices(cmd *cobra.Command) (*app.Services, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if sec, _ := cmd.Flags().GetString("section"); sec != "" {
		cfg.Section = sec
	}

	log, err := logging.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = resolveDBPath(cmd)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve DB path: %w", err)
		}
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	return app.NewServices(cfg, st.HistoryRepo(), log), st, nil
}

// syncLogger flushes buffered log entries on command exit.
func syncLogger(log *zap.Logger) {
	_ = log.Sync()
}
