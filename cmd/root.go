package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/koops/pathfinder/internal/catalog"
	"github.com/koops/pathfinder/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pathfinder",
	Short: "AMR readiness diagnostic",
	Long:  "Pathfinder scores a facility's readiness for autonomous mobile robots across four dimensions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHFINDER_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a replacement question catalog (YAML)")

	rootCmd.Flags().Bool("record", false, "Record completed assessments in the results log")
	rootCmd.Flags().String("report", "static", "Report preview mode: static or live")
	rootCmd.Flags().String("facility", "", "Facility name shown on the report")
	rootCmd.Flags().Bool("ai-notes", false, "Ask the configured LLM for analyst notes (implies --report live)")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PATHFINDER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// recordingEnabled reports whether results should be written: --record, or
// an explicit database via --db or PATHFINDER_DB.
func recordingEnabled(cmd *cobra.Command) bool {
	if on, _ := cmd.Flags().GetBool("record"); on {
		return true
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return true
	}
	return os.Getenv("PATHFINDER_DB") != ""
}

// loadCatalog returns the --catalog file if given, else the built-in one.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

// openStore opens the results log named by the --db flag or environment.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
