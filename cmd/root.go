package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/snapstudy/internal/app"
	"github.com/abhisek/snapstudy/internal/ocr"
	"github.com/abhisek/snapstudy/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "snapstudy",
	Short: "Turn screenshots into practice questions",
	Long:  "SnapStudy — capture questions from screenshots, tag them, and quiz yourself in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SNAPSTUDY_DB env var)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(ocrCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SNAPSTUDY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Questions: st.Questions(),
		Events:    st.Events(),
	}

	engine, err := ocr.NewEngineFromEnv(ctx, st.Events())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Recognition provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Screenshot capture will be unavailable.")
	} else {
		opts.Engine = engine
	}

	return app.Run(opts)
}
