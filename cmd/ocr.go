package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/snapstudy/internal/store"
	"github.com/spf13/cobra"
)

var ocrCmd = &cobra.Command{
	Use:   "ocr",
	Short: "Inspect recognition request events",
}

var ocrListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent recognition events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		events, err := s.Events().QueryOCREvents(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No recognition events found.")
			return nil
		}

		// Header.
		fmt.Printf("%-5s  %-19s  %-10s  %-28s  %-9s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "ImgBytes", "Chars", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Printf("%-5d  %-19s  %-10s  %-28s  %-9d  %-6d  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				truncate(e.Model, 28),
				e.ImageBytes,
				e.TextChars,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

func init() {
	ocrListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	ocrListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. capture, scan)")

	ocrCmd.AddCommand(ocrListCmd)
}
