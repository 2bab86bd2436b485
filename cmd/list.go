package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/snapstudy/internal/question"
	"github.com/abhisek/snapstudy/internal/store"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, _ := cmd.Flags().GetString("tag")
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		list, err := s.Questions().Load(context.Background())
		if err != nil {
			return fmt.Errorf("load questions: %w", err)
		}
		if len(list) == 0 {
			fmt.Println("No questions saved yet.")
			return nil
		}

		fmt.Printf("%-14s  %-19s  %-14s  %-10s  %s\n",
			"ID", "Created", "Tag", "Kind", "Question")
		fmt.Println(strings.Repeat("─", 100))

		shown := 0
		for _, q := range list {
			if tag != "" && q.Tag != tag {
				continue
			}
			if limit > 0 && shown >= limit {
				break
			}
			kind := "text"
			if q.Kind == question.KindMultipleChoice {
				kind = "choice"
				if q.CorrectAnswer != "" {
					kind = "choice ✓"
				}
			}
			fmt.Printf("%-14d  %-19s  %-14s  %-10s  %s\n",
				q.ID,
				q.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(q.Tag, 14),
				kind,
				truncate(oneLine(q.RawText), 40),
			)
			shown++
		}
		return nil
	},
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	listCmd.Flags().StringP("tag", "t", "", "Only show questions with this tag")
	listCmd.Flags().IntP("limit", "n", 0, "Maximum number of questions to show (0 = all)")
}
