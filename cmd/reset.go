package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/snapstudy/internal/question"
	"github.com/abhisek/snapstudy/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		list, err := s.Questions().Load(ctx)
		if err != nil {
			return fmt.Errorf("load questions: %w", err)
		}
		if len(list) == 0 {
			fmt.Println("Nothing to delete.")
			return nil
		}

		if !force {
			fmt.Printf("This deletes all %d saved questions. Type 'yes' to continue: ", len(list))
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.TrimSpace(line) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := s.Questions().SaveAll(ctx, []question.SavedQuestion{}); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Printf("Deleted %d questions.\n", len(list))
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
