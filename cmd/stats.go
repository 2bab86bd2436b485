package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/snapstudy/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show library statistics by tag",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		type tagStat struct {
			total int
			ready int
		}
		byTag := make(map[string]*tagStat)
		for i := range list {
			st := byTag[list[i].Tag]
			if st == nil {
				st = &tagStat{}
				byTag[list[i].Tag] = st
			}
			st.total++
			if list[i].Practicable() {
				st.ready++
			}
		}

		tags := make([]string, 0, len(byTag))
		for t := range byTag {
			tags = append(tags, t)
		}
		sort.Strings(tags)

		fmt.Printf("%-20s  %8s  %10s\n", "Tag", "Saved", "Practicable")
		fmt.Println(strings.Repeat("─", 44))

		var total, ready int
		for _, t := range tags {
			st := byTag[t]
			fmt.Printf("%-20s  %8d  %10d\n", truncate(t, 20), st.total, st.ready)
			total += st.total
			ready += st.ready
		}
		fmt.Println(strings.Repeat("─", 44))
		fmt.Printf("%-20s  %8d  %10d\n", "TOTAL", total, ready)
		return nil
	},
}
