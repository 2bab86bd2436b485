package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/snapstudy/internal/ocr"
	"github.com/abhisek/snapstudy/internal/question"
	"github.com/abhisek/snapstudy/internal/store"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan <image>",
	Short: "Extract a question from a screenshot without the TUI",
	Long: `Run recognition on a single image and print the extracted question.

With --save the question is written to the library; --tag is then required,
and --answer is required when the text parses as multiple choice.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Bool("save", false, "Save the extracted question to the library")
	scanCmd.Flags().String("tag", "", "Topic tag for the saved question")
	scanCmd.Flags().String("answer", "", "Correct option letter for a multiple-choice question")
	scanCmd.Flags().String("explanation", "", "Optional explanation shown during practice")
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	save, _ := cmd.Flags().GetBool("save")
	tag, _ := cmd.Flags().GetString("tag")
	answer, _ := cmd.Flags().GetString("answer")
	explanation, _ := cmd.Flags().GetString("explanation")

	img, err := ocr.LoadImage(args[0])
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	engine, err := ocr.NewEngineFromEnv(ctx, st.Events())
	if err != nil {
		return fmt.Errorf("recognition provider: %w", err)
	}

	result, err := engine.Recognize(ocr.WithPurpose(ctx, "scan"), img, func(p ocr.Progress) {
		fmt.Printf("%s...\n", p.Status)
	})
	if err != nil {
		return fmt.Errorf("recognize: %w", err)
	}

	fmt.Println()
	fmt.Println(result.Text)
	fmt.Println()

	parsed, ok := question.Parse(result.Text)
	if ok {
		fmt.Printf("Detected multiple choice (%d options, %s detection).\n",
			len(parsed.Options), parsed.Source)
	} else {
		fmt.Println("No option structure detected; plain text question.")
	}

	if !save {
		return nil
	}

	draft := question.Draft{
		RawText:       result.Text,
		Tag:           tag,
		Explanation:   explanation,
		CorrectAnswer: answer,
	}
	if ok {
		draft.Parsed = parsed
	}

	q, err := draft.Build(time.Now())
	if err != nil {
		return fmt.Errorf("cannot save: %w", err)
	}
	if err := st.Questions().Add(cmd.Context(), q); err != nil {
		return fmt.Errorf("save question: %w", err)
	}

	fmt.Printf("Saved question %d under tag %q.\n", q.ID, q.Tag)
	return nil
}
