package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/snapstudy/internal/markdown"
	"github.com/abhisek/snapstudy/internal/practice"
	"github.com/abhisek/snapstudy/internal/router"
	"github.com/abhisek/snapstudy/internal/screen"
	"github.com/abhisek/snapstudy/internal/ui/components"
	"github.com/abhisek/snapstudy/internal/ui/layout"
	"github.com/abhisek/snapstudy/internal/ui/theme"
)

// ResultsScreen shows the score breakdown for a finished session.
type ResultsScreen struct {
	results practice.Results
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New aggregates the finished session into a ResultsScreen.
func New(session *practice.Session) *ResultsScreen {
	return &ResultsScreen{results: practice.Aggregate(session)}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to home"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" {
			return r, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	res := r.results

	var b strings.Builder
	b.WriteString(theme.Title.Render("Session complete"))
	b.WriteString("\n\n")

	score := fmt.Sprintf("%d / %d correct  ·  %d%%", res.CorrectCount, res.TotalCount, res.Percentage)
	if res.Percentage >= 80 {
		b.WriteString(theme.Correct.Render(score))
	} else if res.Percentage >= 50 {
		b.WriteString(theme.Body.Bold(true).Render(score))
	} else {
		b.WriteString(theme.Incorrect.Render(score))
	}
	b.WriteString("\n")

	if len(res.TopicOrder) > 1 {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render("By topic"))
		b.WriteString("\n")
		barWidth := min(width-30, 36)
		for _, tag := range res.TopicOrder {
			stat := res.PerTopic[tag]
			frac := 0.0
			if stat.Total > 0 {
				frac = float64(stat.Correct) / float64(stat.Total)
			}
			bar := components.NewProgressBar(fmt.Sprintf("%-14s", tag), frac, false, barWidth)
			b.WriteString(bar.View())
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("  %d/%d", stat.Correct, stat.Total)))
			b.WriteString("\n")
		}
	}

	if len(res.Missed) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render("Review these"))
		b.WriteString("\n")
		for _, m := range res.Missed {
			prompt := markdown.FormatMath(m.Question.Parsed.Prompt)
			if r := []rune(prompt); len(r) > 50 {
				prompt = string(r[:49]) + "…"
			}
			answer := m.UserAnswer
			if answer == "" {
				answer = "no answer"
			}
			b.WriteString(theme.Body.Render("  " + prompt))
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("    you: %s · correct: %s", answer, m.Question.CorrectAnswer)))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.Card.Width(min(width-4, 76)).Render(b.String()))
}
