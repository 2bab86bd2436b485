package practice

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/snapstudy/internal/markdown"
	"github.com/abhisek/snapstudy/internal/practice"
	"github.com/abhisek/snapstudy/internal/router"
	"github.com/abhisek/snapstudy/internal/screen"
	"github.com/abhisek/snapstudy/internal/screens/results"
	"github.com/abhisek/snapstudy/internal/ui/components"
	"github.com/abhisek/snapstudy/internal/ui/layout"
	"github.com/abhisek/snapstudy/internal/ui/theme"
)

// PracticeScreen drives an active practice session question by question.
type PracticeScreen struct {
	session    *practice.Session
	choices    components.ChoiceList
	resultsBtn components.Button
	showExp    bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen over a built session.
func New(session *practice.Session) *PracticeScreen {
	p := &PracticeScreen{session: session}
	p.resultsBtn = components.NewButton("View Results", false, func() tea.Cmd {
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(p.session)}
		}
	})
	p.syncChoices()
	return p
}

func (p *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (p *PracticeScreen) Title() string {
	return fmt.Sprintf("Practice %d/%d", p.session.Current+1, p.session.Len())
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	ans := p.session.CurrentAnswer()
	if ans != nil && ans.Submitted {
		var hints []layout.KeyHint
		if p.resultsBtn.Active {
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Results"})
		} else {
			hints = append(hints, layout.KeyHint{Key: "→", Description: "Next"})
		}
		if p.session.CurrentQuestion().Explanation != "" {
			hints = append(hints, layout.KeyHint{Key: "E", Description: "Explanation"})
		}
		return append(hints, layout.KeyHint{Key: "←", Description: "Previous"})
	}
	return []layout.KeyHint{
		{Key: "A-E", Description: "Select"},
		{Key: "Enter", Description: "Submit"},
		{Key: "←→", Description: "Navigate"},
	}
}

// syncChoices rebuilds the option list for the current question, restoring
// any answer picked on an earlier visit.
func (p *PracticeScreen) syncChoices() {
	q := p.session.CurrentQuestion()
	ans := p.session.CurrentAnswer()
	selected := ""
	if ans != nil {
		selected = ans.Selected
	}
	p.choices = components.NewChoiceList(q.Parsed.Options, selected)
	p.resultsBtn.Active = p.atLastSubmitted()
	p.showExp = false
}

// atLastSubmitted reports whether the session sits on its final question
// with that answer already graded.
func (p *PracticeScreen) atLastSubmitted() bool {
	ans := p.session.CurrentAnswer()
	return p.session.Current == p.session.Len()-1 && ans != nil && ans.Submitted
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	ans := p.session.CurrentAnswer()
	key := kmsg.String()

	switch key {
	case "left", "h":
		p.session.Advance(-1)
		p.syncChoices()
		return p, nil

	case "right", "l":
		if p.session.Advance(1) {
			return p, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: results.New(p.session)}
			}
		}
		p.syncChoices()
		return p, nil

	case "e":
		if ans != nil && ans.Submitted && p.session.CurrentQuestion().Explanation != "" {
			p.showExp = !p.showExp
			return p, nil
		}

	case "enter":
		if ans != nil && !ans.Submitted && ans.Selected != "" {
			p.session.Submit()
			p.resultsBtn.Active = p.atLastSubmitted()
			return p, nil
		}
		if p.resultsBtn.Active {
			var cmd tea.Cmd
			p.resultsBtn, cmd = p.resultsBtn.Update(msg)
			return p, cmd
		}
	}

	if ans != nil && !ans.Submitted {
		var picked string
		p.choices, picked = p.choices.Update(msg)
		if picked != "" {
			p.session.Select(picked)
		}
	}
	return p, nil
}

func (p *PracticeScreen) View(width, height int) string {
	q := p.session.CurrentQuestion()
	ans := p.session.CurrentAnswer()

	var b strings.Builder
	b.WriteString(theme.Tag.Render("#" + q.Tag))
	b.WriteString("  ")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("question %d of %d", p.session.Current+1, p.session.Len())))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Bold(true).Render(markdown.FormatMath(q.Parsed.Prompt)))
	b.WriteString("\n\n")

	selected, correct, submitted := "", "", false
	if ans != nil {
		selected = ans.Selected
		submitted = ans.Submitted
	}
	if submitted {
		correct = q.CorrectAnswer
	}
	b.WriteString(p.choices.View(selected, correct, submitted))

	if submitted {
		b.WriteString("\n")
		if ans.Correct {
			b.WriteString(theme.Correct.Render("Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render(fmt.Sprintf("Not quite. The answer is %s.", q.CorrectAnswer)))
		}
		if q.Explanation != "" && !p.showExp {
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render("Press e to see the explanation."))
		}
	}

	if p.showExp {
		r := markdown.NewRenderer(min(width-8, 72))
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Render("Explanation"))
		b.WriteString("\n")
		b.WriteString(r.Render(q.Explanation))
	}

	if p.resultsBtn.Active {
		b.WriteString("\n\n")
		b.WriteString(p.resultsBtn.View())
	}

	progress := components.NewProgressBar("", p.progressFraction(), false, min(width-8, 60))
	b.WriteString("\n\n")
	b.WriteString(progress.View())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.Card.Width(min(width-4, 76)).Render(b.String()))
}

func (p *PracticeScreen) progressFraction() float64 {
	if p.session.Len() == 0 {
		return 0
	}
	return float64(p.session.SubmittedCount()) / float64(p.session.Len())
}
