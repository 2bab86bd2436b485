package library

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/snapstudy/internal/markdown"
	"github.com/abhisek/snapstudy/internal/question"
	"github.com/abhisek/snapstudy/internal/screen"
	"github.com/abhisek/snapstudy/internal/store"
	"github.com/abhisek/snapstudy/internal/ui/layout"
	"github.com/abhisek/snapstudy/internal/ui/theme"
)

// loadedMsg carries the freshly loaded question list.
type loadedMsg struct {
	Questions []question.SavedQuestion
	Err       error
}

// deletedMsg is sent after a delete completes.
type deletedMsg struct {
	Err error
}

// LibraryScreen lists saved questions newest first, with a detail view and
// deletion.
type LibraryScreen struct {
	questions store.QuestionRepo

	list       []question.SavedQuestion
	cursor     int
	showDetail bool
	confirming bool
	errMsg     string
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)

// New creates a new LibraryScreen.
func New(questions store.QuestionRepo) *LibraryScreen {
	return &LibraryScreen{questions: questions}
}

func (l *LibraryScreen) Init() tea.Cmd {
	return l.load()
}

func (l *LibraryScreen) Title() string {
	return "Library"
}

func (l *LibraryScreen) KeyHints() []layout.KeyHint {
	if l.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	if l.showDetail {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back to list"},
			{Key: "D", Description: "Delete"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Open"},
		{Key: "D", Description: "Delete"},
	}
}

func (l *LibraryScreen) load() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		list, err := l.questions.Load(ctx)
		return loadedMsg{Questions: list, Err: err}
	}
}

func (l *LibraryScreen) delete(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := l.questions.Remove(ctx, id); err != nil {
			return deletedMsg{Err: err}
		}
		return deletedMsg{}
	}
}

func (l *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			l.errMsg = msg.Err.Error()
			return l, nil
		}
		l.list = msg.Questions
		if l.cursor >= len(l.list) {
			l.cursor = len(l.list) - 1
		}
		if l.cursor < 0 {
			l.cursor = 0
		}
		return l, func() tea.Msg { return screen.QuestionCountMsg(len(msg.Questions)) }

	case deletedMsg:
		if msg.Err != nil {
			l.errMsg = msg.Err.Error()
			return l, nil
		}
		l.showDetail = false
		return l, l.load()

	case tea.KeyMsg:
		return l.handleKey(msg)
	}
	return l, nil
}

func (l *LibraryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if l.confirming {
		switch key {
		case "y":
			l.confirming = false
			return l, l.delete(l.list[l.cursor].ID)
		case "n", "esc":
			l.confirming = false
		}
		return l, nil
	}

	switch key {
	case "up", "k":
		if !l.showDetail && l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if !l.showDetail && l.cursor < len(l.list)-1 {
			l.cursor++
		}
	case "enter":
		if len(l.list) > 0 {
			l.showDetail = !l.showDetail
		}
	case "d":
		if len(l.list) > 0 {
			l.confirming = true
		}
	}
	return l, nil
}

func (l *LibraryScreen) View(width, height int) string {
	if l.errMsg != "" {
		return centered(width, height, theme.Incorrect.Render(l.errMsg))
	}
	if len(l.list) == 0 {
		return centered(width, height,
			theme.Subtitle.Render("Nothing saved yet.")+"\n\n"+
				theme.Hint.Render("Capture a screenshot from the home menu to build your library."))
	}
	if l.confirming {
		return centered(width, height, theme.Card.Render(
			theme.Body.Bold(true).Render("Delete this question?")+"\n\n"+
				theme.Body.Render(preview(l.list[l.cursor].RawText, 60))+"\n\n"+
				theme.Hint.Render("y to delete, n to keep")))
	}
	if l.showDetail {
		return l.detailView(width, height)
	}
	return l.listView(width, height)
}

func (l *LibraryScreen) listView(width, height int) string {
	var b strings.Builder
	for i, q := range l.list {
		prefix := "  "
		if i == l.cursor {
			prefix = "▸ "
		}

		badge := "text"
		if q.Kind == question.KindMultipleChoice {
			badge = fmt.Sprintf("%d-choice", len(q.Parsed.Options))
		}

		line := fmt.Sprintf("%s%-40s", prefix, preview(q.RawText, 38))
		meta := fmt.Sprintf("  %s · %s · %s", q.Tag, badge, q.CreatedAt.Format("Jan 2"))

		if i == l.cursor {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta))
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().Width(width).Height(height).Padding(1, 4).Render(b.String())
}

func (l *LibraryScreen) detailView(width, height int) string {
	q := l.list[l.cursor]

	var b strings.Builder
	b.WriteString(theme.Tag.Render("#" + q.Tag))
	b.WriteString("  ")
	b.WriteString(theme.Subtitle.Render(q.CreatedAt.Format("Jan 2, 2006 15:04")))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(q.RawText))
	b.WriteString("\n")

	if q.Parsed != nil {
		b.WriteString("\n")
		for _, opt := range q.Parsed.Options {
			line := fmt.Sprintf("  %s) %s", opt.Letter, markdown.FormatMath(opt.Text))
			if opt.Letter == q.CorrectAnswer {
				b.WriteString(theme.Correct.Render(line + "  ✓"))
			} else {
				b.WriteString(theme.Body.Render(line))
			}
			b.WriteString("\n")
		}
	}

	if q.Explanation != "" {
		r := markdown.NewRenderer(min(width-8, 72))
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render("Explanation"))
		b.WriteString("\n")
		b.WriteString(r.Render(q.Explanation))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(width).Height(height).Padding(1, 4).Render(
		theme.Card.Width(min(width-8, 76)).Render(b.String()))
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func preview(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > n {
		return s[:n-1] + "…"
	}
	return s
}
