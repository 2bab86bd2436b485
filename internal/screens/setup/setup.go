package setup

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/snapstudy/internal/practice"
	"github.com/abhisek/snapstudy/internal/question"
	"github.com/abhisek/snapstudy/internal/router"
	"github.com/abhisek/snapstudy/internal/screen"
	practicescreen "github.com/abhisek/snapstudy/internal/screens/practice"
	"github.com/abhisek/snapstudy/internal/store"
	"github.com/abhisek/snapstudy/internal/ui/components"
	"github.com/abhisek/snapstudy/internal/ui/layout"
	"github.com/abhisek/snapstudy/internal/ui/theme"
)

// loadedMsg carries the question bank for session setup.
type loadedMsg struct {
	Questions []question.SavedQuestion
	Err       error
}

type focus int

const (
	focusTags focus = iota
	focusCount
)

// SetupScreen collects the tag selection and question count, then starts a
// practice session.
type SetupScreen struct {
	questions store.QuestionRepo

	bank   []question.SavedQuestion
	picker components.TagPicker
	count  components.TextInput
	focus  focus
	errMsg string
	loaded bool
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a new SetupScreen.
func New(questions store.QuestionRepo) *SetupScreen {
	count := components.NewTextInput(`"all" or a number...`, false, 6)
	count.Model.SetValue("all")
	return &SetupScreen{
		questions: questions,
		count:     count,
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.load()
}

func (s *SetupScreen) Title() string {
	return "Practice Setup"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle tag"},
		{Key: "A", Description: "Toggle all"},
		{Key: "Tab", Description: "Switch field"},
		{Key: "Enter", Description: "Start"},
	}
}

func (s *SetupScreen) load() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		list, err := s.questions.Load(ctx)
		return loadedMsg{Questions: list, Err: err}
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.bank = msg.Questions
		s.picker = components.NewTagPicker(tagItems(msg.Questions))
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			if s.focus == focusTags {
				s.focus = focusCount
				return s, s.count.Init()
			}
			s.focus = focusTags
			return s, nil
		case "enter":
			return s.start()
		}

		if s.focus == focusTags {
			var cmd tea.Cmd
			s.picker, cmd = s.picker.Update(msg)
			return s, cmd
		}
		var cmd tea.Cmd
		s.count, cmd = s.count.Update(msg)
		return s, cmd
	}

	if s.focus == focusCount {
		var cmd tea.Cmd
		s.count, cmd = s.count.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SetupScreen) start() (screen.Screen, tea.Cmd) {
	count, err := practice.ParseCount(s.count.Value())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	session, err := practice.Build(s.bank, s.picker.Selection(), count, nil)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.errMsg = ""
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: practicescreen.New(session)}
	}
}

func (s *SetupScreen) View(width, height int) string {
	if !s.loaded && s.errMsg == "" {
		return centered(width, height, theme.Subtitle.Render("Loading..."))
	}

	if len(s.picker.Items) == 0 {
		return centered(width, height,
			theme.Subtitle.Render("No practicable questions yet.")+"\n\n"+
				theme.Hint.Render("Practice needs multiple-choice captures with a correct answer set."))
	}

	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("Pick topics to practice"))
	b.WriteString("\n\n")
	b.WriteString(s.picker.View())
	b.WriteString("\n")

	countLabel := "How many questions? "
	if s.focus == focusCount {
		countLabel = "▸ " + countLabel
	} else {
		countLabel = "  " + countLabel
	}
	b.WriteString(theme.Body.Render(countLabel))
	b.WriteString(s.count.View())
	b.WriteString("\n")

	if n := s.picker.CheckedCount(); n > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d topic(s) selected", n)))
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	}

	return centered(width, height, theme.Card.Width(min(width-4, 70)).Render(b.String()))
}

// tagItems reduces the bank to its practicable tags with question counts,
// sorted by name.
func tagItems(bank []question.SavedQuestion) []components.TagItem {
	counts := make(map[string]int)
	for i := range bank {
		if bank[i].Practicable() {
			counts[bank[i].Tag]++
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]components.TagItem, 0, len(names))
	for _, name := range names {
		items = append(items, components.TagItem{Name: name, Count: counts[name]})
	}
	return items
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
