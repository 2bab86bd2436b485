package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/snapstudy/internal/ocr"
	"github.com/abhisek/snapstudy/internal/router"
	"github.com/abhisek/snapstudy/internal/screen"
	"github.com/abhisek/snapstudy/internal/screens/capture"
	"github.com/abhisek/snapstudy/internal/screens/library"
	"github.com/abhisek/snapstudy/internal/screens/setup"
	"github.com/abhisek/snapstudy/internal/store"
	"github.com/abhisek/snapstudy/internal/ui/components"
	"github.com/abhisek/snapstudy/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu          components.Menu
	questionCount int
	tagCount      int
	readyCount    int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(questions store.QuestionRepo, events store.EventRepo, engine ocr.Engine) *HomeScreen {
	var questionCount, tagCount, readyCount int
	if questions != nil {
		if list, err := questions.Load(context.Background()); err == nil {
			questionCount = len(list)
			tags := make(map[string]bool)
			for i := range list {
				tags[list[i].Tag] = true
				if list[i].Practicable() {
					readyCount++
				}
			}
			tagCount = len(tags)
		}
	}

	items := []components.MenuItem{
		{Label: "CAPTURE QUESTION", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: capture.New(questions, engine)}
			}
		}},
		{Label: "QUESTION LIBRARY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: library.New(questions)}
			}
		}},
		{Label: "PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(questions)}
			}
		}, Disabled: readyCount == 0},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:          components.NewMenu(items),
		questionCount: questionCount,
		tagCount:      tagCount,
		readyCount:    readyCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return func() tea.Msg { return screen.QuestionCountMsg(h.questionCount) }
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	banner := theme.Title.Render(Banner())

	stats := theme.Subtitle.Render(fmt.Sprintf(
		"%d saved  ·  %d tags  ·  %d ready to practice",
		h.questionCount, h.tagCount, h.readyCount,
	))

	var hint string
	if h.questionCount == 0 {
		hint = theme.Hint.Render("Capture a screenshot of a question to get started.")
	} else if h.readyCount == 0 {
		hint = theme.Hint.Render("Practice unlocks once a capture parses as multiple choice.")
	}

	parts := []string{banner, "", stats, "", h.menu.View()}
	if hint != "" {
		parts = append(parts, hint)
	}
	content := strings.Join(parts, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
