package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/snapstudy/internal/markdown"
	"github.com/abhisek/snapstudy/internal/question"
	"github.com/abhisek/snapstudy/internal/ui/theme"
)

// ChoiceList renders a question's lettered options and tracks the cursor.
// Selection and submission state live outside the component so answers
// survive navigation between questions.
type ChoiceList struct {
	Options []question.Option
	Cursor  int
}

// NewChoiceList creates a choice list positioned at the given letter, or
// at the top when the letter is empty or unknown.
func NewChoiceList(options []question.Option, selected string) ChoiceList {
	c := ChoiceList{Options: options}
	for i, opt := range options {
		if opt.Letter == selected {
			c.Cursor = i
			break
		}
	}
	return c
}

// Update handles cursor movement and letter hotkeys. It returns the letter
// under the cursor when the user picks an option, or "" otherwise.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, string) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, ""
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter", " ":
		if c.Cursor >= 0 && c.Cursor < len(c.Options) {
			return c, c.Options[c.Cursor].Letter
		}
	default:
		// Letter hotkeys jump and select in one stroke.
		if len(key) == 1 {
			letter := strings.ToUpper(key)
			for i, opt := range c.Options {
				if opt.Letter == letter {
					c.Cursor = i
					return c, letter
				}
			}
		}
	}

	return c, ""
}

// View renders the option list. Before submission the selected letter is
// highlighted; after submission the correct option is green and a wrong
// pick is red.
func (c ChoiceList) View(selected, correct string, submitted bool) string {
	var b strings.Builder

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor && !submitted {
			prefix = "▸ "
		}

		marker := " "
		if opt.Letter == selected {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s) %s", prefix, marker, opt.Letter, markdown.FormatMath(opt.Text))

		var style lipgloss.Style
		switch {
		case submitted && opt.Letter == correct:
			style = theme.Correct
		case submitted && opt.Letter == selected:
			style = theme.Incorrect
		case submitted:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case opt.Letter == selected:
			style = theme.Selected
		case i == c.Cursor:
			style = lipgloss.NewStyle().Foreground(theme.Primary)
		default:
			style = theme.Unselected
		}

		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
