package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/snapstudy/internal/ui/theme"
)

// TagItem is one row in a TagPicker.
type TagItem struct {
	Name  string
	Count int
}

// TagPicker is a checkbox multi-select over topic tags.
type TagPicker struct {
	Items   []TagItem
	Checked map[string]bool
	Cursor  int
}

// NewTagPicker creates a picker with nothing checked.
func NewTagPicker(items []TagItem) TagPicker {
	return TagPicker{
		Items:   items,
		Checked: make(map[string]bool),
	}
}

// Update handles cursor movement and toggling.
func (p TagPicker) Update(msg tea.Msg) (TagPicker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Cursor > 0 {
			p.Cursor--
		}
	case "down", "j":
		if p.Cursor < len(p.Items)-1 {
			p.Cursor++
		}
	case " ", "x":
		if p.Cursor >= 0 && p.Cursor < len(p.Items) {
			name := p.Items[p.Cursor].Name
			p.Checked[name] = !p.Checked[name]
		}
	case "a":
		// Toggle all: check everything unless everything is checked.
		if p.CheckedCount() == len(p.Items) {
			p.Checked = make(map[string]bool)
		} else {
			for _, item := range p.Items {
				p.Checked[item.Name] = true
			}
		}
	}

	return p, nil
}

// View renders the checkbox list with per-tag question counts.
func (p TagPicker) View() string {
	var s string
	for i, item := range p.Items {
		prefix := "  "
		if i == p.Cursor {
			prefix = "▸ "
		}

		box := "[ ]"
		if p.Checked[item.Name] {
			box = "[x]"
		}

		noun := "questions"
		if item.Count == 1 {
			noun = "question"
		}
		line := fmt.Sprintf("%s%s %s", prefix, box, item.Name)
		count := fmt.Sprintf("  (%d %s)", item.Count, noun)

		if i == p.Cursor {
			s += theme.Selected.Render(line)
		} else if p.Checked[item.Name] {
			s += theme.Tag.Render(line)
		} else {
			s += theme.Unselected.Render(line)
		}
		s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(count) + "\n"
	}
	return s
}

// Selection returns the checked-state map keyed by tag name.
func (p TagPicker) Selection() map[string]bool {
	return p.Checked
}

// CheckedCount returns how many tags are currently checked.
func (p TagPicker) CheckedCount() int {
	n := 0
	for _, on := range p.Checked {
		if on {
			n++
		}
	}
	return n
}
