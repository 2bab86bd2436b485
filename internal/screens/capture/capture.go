package capture

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/snapstudy/internal/ocr"
	"github.com/abhisek/snapstudy/internal/question"
	"github.com/abhisek/snapstudy/internal/screen"
	"github.com/abhisek/snapstudy/internal/store"
	"github.com/abhisek/snapstudy/internal/ui/components"
	"github.com/abhisek/snapstudy/internal/ui/layout"
	"github.com/abhisek/snapstudy/internal/ui/theme"
)

type phase int

const (
	phasePath phase = iota
	phaseRecognizing
	phaseReview
	phaseAnswer
	phaseTag
	phaseExplanation
	phaseSaved
)

// CaptureScreen walks a screenshot through recognition, answer and tag
// entry, and the final save.
type CaptureScreen struct {
	questions store.QuestionRepo
	engine    ocr.Engine

	phase   phase
	input   components.TextInput
	choices components.ChoiceList
	draft   question.Draft
	errMsg  string
	saved   int

	progressCh chan ocr.Progress
	status     string
	fraction   float64
}

var _ screen.Screen = (*CaptureScreen)(nil)
var _ screen.KeyHintProvider = (*CaptureScreen)(nil)

// New creates a new CaptureScreen.
func New(questions store.QuestionRepo, engine ocr.Engine) *CaptureScreen {
	return &CaptureScreen{
		questions: questions,
		engine:    engine,
		input:     components.NewTextInput("Path to screenshot...", false, 200),
	}
}

func (c *CaptureScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *CaptureScreen) Title() string {
	return "Capture"
}

func (c *CaptureScreen) KeyHints() []layout.KeyHint {
	switch c.phase {
	case phaseReview:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
		if c.draft.Parsed != nil {
			hints = append(hints, layout.KeyHint{Key: "T", Description: "Save as plain text"})
		}
		return append(hints, layout.KeyHint{Key: "R", Description: "Retry"})
	case phaseAnswer:
		return []layout.KeyHint{
			{Key: "A-E", Description: "Pick correct answer"},
			{Key: "↑↓", Description: "Move"},
		}
	case phaseExplanation:
		return []layout.KeyHint{{Key: "Enter", Description: "Save (blank to skip)"}}
	case phaseSaved:
		return []layout.KeyHint{
			{Key: "C", Description: "Capture another"},
			{Key: "Esc", Description: "Home"},
		}
	default:
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	}
}

func (c *CaptureScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		c.status = msg.Status
		c.fraction = msg.Fraction
		return c, waitProgress(c.progressCh)

	case recognizedMsg:
		return c.handleRecognized(msg)

	case savedMsg:
		if msg.Err != nil {
			c.phase = phaseExplanation
			c.errMsg = msg.Err.Error()
			return c, nil
		}
		c.phase = phaseSaved
		c.saved++
		return c, func() tea.Msg { return screen.QuestionCountMsg(msg.Count) }

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	if c.inputActive() {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *CaptureScreen) inputActive() bool {
	return c.phase == phasePath || c.phase == phaseTag || c.phase == phaseExplanation
}

func (c *CaptureScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch c.phase {
	case phasePath:
		if key == "enter" {
			path := strings.TrimSpace(c.input.Value())
			if path == "" {
				c.errMsg = "enter the path to a screenshot"
				return c, nil
			}
			c.errMsg = ""
			c.phase = phaseRecognizing
			c.status, c.fraction = "", 0
			c.progressCh = make(chan ocr.Progress, 8)
			return c, tea.Batch(c.recognize(path), waitProgress(c.progressCh))
		}

	case phaseReview:
		switch key {
		case "enter":
			c.errMsg = ""
			if c.draft.Parsed != nil {
				c.choices = components.NewChoiceList(c.draft.Parsed.Options, "")
				c.phase = phaseAnswer
			} else {
				c.input = components.NewTextInput("Topic tag, e.g. algebra...", false, 60)
				c.phase = phaseTag
				return c, c.input.Init()
			}
			return c, nil
		case "t":
			if c.draft.Parsed != nil {
				c.draft.Parsed = nil
				c.draft.CorrectAnswer = ""
				c.input = components.NewTextInput("Topic tag, e.g. algebra...", false, 60)
				c.phase = phaseTag
				return c, c.input.Init()
			}
		case "r":
			c.reset()
			return c, c.input.Init()
		}

	case phaseAnswer:
		var picked string
		c.choices, picked = c.choices.Update(msg)
		if picked != "" {
			c.draft.CorrectAnswer = picked
			c.input = components.NewTextInput("Topic tag, e.g. algebra...", false, 60)
			c.phase = phaseTag
			return c, c.input.Init()
		}
		return c, nil

	case phaseTag:
		if key == "enter" {
			tag := strings.TrimSpace(c.input.Value())
			if tag == "" {
				c.errMsg = question.ErrMissingTag.Error()
				return c, nil
			}
			c.errMsg = ""
			c.draft.Tag = tag
			c.input = components.NewTextInput("Optional explanation (markdown ok)...", false, 500)
			c.phase = phaseExplanation
			return c, c.input.Init()
		}

	case phaseExplanation:
		if key == "enter" {
			c.draft.Explanation = strings.TrimSpace(c.input.Value())
			return c, c.save()
		}

	case phaseSaved:
		if key == "c" {
			c.reset()
			return c, c.input.Init()
		}
	}

	if c.inputActive() {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *CaptureScreen) handleRecognized(msg recognizedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		c.phase = phasePath
		c.errMsg = msg.Err.Error()
		return c, nil
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		c.phase = phasePath
		c.errMsg = "no text found in the image"
		return c, nil
	}

	c.draft = question.Draft{RawText: text}
	if parsed, ok := question.Parse(text); ok {
		c.draft.Parsed = parsed
	}
	c.phase = phaseReview
	return c, nil
}

// recognize loads the image and runs the recognition engine. Engine
// progress updates are forwarded to the model through progressCh; the send
// is non-blocking so a stalled UI never blocks the request.
func (c *CaptureScreen) recognize(path string) tea.Cmd {
	ch := c.progressCh
	engine := c.engine
	return func() tea.Msg {
		defer close(ch)

		img, err := ocr.LoadImage(path)
		if err != nil {
			return recognizedMsg{Err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		ctx = ocr.WithPurpose(ctx, "capture")

		result, err := engine.Recognize(ctx, img, func(p ocr.Progress) {
			select {
			case ch <- p:
			default:
			}
		})
		if err != nil {
			return recognizedMsg{Err: err}
		}
		return recognizedMsg{Text: result.Text}
	}
}

// waitProgress delivers the next progress update, re-arming itself from
// Update until the channel closes.
func waitProgress(ch chan ocr.Progress) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return progressMsg(p)
	}
}

func (c *CaptureScreen) save() tea.Cmd {
	draft := c.draft
	return func() tea.Msg {
		q, err := draft.Build(time.Now())
		if err != nil {
			return savedMsg{Err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := c.questions.Add(ctx, q); err != nil {
			return savedMsg{Err: err}
		}
		list, err := c.questions.Load(ctx)
		if err != nil {
			return savedMsg{Err: err}
		}
		return savedMsg{Count: len(list)}
	}
}

func (c *CaptureScreen) reset() {
	c.phase = phasePath
	c.draft = question.Draft{}
	c.errMsg = ""
	c.input = components.NewTextInput("Path to screenshot...", false, 200)
}

func (c *CaptureScreen) View(width, height int) string {
	var body string

	switch c.phase {
	case phasePath:
		body = theme.Body.Bold(true).Render("Capture a question") + "\n\n" +
			theme.Body.Render("Point me at a screenshot and I will read the question out of it.") + "\n\n" +
			c.input.View()

	case phaseRecognizing:
		label := c.status
		if label == "" {
			label = "reading image"
		}
		bar := components.NewProgressBar(label, c.fraction, false, min(width-8, 60))
		body = theme.Body.Bold(true).Render("Recognizing...") + "\n\n" + bar.View() + "\n\n" +
			theme.Hint.Render("This usually takes a few seconds.")

	case phaseReview:
		body = c.reviewView(width)

	case phaseAnswer:
		body = theme.Body.Bold(true).Render("Which option is correct?") + "\n\n" +
			c.choices.View(c.draft.CorrectAnswer, "", false)

	case phaseTag:
		body = theme.Body.Bold(true).Render("Tag this question") + "\n\n" +
			theme.Body.Render("Tags group questions into practice topics.") + "\n\n" +
			c.input.View()

	case phaseExplanation:
		body = theme.Body.Bold(true).Render("Add an explanation?") + "\n\n" +
			theme.Body.Render("Shown after you answer during practice. Leave blank to skip.") + "\n\n" +
			c.input.View()

	case phaseSaved:
		noun := "question"
		if c.saved != 1 {
			noun = "questions"
		}
		body = theme.Correct.Render("Saved!") + "\n\n" +
			theme.Body.Render(fmt.Sprintf("%d %s captured this visit.", c.saved, noun))
	}

	if c.errMsg != "" {
		body += "\n\n" + theme.Incorrect.Render(c.errMsg)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.Card.Width(min(width-4, 76)).Render(body))
}

func (c *CaptureScreen) reviewView(width int) string {
	text := c.draft.RawText
	if len(text) > 600 {
		text = text[:600] + "..."
	}

	body := theme.Body.Bold(true).Render("Here is what I read") + "\n\n" +
		theme.Body.Render(text) + "\n\n"

	if c.draft.Parsed != nil {
		body += theme.Correct.Render(fmt.Sprintf(
			"Detected multiple choice (%d options, %s).",
			len(c.draft.Parsed.Options), c.draft.Parsed.Source,
		))
	} else {
		body += theme.Hint.Render("No option structure detected; this will be saved as a plain text question.")
	}
	return body
}
