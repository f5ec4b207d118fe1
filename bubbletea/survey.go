package bubbletea

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/soulspace"
)

// incompleteSurveyMessage is shown when the survey is submitted with missing
// answers.
const incompleteSurveyMessage = "Responde todas las preguntas para continuar."

// surveyForm walks through the survey one question at a time. Answers are
// validated on submit and then dropped.
type surveyForm struct {
	survey  soulspace.Survey
	answers soulspace.Answers
	current int
	text    textinput.Model
	err     string

	styles Styles
}

func newSurveyForm(survey soulspace.Survey, styles Styles) surveyForm {
	ti := textinput.New()
	ti.Placeholder = "Escribe tu respuesta..."
	ti.Prompt = "> "
	ti.CharLimit = 500

	return surveyForm{
		survey:  survey,
		answers: make(soulspace.Answers, len(survey.Questions)),
		text:    ti,
		styles:  styles,
	}
}

func (f surveyForm) question() soulspace.Question {
	return f.survey.Questions[f.current]
}

// start focuses the first question.
func (f surveyForm) start() (surveyForm, tea.Cmd) {
	cmd := f.goTo(0)
	return f, cmd
}

// update reports done once every answer validates.
func (f surveyForm) update(msg tea.Msg) (surveyForm, tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		f.text, cmd = f.text.Update(msg)
		return f, cmd, false
	}

	switch key.Type {
	case tea.KeyTab, tea.KeyDown:
		cmd := f.goTo(f.current + 1)
		return f, cmd, false
	case tea.KeyShiftTab, tea.KeyUp:
		cmd := f.goTo(f.current - 1)
		return f, cmd, false
	case tea.KeyEnter:
		if f.current < len(f.survey.Questions)-1 {
			cmd := f.goTo(f.current + 1)
			return f, cmd, false
		}
		if err := f.survey.Validate(f.answers); err != nil {
			f.err = incompleteSurveyMessage
			return f, nil, false
		}
		f.err = ""
		return f, nil, true
	}

	q := f.question()
	if q.Kind == soulspace.QuestionText {
		var cmd tea.Cmd
		f.text, cmd = f.text.Update(msg)
		f.answers[q.ID] = f.text.Value()
		return f, cmd, false
	}

	f.answers[q.ID] = likertKey(key, f.answers[q.ID])
	return f, nil, false
}

// likertKey applies a key press to a Likert answer.
func likertKey(key tea.KeyMsg, answer string) string {
	n, _ := strconv.Atoi(answer)
	switch key.Type {
	case tea.KeyRight:
		n = min(max(n+1, soulspace.LikertMin), soulspace.LikertMax)
	case tea.KeyLeft:
		n = max(n-1, soulspace.LikertMin)
	case tea.KeyRunes:
		if len(key.Runes) != 1 {
			return answer
		}
		d, err := strconv.Atoi(string(key.Runes))
		if err != nil || d < soulspace.LikertMin || d > soulspace.LikertMax {
			return answer
		}
		n = d
	default:
		return answer
	}
	return strconv.Itoa(n)
}

// goTo moves to question i, clamped to the survey bounds.
func (f *surveyForm) goTo(i int) tea.Cmd {
	f.current = max(0, min(i, len(f.survey.Questions)-1))
	q := f.question()
	if q.Kind != soulspace.QuestionText {
		f.text.Blur()
		return nil
	}
	f.text.SetValue(f.answers[q.ID])
	f.text.CursorEnd()
	return f.text.Focus()
}

func (f surveyForm) view(width int) string {
	q := f.question()
	wrap := lipgloss.NewStyle().Width(max(width, 1))

	var b strings.Builder
	b.WriteString(f.styles.Title.Render(f.survey.Title))
	b.WriteString("\n")
	b.WriteString(f.styles.Muted.Render(fmt.Sprintf("Pregunta %d de %d", f.current+1, len(f.survey.Questions))))
	b.WriteString("\n\n")
	b.WriteString(wrap.Render(f.styles.Label.Render(q.Prompt)))
	b.WriteString("\n\n")

	if q.Kind == soulspace.QuestionText {
		b.WriteString(f.text.View())
	} else {
		b.WriteString(f.likertView(f.answers[q.ID]))
		b.WriteString("\n")
		b.WriteString(f.styles.Muted.Render(truncate("1 = Totalmente en desacuerdo, 5 = Totalmente de acuerdo", width)))
	}
	b.WriteString("\n\n")

	if f.err != "" {
		b.WriteString(f.styles.Error.Render(f.err))
		b.WriteString("\n\n")
	}
	b.WriteString(f.styles.Muted.Render(truncate("Enter para continuar, Tab para cambiar de pregunta", width)))
	return b.String()
}

func (f surveyForm) likertView(answer string) string {
	options := make([]string, 0, soulspace.LikertMax-soulspace.LikertMin+1)
	for n := soulspace.LikertMin; n <= soulspace.LikertMax; n++ {
		label := "[" + strconv.Itoa(n) + "]"
		if strconv.Itoa(n) == answer {
			label = f.styles.Selected.Render(label)
		}
		options = append(options, label)
	}
	return "  " + strings.Join(options, " ")
}
