package soulspace

import (
	"fmt"
	"strconv"
	"strings"
)

// QuestionKind distinguishes how a survey question is answered.
type QuestionKind int

const (
	QuestionLikert QuestionKind = iota // 1 (totally disagree) to 5 (totally agree).
	QuestionText                       // Free-form text.
)

// Likert scale bounds.
const (
	LikertMin = 1
	LikertMax = 5
)

// Question is one survey item.
type Question struct {
	ID     string
	Prompt string
	Kind   QuestionKind
}

// Survey is the wellness questionnaire shown between login and chat. Its
// answers are validated and then discarded.
type Survey struct {
	Title     string
	Questions []Question
}

// Answers maps question IDs to raw answer text.
type Answers map[string]string

// DefaultSurvey returns the wellness questionnaire.
func DefaultSurvey() Survey {
	return Survey{
		Title: "Tu Bienestar en SoulSpace",
		Questions: []Question{
			{
				ID:     "estres_frecuencia",
				Prompt: "Me siento estresado con frecuencia debido a mis actividades laborales.",
				Kind:   QuestionLikert,
			},
			{
				ID:     "impacto_bienestar",
				Prompt: "El trabajo ha afectado negativamente mi bienestar emocional o mental.",
				Kind:   QuestionLikert,
			},
			{
				ID:     "herramientas_estres",
				Prompt: "Siento que tengo herramientas suficientes para manejar el estrés diario.",
				Kind:   QuestionLikert,
			},
			{
				ID:     "opinion_ia",
				Prompt: "¿Qué opinas sobre el uso de inteligencia artificial para cuidar la salud emocional de los empleados?",
				Kind:   QuestionText,
			},
		},
	}
}

// Validate checks that every question has an answer and that Likert answers
// are within range.
func (s Survey) Validate(a Answers) error {
	for _, q := range s.Questions {
		v := strings.TrimSpace(a[q.ID])
		if v == "" {
			return fmt.Errorf("question %q unanswered: %w", q.ID, ErrIncompleteSurvey)
		}
		if q.Kind != QuestionLikert {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < LikertMin || n > LikertMax {
			return fmt.Errorf("question %q: %q not in [%d, %d]: %w", q.ID, v, LikertMin, LikertMax, ErrIncompleteSurvey)
		}
	}
	return nil
}
