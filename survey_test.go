package soulspace_test

import (
	"testing"

	"github.com/fwojciec/soulspace"
	"github.com/stretchr/testify/assert"
)

func completeAnswers() soulspace.Answers {
	return soulspace.Answers{
		"estres_frecuencia":   "4",
		"impacto_bienestar":   "3",
		"herramientas_estres": "2",
		"opinion_ia":          "Puede ayudar si respeta la privacidad.",
	}
}

func TestDefaultSurvey(t *testing.T) {
	t.Parallel()
	s := soulspace.DefaultSurvey()
	assert.Len(t, s.Questions, 4)

	var likert, text int
	seen := make(map[string]bool)
	for _, q := range s.Questions {
		assert.NotEmpty(t, q.Prompt)
		assert.False(t, seen[q.ID], "duplicate id %q", q.ID)
		seen[q.ID] = true
		switch q.Kind {
		case soulspace.QuestionLikert:
			likert++
		case soulspace.QuestionText:
			text++
		}
	}
	assert.Equal(t, 3, likert)
	assert.Equal(t, 1, text)
}

func TestSurvey_Validate(t *testing.T) {
	t.Parallel()
	s := soulspace.DefaultSurvey()

	t.Run("complete answers", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, s.Validate(completeAnswers()))
	})

	t.Run("missing answer", func(t *testing.T) {
		t.Parallel()
		a := completeAnswers()
		delete(a, "opinion_ia")
		assert.ErrorIs(t, s.Validate(a), soulspace.ErrIncompleteSurvey)
	})

	t.Run("blank answer", func(t *testing.T) {
		t.Parallel()
		a := completeAnswers()
		a["opinion_ia"] = "   "
		assert.ErrorIs(t, s.Validate(a), soulspace.ErrIncompleteSurvey)
	})

	t.Run("likert out of range", func(t *testing.T) {
		t.Parallel()
		for _, v := range []string{"0", "6", "tres"} {
			a := completeAnswers()
			a["estres_frecuencia"] = v
			err := s.Validate(a)
			assert.ErrorIs(t, err, soulspace.ErrIncompleteSurvey, v)
		}
	})

	t.Run("likert bounds accepted", func(t *testing.T) {
		t.Parallel()
		a := completeAnswers()
		a["estres_frecuencia"] = "1"
		a["impacto_bienestar"] = "5"
		assert.NoError(t, s.Validate(a))
	})
}
