package soulspace_test

import (
	"strconv"
	"testing"

	"github.com/fwojciec/soulspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTurns() []soulspace.Turn {
	return []soulspace.Turn{
		{Role: soulspace.RoleSystem, Content: "instruction"},
		{Role: soulspace.RoleUser, Content: "hola"},
	}
}

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid defaults", func(t *testing.T) {
		t.Parallel()
		r := soulspace.Request{Turns: validTurns()}
		assert.NoError(t, r.Validate())
	})

	t.Run("valid with all fields", func(t *testing.T) {
		t.Parallel()
		temp := 1.0
		r := soulspace.Request{
			Model:       "llama-3.3-70b-versatile",
			Turns:       validTurns(),
			MaxTokens:   200,
			Temperature: &temp,
		}
		assert.NoError(t, r.Validate())
	})

	t.Run("no turns", func(t *testing.T) {
		t.Parallel()
		err := soulspace.Request{}.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, soulspace.ErrValidation)
	})

	t.Run("temperature bounds", func(t *testing.T) {
		t.Parallel()
		for _, temp := range []float64{-0.1, 2.1} {
			r := soulspace.Request{Turns: validTurns(), Temperature: &temp}
			err := r.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, soulspace.ErrValidation)
			assert.Contains(t, err.Error(), "temperature")
		}
		for _, temp := range []float64{0, 2} {
			r := soulspace.Request{Turns: validTurns(), Temperature: &temp}
			assert.NoError(t, r.Validate())
		}
	})

	t.Run("negative max tokens", func(t *testing.T) {
		t.Parallel()
		r := soulspace.Request{Turns: validTurns(), MaxTokens: -1}
		err := r.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, soulspace.ErrValidation)
		assert.Contains(t, err.Error(), "max_tokens")
	})

	t.Run("max tokens above limit", func(t *testing.T) {
		t.Parallel()
		if strconv.IntSize == 32 {
			t.Skip("limit equals the largest int")
		}
		assert.NoError(t, soulspace.Request{Turns: validTurns(), MaxTokens: soulspace.MaxTokensLimit}.Validate())

		over := int64(soulspace.MaxTokensLimit) + 1
		err := soulspace.Request{Turns: validTurns(), MaxTokens: int(over)}.Validate()
		assert.ErrorIs(t, err, soulspace.ErrValidation)
	})
}

func TestBuildTurns(t *testing.T) {
	t.Parallel()

	t.Run("greeting and new text", func(t *testing.T) {
		t.Parallel()
		history := []soulspace.Message{
			{Role: soulspace.RoleAssistant, Text: "g"},
			{Role: soulspace.RoleUser, Text: "hola"},
		}
		got := soulspace.BuildTurns("instruction", history)
		assert.Equal(t, []soulspace.Turn{
			{Role: soulspace.RoleSystem, Content: "instruction"},
			{Role: soulspace.RoleAssistant, Content: "g"},
			{Role: soulspace.RoleUser, Content: "hola"},
		}, got)
	})

	t.Run("empty history yields only instruction", func(t *testing.T) {
		t.Parallel()
		got := soulspace.BuildTurns("instruction", nil)
		assert.Equal(t, []soulspace.Turn{{Role: soulspace.RoleSystem, Content: "instruction"}}, got)
	})

	t.Run("system role in history is never duplicated", func(t *testing.T) {
		t.Parallel()
		history := []soulspace.Message{{Role: soulspace.RoleSystem, Text: "x"}}
		got := soulspace.BuildTurns("instruction", history)
		require.Len(t, got, 2)
		assert.Equal(t, soulspace.RoleAssistant, got[1].Role)
	})

	t.Run("does not alias history", func(t *testing.T) {
		t.Parallel()
		history := []soulspace.Message{{Role: soulspace.RoleUser, Text: "hola"}}
		got := soulspace.BuildTurns("instruction", history)
		history[0].Text = "changed"
		assert.Equal(t, "hola", got[1].Content)
	})
}
