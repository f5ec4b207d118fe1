package soulspace_test

import (
	"testing"

	"github.com/fwojciec/soulspace"
	"github.com/stretchr/testify/assert"
)

func TestRole_Values(t *testing.T) {
	t.Parallel()
	assert.Equal(t, soulspace.Role("system"), soulspace.RoleSystem)
	assert.Equal(t, soulspace.Role("user"), soulspace.RoleUser)
	assert.Equal(t, soulspace.Role("assistant"), soulspace.RoleAssistant)
}

func TestMessage_IsFallback(t *testing.T) {
	t.Parallel()
	assert.True(t, soulspace.Message{Role: soulspace.RoleAssistant, Text: soulspace.FallbackNoReply}.IsFallback())
	assert.True(t, soulspace.Message{Role: soulspace.RoleAssistant, Text: soulspace.FallbackConnection}.IsFallback())
	assert.False(t, soulspace.Message{Role: soulspace.RoleAssistant, Text: "Entiendo."}.IsFallback())
	assert.False(t, soulspace.Message{Role: soulspace.RoleUser, Text: soulspace.FallbackConnection}.IsFallback())
}

func TestGreeting(t *testing.T) {
	t.Parallel()
	g := soulspace.Greeting("ana")
	assert.Equal(t, "Hola ana, soy tu asistente de bienestar de SoulSpace. "+
		"Estoy aquí para escucharte y ayudarte a explorar tus emociones. "+
		"¿Cómo te sientes hoy o de qué te gustaría hablar?", g)
}

func TestFallbackTexts(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Lo siento, no pude generar una respuesta. Por favor, intenta de nuevo.", soulspace.FallbackNoReply)
	assert.Equal(t, "Hubo un error en la conexión. Por favor, verifica tu red.", soulspace.FallbackConnection)
	assert.NotEqual(t, soulspace.FallbackNoReply, soulspace.FallbackConnection)
}

func TestSystemInstruction(t *testing.T) {
	t.Parallel()
	assert.Contains(t, soulspace.SystemInstruction, "No ofrezcas diagnósticos")
	assert.Contains(t, soulspace.SystemInstruction, "2-3 frases cortas")
	assert.Equal(t, 200, soulspace.DefaultMaxTokens)
}

func TestUsage_ZeroValue(t *testing.T) {
	t.Parallel()
	var u soulspace.Usage
	assert.Equal(t, 0, u.InputTokens)
	assert.Equal(t, 0, u.OutputTokens)
}
