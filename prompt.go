package soulspace

import "fmt"

// SystemInstruction is the fixed instruction prefixed to every request.
const SystemInstruction = "Actúa como un psicólogo de bienestar de SoulSpace. " +
	"Responde de manera empática, comprensiva y profesional. " +
	"Ofrece apoyo o sugerencias generales relacionadas con el bienestar emocional, estrés laboral o gestión de emociones. " +
	"No ofrezcas diagnósticos ni reemplaces el asesoramiento profesional. " +
	"Limita tus respuestas a 2-3 frases cortas."

// DefaultMaxTokens bounds the reply length sent with every request. Replies
// are kept short by the instruction; this is only an upper bound.
const DefaultMaxTokens = 200

// Fallback replies appended in place of an assistant answer.
const (
	FallbackNoReply    = "Lo siento, no pude generar una respuesta. Por favor, intenta de nuevo."
	FallbackConnection = "Hubo un error en la conexión. Por favor, verifica tu red."
)

const greetingTemplate = "Hola %s, soy tu asistente de bienestar de SoulSpace. " +
	"Estoy aquí para escucharte y ayudarte a explorar tus emociones. " +
	"¿Cómo te sientes hoy o de qué te gustaría hablar?"

// Greeting returns the opening assistant message for username.
func Greeting(username string) string {
	return fmt.Sprintf(greetingTemplate, username)
}
