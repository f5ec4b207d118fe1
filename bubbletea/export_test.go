package bubbletea

import "github.com/fwojciec/soulspace"

// OpenChat skips sign-in and the survey and opens the chat screen for
// username.
func OpenChat(m Model, username string) Model {
	m.username = username
	updated, _ := m.openChat()
	return updated.(Model)
}

// ChatInput returns the current value of the chat input.
func ChatInput(m Model) string {
	return m.chat.Input.Value()
}

// ChatFocused reports whether the chat input accepts typing.
func ChatFocused(m Model) bool {
	return m.chat.Input.Focused()
}

// ViewportSize returns the transcript viewport dimensions.
func ViewportSize(m Model) (width, height int) {
	return m.chat.Viewport.Width, m.chat.Viewport.Height
}

// SurveyAnswers returns the survey answers collected so far.
func SurveyAnswers(m Model) soulspace.Answers {
	return m.survey.answers
}

// Truncate exports truncate for testing.
func Truncate(s string, width int) string {
	return truncate(s, width)
}
