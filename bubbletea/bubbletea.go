// Package bubbletea provides a Bubble Tea TUI for SoulSpace. The program walks
// the user through sign-in and a short wellbeing survey before opening a chat
// with the assistant.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/soulspace"
)

// SessionFunc creates the conversation for a signed-in user. It is called once,
// after the survey is submitted, with the username returned by
// [soulspace.Credentials.Authenticate].
type SessionFunc func(username string) *soulspace.Session

// Config wires the TUI to its collaborators.
type Config struct {
	Credentials soulspace.Credentials
	// Survey is shown after sign-in. A survey without questions is skipped.
	Survey     soulspace.Survey
	NewSession SessionFunc
	Theme      soulspace.Theme
}

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. The context is used for graceful shutdown: when cancelled, the
// program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// ReplyMsg signals that a round trip resolved and Message was appended to the
// transcript.
type ReplyMsg struct {
	Message soulspace.Message
}

// resolve runs the round trip off the UI goroutine.
func resolve(ex *soulspace.Exchange) tea.Cmd {
	return func() tea.Msg {
		return ReplyMsg{Message: ex.Resolve(context.Background())}
	}
}
