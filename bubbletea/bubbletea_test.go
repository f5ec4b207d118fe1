package bubbletea_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/soulspace"
	bt "github.com/fwojciec/soulspace/bubbletea"
	"github.com/stretchr/testify/require"
)

// newConfig returns a Config with the demo credentials and the default survey
// whose sessions talk to p.
func newConfig(p soulspace.Provider) bt.Config {
	return bt.Config{
		Credentials: soulspace.DefaultCredentials,
		Survey:      soulspace.DefaultSurvey(),
		NewSession: func(username string) *soulspace.Session {
			return soulspace.New(username, p)
		},
		Theme: soulspace.DefaultTheme(),
	}
}

// initModel creates a model and sends a WindowSizeMsg to size the screens.
func initModel(t *testing.T, cfg bt.Config) bt.Model {
	t.Helper()
	return updateModel(t, bt.New(cfg), tea.WindowSizeMsg{Width: 80, Height: 24})
}

// chatModel returns a sized model already on the chat screen for "test".
func chatModel(t *testing.T, p soulspace.Provider) bt.Model {
	t.Helper()
	m := bt.OpenChat(initModel(t, newConfig(p)), "test")
	require.Equal(t, bt.ScreenChat, m.Screen())
	return m
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	m, _ = updateModelCmd(t, m, msg)
	return m
}

// updateModelCmd sends a message and returns the updated Model and command.
func updateModelCmd(t *testing.T, m bt.Model, msg tea.Msg) (bt.Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model, cmd
}

// typeString sends s one rune at a time.
func typeString(t *testing.T, m bt.Model, s string) bt.Model {
	t.Helper()
	for _, r := range s {
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func pressEnter(t *testing.T, m bt.Model) (bt.Model, tea.Cmd) {
	t.Helper()
	return updateModelCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

// reply runs cmd and returns the ReplyMsg it produces.
func reply(t *testing.T, cmd tea.Cmd) bt.ReplyMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			if r, ok := c().(bt.ReplyMsg); ok {
				return r
			}
		}
		t.Fatal("batch produced no ReplyMsg")
	}
	r, ok := msg.(bt.ReplyMsg)
	require.True(t, ok, "got %T, want ReplyMsg", msg)
	return r
}
