package bubbletea

import (
	"github.com/charmbracelet/lipgloss"
)

var _ MessageBlock = (*UserMessageBlock)(nil)

// userLabel heads every message the user sends.
const userLabel = "Tú"

// UserMessageBlock renders a user message as an indented body under a name
// label, mirroring AssistantBlock.
type UserMessageBlock struct {
	text   string
	styles Styles
}

// NewUserMessageBlock creates a UserMessageBlock.
func NewUserMessageBlock(text string, styles Styles) *UserMessageBlock {
	return &UserMessageBlock{text: text, styles: styles}
}

func (b *UserMessageBlock) View(width int) string {
	body := lipgloss.NewStyle().Width(width).PaddingLeft(2).Render(b.text)
	return b.styles.UserMsg.Render(userLabel) + "\n" + body
}
