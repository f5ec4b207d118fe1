package bubbletea

import "github.com/fwojciec/soulspace"

// MessageBlock is a renderable transcript entry.
// View takes a width parameter so the chat view controls layout and blocks
// are testable in isolation.
type MessageBlock interface {
	View(width int) string
}

// newBlock returns the block that renders msg.
func newBlock(msg soulspace.Message, theme soulspace.Theme, styles Styles) MessageBlock {
	switch {
	case msg.Role == soulspace.RoleUser:
		return NewUserMessageBlock(msg.Text, styles)
	case msg.IsFallback():
		return NewNoticeBlock(msg.Text, styles)
	default:
		return NewAssistantBlock(msg.Text, theme, styles)
	}
}
