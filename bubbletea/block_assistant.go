package bubbletea

import (
	"github.com/fwojciec/soulspace"
	"github.com/fwojciec/soulspace/markdown"
)

var _ MessageBlock = (*AssistantBlock)(nil)

// assistantLabel heads every assistant reply.
const assistantLabel = "SoulSpace"

// AssistantBlock renders an assistant reply as markdown under a name label.
// Rendered output is cached per width since the text never changes.
type AssistantBlock struct {
	text    string
	theme   soulspace.Theme
	styles  Styles
	byWidth map[int]string
}

// NewAssistantBlock creates an AssistantBlock.
func NewAssistantBlock(text string, theme soulspace.Theme, styles Styles) *AssistantBlock {
	return &AssistantBlock{
		text:    text,
		theme:   theme,
		styles:  styles,
		byWidth: make(map[int]string),
	}
}

func (b *AssistantBlock) View(width int) string {
	if cached, ok := b.byWidth[width]; ok {
		return cached
	}
	out := b.styles.Assistant.Render(assistantLabel) + "\n" + markdown.Render(b.text, width, b.theme)
	b.byWidth[width] = out
	return out
}
