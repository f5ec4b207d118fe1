package bubbletea

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/soulspace"
	"github.com/mattn/go-runewidth"
)

// chatView shows the session transcript above a single-line input.
type chatView struct {
	// Input is the message input.
	Input textinput.Model
	// Viewport is the scrollable transcript.
	Viewport viewport.Model

	spinner spinner.Model
	session *soulspace.Session
	theme   soulspace.Theme
	styles  Styles

	blocks   []MessageBlock
	rendered int // transcript messages already turned into blocks
	width    int
	ready    bool
}

func newChatView(session *soulspace.Session, theme soulspace.Theme, styles Styles) chatView {
	ti := textinput.New()
	ti.Placeholder = "Escribe un mensaje..."
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = styles.Accent

	return chatView{
		Input:   ti,
		spinner: sp,
		session: session,
		theme:   theme,
		styles:  styles,
	}
}

func (c chatView) update(msg tea.Msg) (chatView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return c.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		return c.handleKey(msg)

	case ReplyMsg:
		c = c.sync()
		cmd := c.Input.Focus()
		return c, cmd

	case spinner.TickMsg:
		if !c.session.Busy() {
			return c, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	c.Viewport, cmd = c.Viewport.Update(msg)
	cmds = append(cmds, cmd)
	if !c.session.Busy() {
		c.Input, cmd = c.Input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return c, tea.Batch(cmds...)
}

func (c chatView) resize(width, height int) chatView {
	const chrome = 3 // header, status and input lines
	vpHeight := max(height-chrome, 1)

	c.width = width
	c.Input.Width = max(width-len(c.Input.Prompt)-1, 1)
	if !c.ready {
		c.Viewport = viewport.New(width, vpHeight)
		c.ready = true
	} else {
		c.Viewport.Width = width
		c.Viewport.Height = vpHeight
	}
	c.blocks = nil
	c.rendered = 0
	return c.sync()
}

func (c chatView) handleKey(msg tea.KeyMsg) (chatView, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		if c.session.Busy() {
			return c, nil
		}
		ex, ok := c.session.Begin(c.Input.Value())
		if !ok {
			return c, nil
		}
		c.Input.SetValue("")
		c.Input.Blur()
		c = c.sync()
		return c, tea.Batch(resolve(ex), c.spinner.Tick)
	}

	if c.session.Busy() {
		var cmd tea.Cmd
		c.Viewport, cmd = c.Viewport.Update(msg)
		return c, cmd
	}

	// Character keys go only to the input so letters like 'j' and 'k' do
	// not scroll the viewport.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
		c.Viewport, cmd = c.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	c.Input, cmd = c.Input.Update(msg)
	cmds = append(cmds, cmd)
	return c, tea.Batch(cmds...)
}

// sync appends blocks for transcript messages not yet rendered.
func (c chatView) sync() chatView {
	transcript := c.session.Transcript()
	for _, msg := range transcript[c.rendered:] {
		c.blocks = append(c.blocks, newBlock(msg, c.theme, c.styles))
	}
	c.rendered = len(transcript)
	if c.ready {
		c.Viewport.SetContent(c.renderContent())
		c.Viewport.GotoBottom()
	}
	return c
}

func (c chatView) renderContent() string {
	views := make([]string, 0, len(c.blocks))
	for _, block := range c.blocks {
		views = append(views, block.View(c.Viewport.Width))
	}
	return strings.Join(views, "\n\n")
}

func (c chatView) view() string {
	if !c.ready {
		return "Cargando..."
	}

	var b strings.Builder
	b.WriteString(c.styles.Accent.Render(truncate("SoulSpace · "+c.session.Username(), c.width)))
	b.WriteString("\n")
	b.WriteString(c.Viewport.View())
	b.WriteString("\n")
	b.WriteString(c.statusLine())
	b.WriteString("\n")
	b.WriteString(c.Input.View())
	return b.String()
}

func (c chatView) statusLine() string {
	if c.session.Busy() {
		return c.spinner.View() + " " + c.styles.Muted.Render("Escribiendo...")
	}
	return c.styles.Muted.Render(truncate("Enter para enviar, Ctrl+C para salir", c.width))
}

// truncate shortens s to fit width terminal cells. A non-positive width leaves
// s unchanged.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
