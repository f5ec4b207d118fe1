package bubbletea

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/soulspace"
)

var _ tea.Model = Model{}

// Screen identifies the step of the flow the user is on.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenSurvey
	ScreenChat
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenSurvey:
		return "survey"
	case ScreenChat:
		return "chat"
	default:
		return "unknown"
	}
}

// Model is the Bubble Tea model for the SoulSpace TUI. It routes between the
// login, survey and chat screens in that order.
type Model struct {
	cfg    Config
	styles Styles
	screen Screen

	login  loginForm
	survey surveyForm
	chat   chatView

	username string
	width    int
	height   int
}

// New creates a Model that starts on the login screen.
func New(cfg Config) Model {
	styles := NewStyles(cfg.Theme)
	return Model{
		cfg:    cfg,
		styles: styles,
		screen: ScreenLogin,
		login:  newLoginForm(cfg.Credentials, styles),
	}
}

// Screen returns the active screen.
func (m Model) Screen() Screen { return m.screen }

// Username returns the signed-in username, or "" before sign-in.
func (m Model) Username() string { return m.username }

// Session returns the chat session, or nil before the chat screen opens.
func (m Model) Session() *soulspace.Session { return m.chat.session }

// Busy reports whether a reply is outstanding.
func (m Model) Busy() bool {
	return m.chat.session != nil && m.chat.session.Busy()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.screen == ScreenChat {
			m.chat = m.chat.resize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}

	switch m.screen {
	case ScreenLogin:
		var cmd tea.Cmd
		var username string
		m.login, cmd, username = m.login.update(msg)
		if username == "" {
			return m, cmd
		}
		m.username = username
		if len(m.cfg.Survey.Questions) == 0 {
			return m.openChat()
		}
		m.screen = ScreenSurvey
		m.survey, cmd = newSurveyForm(m.cfg.Survey, m.styles).start()
		return m, cmd

	case ScreenSurvey:
		var cmd tea.Cmd
		var done bool
		m.survey, cmd, done = m.survey.update(msg)
		if !done {
			return m, cmd
		}
		return m.openChat()

	case ScreenChat:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.update(msg)
		return m, cmd
	}
	return m, nil
}

// openChat creates the session and switches to the chat screen.
func (m Model) openChat() (tea.Model, tea.Cmd) {
	session := m.cfg.NewSession(m.username)
	m.chat = newChatView(session, m.cfg.Theme, m.styles)
	if m.width > 0 {
		m.chat = m.chat.resize(m.width, m.height)
	} else {
		m.chat = m.chat.sync()
	}
	m.screen = ScreenChat
	return m, textinput.Blink
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.screen {
	case ScreenSurvey:
		return m.survey.view(m.width)
	case ScreenChat:
		return m.chat.view()
	default:
		return m.login.view(m.width)
	}
}
