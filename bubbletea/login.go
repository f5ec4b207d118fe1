package bubbletea

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/soulspace"
)

const (
	fieldEmail = iota
	fieldPassword
	fieldCount
)

// loginForm collects an email and password and checks them against the
// configured credentials.
type loginForm struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	err      string

	creds  soulspace.Credentials
	styles Styles
}

func newLoginForm(creds soulspace.Credentials, styles Styles) loginForm {
	email := textinput.New()
	email.Placeholder = "tu@correo.com"
	email.Prompt = "  "
	email.Focus()

	password := textinput.New()
	password.Placeholder = "contraseña"
	password.Prompt = "  "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginForm{
		email:    email,
		password: password,
		creds:    creds,
		styles:   styles,
	}
}

// update returns the username once the credentials are accepted.
func (f loginForm) update(msg tea.Msg) (loginForm, tea.Cmd, string) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyTab, tea.KeyDown:
			cmd := f.setFocus((f.focus + 1) % fieldCount)
			return f, cmd, ""
		case tea.KeyShiftTab, tea.KeyUp:
			cmd := f.setFocus((f.focus + fieldCount - 1) % fieldCount)
			return f, cmd, ""
		case tea.KeyEnter:
			return f.submit()
		}
	}

	var cmd tea.Cmd
	if f.focus == fieldEmail {
		f.email, cmd = f.email.Update(msg)
	} else {
		f.password, cmd = f.password.Update(msg)
	}
	return f, cmd, ""
}

func (f loginForm) submit() (loginForm, tea.Cmd, string) {
	username, err := f.creds.Authenticate(f.email.Value(), f.password.Value())
	if err != nil {
		f.err = soulspace.InvalidCredentialsMessage
		f.password.SetValue("")
		cmd := f.setFocus(fieldPassword)
		return f, cmd, ""
	}
	f.err = ""
	return f, nil, username
}

// setFocus moves the cursor to field.
func (f *loginForm) setFocus(field int) tea.Cmd {
	f.focus = field
	if field == fieldEmail {
		f.password.Blur()
		return f.email.Focus()
	}
	f.email.Blur()
	return f.password.Focus()
}

func (f loginForm) view(width int) string {
	var b strings.Builder
	b.WriteString(f.styles.Title.Render("SoulSpace"))
	b.WriteString("\n")
	b.WriteString("Inicia sesión para continuar\n\n")

	b.WriteString(f.styles.Label.Render("Correo electrónico"))
	b.WriteString("\n")
	b.WriteString(f.email.View())
	b.WriteString("\n\n")
	b.WriteString(f.styles.Label.Render("Contraseña"))
	b.WriteString("\n")
	b.WriteString(f.password.View())
	b.WriteString("\n\n")

	if f.err != "" {
		b.WriteString(f.styles.Error.Render(f.err))
		b.WriteString("\n\n")
	}
	if f.creds == soulspace.DefaultCredentials {
		b.WriteString(f.styles.Muted.Render("Demo: " + f.creds.Email + " / " + f.creds.Password))
		b.WriteString("\n")
	}
	b.WriteString(f.styles.Muted.Render(truncate("Tab para cambiar de campo, Enter para entrar", width)))
	return b.String()
}
