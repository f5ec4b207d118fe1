package soulspace

import (
	"fmt"
	"strings"
)

// InvalidCredentialsMessage is shown to the user after a failed login.
const InvalidCredentialsMessage = "Credenciales inválidas. Inténtalo de nuevo."

// Credentials is the single email/password pair accepted at login.
type Credentials struct {
	Email    string
	Password string
}

// DefaultCredentials is the demo pair accepted when none is configured.
var DefaultCredentials = Credentials{
	Email:    "test@example.com",
	Password: "password123",
}

// Authenticate compares email and password exactly against c and returns the
// username derived from the email's local part. An email with an empty local
// part never signs in.
func (c Credentials) Authenticate(email, password string) (string, error) {
	if email == "" || email != c.Email || password != c.Password {
		return "", fmt.Errorf("login %q: %w", email, ErrInvalidCredentials)
	}
	username, _, _ := strings.Cut(email, "@")
	if username == "" {
		return "", fmt.Errorf("login %q: empty username: %w", email, ErrInvalidCredentials)
	}
	return username, nil
}
