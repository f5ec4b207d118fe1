package soulspace

import "time"

// Message is one entry of a session transcript. Messages are never edited
// after they are appended.
type Message struct {
	Role      Role
	Text      string
	Timestamp time.Time
}

// IsFallback reports whether the message is one of the placeholder replies
// substituted when a round trip fails.
func (m Message) IsFallback() bool {
	return m.Role == RoleAssistant && (m.Text == FallbackNoReply || m.Text == FallbackConnection)
}
