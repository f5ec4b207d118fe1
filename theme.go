package soulspace

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme. A negative index means no color.
type Theme struct {
	UserMsg   int // User message accent
	Assistant int // Assistant name label
	Notice    int // Fallback replies
	Error     int // Form errors
	Success   int // Confirmations
	Muted     int // Status bar, placeholders
	Accent    int // Headings, links, focused fields
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		UserMsg:   4,
		Assistant: 6,
		Notice:    3,
		Error:     1,
		Success:   2,
		Muted:     8,
		Accent:    5,
	}
}
