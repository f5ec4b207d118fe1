package soulspace

// Usage tracks token consumption for a completion.
type Usage struct {
	InputTokens  int
	OutputTokens int
}
