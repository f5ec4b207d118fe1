package soulspace

// StopReason indicates why the model stopped generating a reply.
type StopReason string

const (
	StopEndTurn  StopReason = "end_turn"
	StopLength   StopReason = "length"   // Reply cut off at MaxTokens.
	StopFiltered StopReason = "filtered" // Withheld or cut by a provider safety filter.
	StopUnknown  StopReason = "unknown"
)
