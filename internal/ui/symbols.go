package ui

// Unicode symbols for status indicators.
const (
	SymbolUp       = "●" // Host answered the last probe
	SymbolUnstable = "◐" // Host missed recent probes
	SymbolDown     = "✗" // Host crossed the failure threshold
	SymbolSuccess  = "✓" // Operation completed successfully
	SymbolFail     = "✗" // Operation failed
	SymbolPending  = "○" // Not yet started
	SymbolAlert    = "⚠" // Alert marker for down transitions
)
