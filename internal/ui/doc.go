// Package ui provides terminal UI components for lanwatch's CLI output.
//
// The package includes spinners, tables, and styled text output using the
// Lip Gloss library for consistent terminal styling across all commands.
//
// # Components Overview
//
//	Spinner          - Animated status indicator for long-running operations
//	SpinnerComponent - The same look, embeddable in Bubble Tea models
//	Host table       - Styled host listing for one-shot scans
//	Sparkline        - Mini graph of host availability over time
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Hosts that are up, successful operations
//	ColorError     (red)    - Hosts that are down, failures
//	ColorWarning   (yellow) - Unstable hosts, warnings
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text, timing info
//	ColorSecondary (blue)   - In-progress indicators
//
// # Symbols
//
// Unicode symbols provide visual status indicators:
//
//	SymbolUp       (filled)     - Host answered the last probe
//	SymbolUnstable (half-fill)  - Host missed recent probes
//	SymbolDown     (X)          - Host crossed the failure threshold
//	SymbolSuccess  (checkmark)  - Operation completed successfully
//	SymbolFail     (X)          - Operation failed
//	SymbolPending  (circle)     - Not yet started
//
// # Spinner Usage
//
// The Spinner type provides an animated indicator for operations:
//
//	s := ui.NewSpinner("Scanning 192.168.1.0/24")
//	s.Start()
//	// ... do work ...
//	s.Success() // or s.Fail()
//
// The spinner handles terminal output, clearing lines, and timing display.
package ui
