// Package cli wires the lanwatch commands: watch (discover + monitor),
// scan (one-shot discovery), init (config bootstrap), doctor (environment
// diagnostics), and version. Commands stay thin; the engine lives in the
// discovery, monitor, and registry packages.
package cli
