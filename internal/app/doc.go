// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment (optionally seeded from a .env file),
// builds the zap logger and the observer chain, and constructs the key,
// exchange, message and walkthrough services exposed on App.
package app
