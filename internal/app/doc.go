// Package app wires application dependencies for the CLI.
//
// Config is read from an optional TOML file and then overridden by flags.
// The only setting the core cares about is Service.BaseURL; the rest tune
// the ambient pieces (clipboard backend, download directory, logging, and
// the return policy of the disguise).
//
// NewWire builds the concrete clients, stores and services from a Config,
// exposing them via the Wire struct for commands to use.
package app
