// Package app wires application dependencies for the CLI.
//
// It builds the provider adapter, host filesystem helpers and services
// from config.Config, exposing them via the Wire struct for commands
// to use.
package app
