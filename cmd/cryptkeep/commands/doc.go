// Package commands defines the cryptkeep CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - init     Create a new encrypted store
//   - mount    Attach the store and run a session command (the default)
//   - passwd   Change the store password
//   - version  Print the cryptkeep version
//
// # Implementation
//
// The root command resolves configuration (flags over CRYPTKEEP_*
// environment variables over an optional ~/.cryptkeep.yaml) and builds
// the dependency graph before any subcommand runs. Invoking cryptkeep
// with no arguments runs mount. Diagnostics go to standard error;
// standard output carries only the version string and help text.
package commands
