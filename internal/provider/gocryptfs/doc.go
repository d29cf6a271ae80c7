// Package gocryptfs adapts the gocryptfs binary to the domain.Provider
// contract.
//
// Every operation is a foreground subprocess with the user's terminal
// attached, so the provider can prompt for passwords itself; cryptkeep
// never sees key material. Option strings from configuration are passed
// through opaquely, split into words but never interpreted.
package gocryptfs
