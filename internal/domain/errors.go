package domain

import "github.com/pkg/errors"

// Sentinel errors for precondition and environment failures. Commands
// match on these to print the right remedy line.
var (
	// ErrProviderMissing: the provider executable is not on the search path.
	ErrProviderMissing = errors.New("mount provider not found")

	// ErrProviderIncompatible: the provider is installed but its reported
	// version is unparsable or below the supported minimum.
	ErrProviderIncompatible = errors.New("mount provider incompatible")

	// ErrStoreMissing: the encrypted store directory does not exist.
	ErrStoreMissing = errors.New("no such encrypted store")

	// ErrStoreNotEmpty: initialization was asked to target a directory
	// that already has contents.
	ErrStoreNotEmpty = errors.New("store directory not empty")
)
