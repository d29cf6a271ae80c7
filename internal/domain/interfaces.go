package domain

import "context"

// Provider is the external mount provider, invoked as a subprocess. All
// cryptography and filesystem translation happens on its side; cryptkeep
// only depends on exit statuses and, for the version query, stdout.
type Provider interface {
	// VersionOutput runs the provider's version query and returns its
	// raw standard output.
	VersionOutput(ctx context.Context) (string, error)

	// Check verifies the provider is installed and meets the minimum
	// supported version.
	Check(ctx context.Context) error

	// Init creates a new encrypted store in the (existing, empty)
	// directory at store. The options string is passed through opaquely.
	Init(ctx context.Context, store, options string) error

	// Attach mounts the encrypted store onto target. The options string
	// is passed through opaquely.
	Attach(ctx context.Context, store, target, options string) error

	// ChangePassword runs the provider's interactive password change
	// against the store at rest.
	ChangePassword(ctx context.Context, store string) error
}

// Detacher disconnects a cleartext view from its mount target. Detachment
// goes through the host filesystem utility, not the provider itself.
type Detacher interface {
	Detach(ctx context.Context, target string) error
}

// MountChecker reports whether a path is currently an active mount point.
type MountChecker interface {
	IsMountPoint(path string) (bool, error)
}

// CommandRunner executes one session command line with the invoking
// user's terminal attached and workdir as the current directory.
type CommandRunner interface {
	Run(ctx context.Context, commandLine, workdir string) error
}
