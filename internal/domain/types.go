package domain

// Target is a resolved mount target: the directory that exposes the
// cleartext view of an encrypted store for the duration of one session.
// The path is absolute and symlink-free.
type Target struct {
	Path string

	// Ephemeral marks a target created fresh for this session. Ephemeral
	// targets are owned by the session and removed when it ends;
	// user-designated targets are never removed.
	Ephemeral bool
}
