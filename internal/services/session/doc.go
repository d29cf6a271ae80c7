// Package session implements the mount session lifecycle: resolve a
// mount target, attach the encrypted store through the provider, run the
// user's session command inside the target, and guarantee detachment and
// target cleanup on every exit path.
package session
