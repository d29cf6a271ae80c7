// Package mount wraps the host filesystem facilities cryptkeep needs:
// detecting whether a path is an active mount point and detaching a
// FUSE mount via the fusermount utility.
package mount
