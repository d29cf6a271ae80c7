package session

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"cryptkeep/internal/domain"
	"cryptkeep/internal/logger"
	"cryptkeep/internal/services/vault"
)

// Service drives mount sessions. A process runs at most one session.
type Service struct {
	provider domain.Provider
	detacher domain.Detacher
	mounts   domain.MountChecker
	runner   domain.CommandRunner
}

func New(provider domain.Provider, detacher domain.Detacher, mounts domain.MountChecker, runner domain.CommandRunner) *Service {
	return &Service{
		provider: provider,
		detacher: detacher,
		mounts:   mounts,
		runner:   runner,
	}
}

// Session binds one encrypted store to one mount target. It is created
// by Begin and released exactly once; release is safe to invoke again
// (a signal handler and the normal fall-through may race) and performs
// no external calls after the first time.
type Session struct {
	svc    *Service
	target domain.Target

	mu       sync.Mutex
	released bool
}

// Target returns the resolved mount target.
func (s *Session) Target() domain.Target { return s.target }

// Run drives one complete session: attach, run the session command in
// the target, release. The session command's exit status is reported but
// never becomes the manager's own failure; cleanup always runs.
func (s *Service) Run(ctx context.Context, store, fixedTarget, mountOptions, commandLine string) error {
	sess, err := s.Begin(ctx, store, fixedTarget, mountOptions)
	if err != nil {
		return err
	}
	defer sess.Release()

	logger.Info("mounted %s at %s", store, sess.Target().Path)
	if err := s.runner.Run(ctx, commandLine, sess.Target().Path); err != nil {
		// The user's concern, not ours.
		logger.Warn("session command: %v", err)
	}
	return nil
}

// Begin validates the store, resolves the mount target, and attaches the
// store to it. The session exists before the provider runs, so a failed
// attach still releases it: an ephemeral directory never outlives the
// attempt, and the mount-point check keeps the detach step a no-op.
func (s *Service) Begin(ctx context.Context, store, fixedTarget, mountOptions string) (*Session, error) {
	if err := vault.RequireStore(store); err != nil {
		return nil, err
	}

	target, err := s.resolveTarget(fixedTarget)
	if err != nil {
		return nil, err
	}

	sess := &Session{svc: s, target: target}
	if err := s.provider.Attach(ctx, store, target.Path, mountOptions); err != nil {
		sess.Release()
		return nil, err
	}
	return sess, nil
}

// resolveTarget picks the mount target for this session. A configured
// fixed path is created if missing and stays owned by the caller; with
// no fixed path a fresh ephemeral directory is created and owned by the
// session. Either way the path comes back absolute and symlink-free.
func (s *Service) resolveTarget(fixed string) (domain.Target, error) {
	if fixed != "" {
		if err := os.MkdirAll(fixed, 0o700); err != nil {
			return domain.Target{}, errors.Wrapf(err, "creating mountpoint %s", fixed)
		}
		path, err := canonicalize(fixed)
		if err != nil {
			return domain.Target{}, err
		}
		return domain.Target{Path: path}, nil
	}

	dir, err := os.MkdirTemp("", "cryptkeep-")
	if err != nil {
		return domain.Target{}, errors.Wrap(err, "creating ephemeral mountpoint")
	}
	path, err := canonicalize(dir)
	if err != nil {
		return domain.Target{}, err
	}
	return domain.Target{Path: path, Ephemeral: true}, nil
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", path)
	}
	return resolved, nil
}

// Release detaches the target if it is still mounted and removes it if
// ephemeral. It never fails the process: detach trouble is logged and
// the directory is left in place rather than removing a live mount
// point. Repeated calls are no-ops.
func (s *Session) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return
	}
	s.released = true

	// The caller's context may already be canceled (that is how signals
	// get here); cleanup runs on its own context.
	ctx := context.Background()

	mounted, err := s.svc.mounts.IsMountPoint(s.target.Path)
	if err != nil {
		logger.Warn("cannot check mountpoint %s: %v", s.target.Path, err)
		return
	}
	if mounted {
		if err := s.svc.detacher.Detach(ctx, s.target.Path); err != nil {
			// Removing a still-mounted path is undefined behavior, so
			// leave the directory behind.
			logger.Warn("detach %s: %v", s.target.Path, err)
			return
		}
		logger.Info("detached %s", s.target.Path)
	}
	if s.target.Ephemeral {
		if err := os.Remove(s.target.Path); err != nil {
			logger.Warn("removing %s: %v", s.target.Path, err)
		}
	}
}
