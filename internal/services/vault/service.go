package vault

import (
	"context"
	"os"

	"github.com/pkg/errors"

	"cryptkeep/internal/domain"
)

// Service performs store-at-rest operations through the provider.
type Service struct {
	provider domain.Provider
}

func New(provider domain.Provider) *Service {
	return &Service{provider: provider}
}

// Init creates a new encrypted store at path.
//
// The directory (and parents) is created owner-only if absent; an
// existing non-empty directory aborts before the provider is invoked.
// If the provider fails midway the directory is left exactly as the
// provider left it: no rollback, so partially written store metadata
// stays available for inspection.
func (s *Service) Init(ctx context.Context, path, options string) error {
	entries, err := os.ReadDir(path)
	switch {
	case err == nil && len(entries) > 0:
		return errors.Wrapf(domain.ErrStoreNotEmpty, "%s", path)
	case err != nil && !os.IsNotExist(err):
		return errors.Wrapf(err, "reading %s", path)
	}

	if err := os.MkdirAll(path, 0o700); err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	return s.provider.Init(ctx, path, options)
}

// ChangePassword runs the provider's interactive password change against
// the store at rest. No mount is involved.
func (s *Service) ChangePassword(ctx context.Context, path string) error {
	if err := RequireStore(path); err != nil {
		return err
	}
	return s.provider.ChangePassword(ctx, path)
}

// RequireStore verifies the encrypted store directory exists.
func RequireStore(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return errors.Wrapf(domain.ErrStoreMissing, "%s", path)
	}
	return nil
}
