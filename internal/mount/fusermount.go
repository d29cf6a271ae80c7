package mount

import (
	"context"
	"os"
	"os/exec"

	"github.com/pkg/errors"

	"cryptkeep/internal/domain"
)

// execCommand is swapped in tests.
var execCommand = exec.CommandContext

// Fusermount detaches FUSE mounts through the host's fusermount utility.
// Detachment deliberately does not go through the provider; the kernel
// side of the mount belongs to the host.
type Fusermount struct{}

func (Fusermount) Detach(ctx context.Context, target string) error {
	cmd := execCommand(ctx, "fusermount", "-u", target)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "fusermount -u %s", target)
	}
	return nil
}

var _ domain.Detacher = Fusermount{}
