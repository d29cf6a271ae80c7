package mount

import (
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"cryptkeep/internal/domain"
)

// DeviceChecker detects mount points by comparing the device number of a
// path with that of its parent directory; a mounted path sits on a
// different device. This works for FUSE mounts without reading
// /proc/self/mountinfo, and a nonexistent path is simply not mounted.
type DeviceChecker struct{}

func (DeviceChecker) IsMountPoint(path string) (bool, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		if errors.Is(err, unix.ENOENT) {
			return false, nil
		}
		return false, errors.Wrapf(err, "stat %s", path)
	}

	var parent unix.Stat_t
	if err := unix.Stat(filepath.Dir(path), &parent); err != nil {
		return false, errors.Wrapf(err, "stat %s", filepath.Dir(path))
	}
	return st.Dev != parent.Dev, nil
}

var _ domain.MountChecker = DeviceChecker{}
