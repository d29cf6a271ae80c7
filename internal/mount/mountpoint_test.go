package mount_test

import (
	"path/filepath"
	"testing"

	"cryptkeep/internal/mount"
)

func TestIsMountPoint_PlainDirectory(t *testing.T) {
	mounted, err := mount.DeviceChecker{}.IsMountPoint(t.TempDir())
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if mounted {
		t.Fatal("a fresh temp directory is not a mount point")
	}
}

func TestIsMountPoint_MissingPath(t *testing.T) {
	mounted, err := mount.DeviceChecker{}.IsMountPoint(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("a missing path is simply not mounted: %v", err)
	}
	if mounted {
		t.Fatal("missing path reported as mounted")
	}
}
