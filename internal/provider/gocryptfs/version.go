package gocryptfs

import (
	"context"
	"os/exec"
	"regexp"

	"github.com/pkg/errors"
	"golang.org/x/mod/semver"

	"cryptkeep/internal/domain"
)

// MinVersion is the oldest provider release cryptkeep supports.
const MinVersion = "1.6.0"

// Check verifies the provider executable is installed and reports a
// version of at least MinVersion. It runs before any operation that
// would mutate state, and its only side effect is the version query.
func (p *Provider) Check(ctx context.Context) error {
	if _, err := exec.LookPath(p.binary); err != nil {
		return errors.Wrapf(domain.ErrProviderMissing, "%s is not on PATH", p.binary)
	}

	out, err := p.VersionOutput(ctx)
	if err != nil {
		return err
	}

	version, ok := ParseVersion(p.binary, out)
	if !ok {
		return errors.Wrapf(domain.ErrProviderIncompatible,
			"no %s version found in version output", p.binary)
	}
	if !MeetsMinimum(version) {
		return errors.Wrapf(domain.ErrProviderIncompatible,
			"%s %s is older than the required %s", p.binary, version, MinVersion)
	}
	return nil
}

// ParseVersion scans out for a token of the form "<name> MAJOR.MINOR.PATCH"
// (case-insensitive, optional "v" prefix), ignoring surrounding text.
func ParseVersion(name, out string) (string, bool) {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(name) + `[ \t]+v?(\d+\.\d+\.\d+)`)
	m := re.FindStringSubmatch(out)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// MeetsMinimum compares component-wise numerically, so 1.10.0 satisfies
// a 1.6.0 floor.
func MeetsMinimum(version string) bool {
	return semver.Compare("v"+version, "v"+MinVersion) >= 0
}
