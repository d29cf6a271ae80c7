package gocryptfs

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"cryptkeep/internal/domain"
)

// Binary is the default provider executable name.
const Binary = "gocryptfs"

// execCommand is swapped in tests.
var execCommand = exec.CommandContext

// Provider invokes the gocryptfs binary.
type Provider struct {
	binary string
}

// New builds a Provider. An empty binary selects the default.
func New(binary string) *Provider {
	if binary == "" {
		binary = Binary
	}
	return &Provider{binary: binary}
}

func (p *Provider) VersionOutput(ctx context.Context) (string, error) {
	out, err := execCommand(ctx, p.binary, "-version").Output()
	if err != nil {
		return "", errors.Wrapf(err, "running %s -version", p.binary)
	}
	return string(out), nil
}

func (p *Provider) Init(ctx context.Context, store, options string) error {
	args := append([]string{"-init"}, splitOptions(options)...)
	args = append(args, store)
	if err := p.interactive(ctx, args).Run(); err != nil {
		return errors.Wrapf(err, "initializing store %s", store)
	}
	return nil
}

func (p *Provider) Attach(ctx context.Context, store, target, options string) error {
	args := append(splitOptions(options), store, target)
	if err := p.interactive(ctx, args).Run(); err != nil {
		return errors.Wrapf(err, "attaching %s to %s", store, target)
	}
	return nil
}

func (p *Provider) ChangePassword(ctx context.Context, store string) error {
	if err := p.interactive(ctx, []string{"-passwd", store}).Run(); err != nil {
		return errors.Wrapf(err, "changing password for %s", store)
	}
	return nil
}

// interactive wires the subprocess to the user's terminal so the
// provider can run its own password prompts.
func (p *Provider) interactive(ctx context.Context, args []string) *exec.Cmd {
	cmd := execCommand(ctx, p.binary, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stderr // provider chatter is diagnostics, not output
	cmd.Stderr = os.Stderr
	return cmd
}

// splitOptions word-splits an opaque option string. Contents are never
// validated or interpreted; empty means no extra arguments.
func splitOptions(options string) []string {
	return strings.Fields(options)
}

var _ domain.Provider = (*Provider)(nil)
