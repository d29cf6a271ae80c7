// Package shell runs the user's session command inside the mount target.
package shell

import (
	"context"
	"os"
	"os/exec"

	"cryptkeep/internal/domain"
)

// execCommand is swapped in tests.
var execCommand = exec.CommandContext

// Runner hands the session command line to the system shell with the
// mount target as working directory and the terminal attached. The
// command line is never parsed here; quoting belongs to the user.
type Runner struct {
	shell string
}

func NewRunner() Runner {
	return Runner{shell: "/bin/sh"}
}

func (r Runner) Run(ctx context.Context, commandLine, workdir string) error {
	cmd := execCommand(ctx, r.shell, "-c", commandLine)
	cmd.Dir = workdir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

var _ domain.CommandRunner = Runner{}
