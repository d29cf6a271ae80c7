package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cryptkeep/internal/services/vault"
)

// mountCmd runs the core lifecycle: attach the encrypted store to a
// mount target, run the session command inside it, and detach no matter
// how the session ends. An interrupt or termination signal cancels the
// running subprocess and control falls through to the same release path.
func mountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mount",
		Short: "Attach the encrypted store and run a session command inside it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mountpoint := cfg.Mountpoint
			if cmd.Flags().Changed("mountpoint") {
				mountpoint, _ = cmd.Flags().GetString("mountpoint")
			}
			options := cfg.MountOptions
			if cmd.Flags().Changed("options") {
				options, _ = cmd.Flags().GetString("options")
			}
			commandLine := cfg.Command
			if cmd.Flags().Changed("command") {
				commandLine, _ = cmd.Flags().GetString("command")
			}

			// Store existence is checked before the provider is touched
			// at all, version query included.
			if err := vault.RequireStore(cfg.Store); err != nil {
				return advise(err)
			}
			if err := appCtx.Provider.Check(cmd.Context()); err != nil {
				return advise(err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return advise(appCtx.Sessions.Run(ctx, cfg.Store, mountpoint, options, commandLine))
		},
	}
	cmd.Flags().String("mountpoint", "", "fixed mount target (default: fresh temp directory)")
	cmd.Flags().String("options", "", "extra options passed through to the provider's mount")
	cmd.Flags().String("command", "", "session command to run inside the mount target")
	return cmd
}
