package commands

import (
	"github.com/spf13/cobra"

	"cryptkeep/internal/logger"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new encrypted store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := cfg.InitOptions
			if cmd.Flags().Changed("options") {
				options, _ = cmd.Flags().GetString("options")
			}

			if err := appCtx.Provider.Check(cmd.Context()); err != nil {
				return advise(err)
			}
			if err := appCtx.Vaults.Init(cmd.Context(), cfg.Store, options); err != nil {
				return advise(err)
			}
			logger.Info("encrypted store created at %s", cfg.Store)
			remedy("run 'cryptkeep' to mount it and start a session")
			return nil
		},
	}
	cmd.Flags().String("options", "", "extra options passed through to the provider's init")
	return cmd
}
