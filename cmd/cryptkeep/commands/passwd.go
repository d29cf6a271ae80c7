package commands

import (
	"github.com/spf13/cobra"
)

func passwdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change the encrypted store password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Provider.Check(cmd.Context()); err != nil {
				return advise(err)
			}
			return advise(appCtx.Vaults.ChangePassword(cmd.Context(), cfg.Store))
		},
	}
}
