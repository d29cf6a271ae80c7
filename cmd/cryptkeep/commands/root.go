package commands

import (
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"cryptkeep/internal/app"
	"cryptkeep/internal/config"
	"cryptkeep/internal/domain"
	"cryptkeep/internal/logger"
	"cryptkeep/internal/provider/gocryptfs"
)

var (
	cfgFile string
	cfg     config.Config
	appCtx  *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:          "cryptkeep",
		Short:        "Work inside an encrypted directory through a gocryptfs mount session",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd)
			logger.SetLevel(cfg.LogLevel)
			appCtx = app.NewWire(cfg)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.cryptkeep.yaml)")
	root.PersistentFlags().String("store", "", "encrypted store directory")
	root.PersistentFlags().String("log-level", "", "diagnostic level (DEBUG, INFO, WARN, ERROR)")

	root.AddCommand(initCmd(), mountCmd(), passwdCmd(), versionCmd())
	root.SetArgs(defaultArgs(os.Args[1:]))
	return root.Execute()
}

// defaultArgs makes a bare invocation mean "mount".
func defaultArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"mount"}
	}
	return args
}

// applyFlagOverrides lets flags win over environment and file values.
func applyFlagOverrides(cmd *cobra.Command) {
	if v, _ := cmd.Flags().GetString("store"); v != "" {
		cfg.Store = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
}

var remedyColor = color.New(color.FgCyan)

// remedy prints a one-line fix suggestion to stderr next to the fatal
// cause cobra reports.
func remedy(format string, a ...any) {
	remedyColor.Fprintf(os.Stderr, format+"\n", a...)
}

// advise maps known failure conditions to their remedy line.
func advise(err error) error {
	switch {
	case errors.Is(err, domain.ErrStoreMissing):
		remedy("run 'cryptkeep init' first to create the encrypted store")
	case errors.Is(err, domain.ErrStoreNotEmpty):
		remedy("choose an empty or nonexistent directory for the new store")
	case errors.Is(err, domain.ErrProviderMissing):
		remedy("install %s %s or newer and make sure it is on PATH", gocryptfs.Binary, gocryptfs.MinVersion)
	case errors.Is(err, domain.ErrProviderIncompatible):
		remedy("upgrade %s to %s or newer", gocryptfs.Binary, gocryptfs.MinVersion)
	}
	return err
}
