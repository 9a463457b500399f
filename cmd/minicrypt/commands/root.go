package commands

import (
	"github.com/spf13/cobra"

	"minicrypt/internal/app"
)

var (
	configPath string
	logLevel   string
	quiet      bool
	appCtx     *app.App
)

// Execute runs the minicrypt CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "minicrypt",
		Short:         "Teaching demo of RSA, Diffie-Hellman and a XOR stream cipher",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			log, err := app.NewLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			appCtx = app.New(cfg, log, quiet)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a .env file with MINICRYPT_* settings")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "do not log intermediate steps")

	root.AddCommand(
		keygenCmd(),
		exchangeCmd(),
		encryptCmd(),
		decryptCmd(),
		signCmd(),
		verifyCmd(),
		demoCmd(),
	)
	return root
}
