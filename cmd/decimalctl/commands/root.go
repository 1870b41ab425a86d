package commands

import (
	"github.com/govalues/decimal96/internal/config"
	"github.com/govalues/decimal96/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// NewRootCmd returns the decimalctl command with all subcommands attached.
// Options are loaded before any subcommand runs, see [config.Load].
func NewRootCmd() *cobra.Command {
	var (
		configFile string
		opts       config.Options
	)
	cmd := &cobra.Command{
		Use:          "decimalctl",
		Short:        "Exact 96-bit decimal calculator and test harness",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			opts, err = config.Load(configFile)
			if err != nil {
				return err
			}
			logging.SetupWriter(cmd.ErrOrStderr(), opts)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(
		&configFile,
		"config",
		"c",
		"",
		"config file (yaml, toml or json)")
	cmd.PersistentFlags().String(
		"log-level",
		"info",
		"log level: error, warn, info or debug")
	bindFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(
		NewEvalCmd(&opts),
		NewGenerateCmd(&opts),
		NewRunCmd(),
		NewPackCmd(),
		NewUnpackCmd(),
	)
	return cmd
}

func bindFlag(key string, flag *pflag.Flag) {
	cobra.CheckErr(viper.BindPFlag(key, flag))
}
