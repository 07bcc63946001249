package main

import (
	"errors"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-background/internal/config"
	"github.com/cwbudde/algo-background/internal/logging"
)

// app carries the state shared by the sub-commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	root := &cobra.Command{
		Use:   "bgfit",
		Short: "Prepare and inspect DIAMONDS background fits of stellar power spectra.",
		Long: `bgfit derives uniform prior boundaries for the background model of a star's
power spectral density, writes the configuration files the DIAMONDS nested
sampler reads, and inspects the fit results it produces.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.bgfit.yaml)")
	flags.StringP("local-path", "p", "", "directory holding data/ and results/")
	flags.StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
	_ = a.v.BindPFlag(config.KeyLocalPath, flags.Lookup("local-path"))
	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("loglevel"))

	root.AddCommand(
		newPriorsCmd(a),
		newModelCmd(a),
		newSummaryCmd(a),
		newTraceCmd(a),
		newVariantsCmd(),
		newWindowsCmd(),
	)

	return root
}

// initConfig reads in the config file and environment and sets up logging.
func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		a.v.AddConfigPath(home)
		a.v.SetConfigName(".bgfit")
		a.v.SetConfigType("yaml")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return err
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	a.cfg = cfg

	if used := a.v.ConfigFileUsed(); used != "" {
		logging.Log.WithField("file", used).Debug("config loaded")
	}
	return nil
}
