package ignitecli

import (
	"fmt"
	"os"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile string

	// Config holds the run's configuration, populated from configFile by
	// RootCmd's PersistentPreRunE before any subcommand runs.
	Config *Config

	// overrides layers CLI-flag and IGNITE_-prefixed environment overrides
	// on top of whatever Config loaded from TOML.
	overrides = viper.New()
)

// RootCmd is the main command.
var RootCmd = &cobra.Command{
	Use:   "ignite",
	Short: "Generates and times prescribed-burn ignition patterns.",
	Long: `ignite lays out and times prescribed-fire ignition patterns over a
firing area: ring, head, back, flank, strip, strip_contour, and inferno
techniques, propagated against an ignition crew's speed and line style.
Use the subcommands specified below to access the individual stages.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return labelErr(startup(configFile))
	},
	DisableAutoGenTag: true,
}

func startup(path string) error {
	cfg, err := ReadConfigFile(path)
	if err != nil {
		return err
	}
	Config = cfg

	overrides.SetEnvPrefix("IGNITE")
	overrides.AutomaticEnv()

	if Config.LogFile != "" {
		f, err := os.OpenFile(Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("ignite: problem opening log file: %v", err)
		}
		logrus.SetOutput(f)
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	return nil
}

func labelErr(err error) error {
	if err != nil {
		return fmt.Errorf("ERROR: %v", err)
	}
	return nil
}

func init() {
	RootCmd.AddCommand(versionCmd)
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "./ignite.toml", "configuration file location")
}

// version is set at build time via -ldflags; it defaults to "dev" so an
// unreleased build still reports something meaningful.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ignite v%s\n", version)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
}
