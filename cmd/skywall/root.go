package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/litescript/skywall/internal/config"
	"github.com/litescript/skywall/internal/logging"
	"github.com/litescript/skywall/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "skywall",
	Short:   "Night-sky chart renderer and wallpaper generator",
	Version: version.Version,
	Long: `Skywall renders the sky above a location at a chosen moment: stars,
constellation figures, the day's sun and moon tracks, planets and
celestial reference lines, composed onto a wallpaper-sized PNG.

Configuration is read from a YAML file (default
$HOME/.config/skywall/config.yaml), overridable per-run with flags.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/skywall/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	// Defaults first so every key resolves even without a config file.
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SKYWALL")
	// SKYWALL_LOCATION_LATITUDE overrides location.latitude, and so on.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing config file is fine; defaults and flags carry the run.
	_ = viper.ReadInConfig()
}

// loadConfig reads the merged configuration and builds its logger.
func loadConfig() (*config.Config, *zap.SugaredLogger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logging.New(logging.ParseLevel(cfg.Logging.Level))
	if file := viper.ConfigFileUsed(); file != "" {
		log.Debugw("config loaded", "file", file)
	}
	return cfg, log, nil
}
