// Package cmd provides the bsui command-line interface.
//
// Configuration is read from, in order of precedence:
//  1. command-line flags (--config, --log-level)
//  2. BSUI_ environment variables (BSUI_SERVER_PORT, BSUI_SEARCH_CONTENT_ROOT, ...)
//  3. the config file: --config, then BSUI_CONFIG_FILE, then .bsui.yml
//  4. built-in defaults
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/bsui/internal/config"
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "bsui",
		Short: "Bootstrap component options and site search",
		Long: `bsui resolves Bootstrap 5 component options from props, configuration
bags and defaults, previews the resulting markup and serves a search index over
templates, routes and declared pages.

Quick Start:
  bsui serve                          Start the preview and search server
  bsui components list                List the component catalogue
  bsui components render button --set label=Save
  bsui search "getting started"       Query the search index`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, cfgFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .bsui.yml, can also use BSUI_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text, json)")

	rootCmd.AddCommand(
		newServeCmd(),
		newSearchCmd(),
		newComponentsCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// initConfig loads the config file and binds environment overrides.
func initConfig(cmd *cobra.Command, cfgFile string) error {
	config.SetDefaults(viper.GetViper())

	switch {
	case cfgFile != "":
		viper.SetConfigFile(cfgFile)
	case os.Getenv(config.EnvPrefix+"_CONFIG_FILE") != "":
		viper.SetConfigFile(os.Getenv(config.EnvPrefix + "_CONFIG_FILE"))
	default:
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bsui")
	}

	config.ConfigureEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flag := cmd.Flags().Lookup("log-level"); flag != nil && flag.Changed {
		viper.Set("log.level", flag.Value.String())
	}
	if flag := cmd.Flags().Lookup("log-format"); flag != nil && flag.Changed {
		viper.Set("log.format", flag.Value.String())
	}
	return nil
}
