package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/bsui/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or validate the configuration",
	}
	cmd.AddCommand(newConfigShowCmd(), newConfigValidateCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, the config file and BSUI_
environment overrides are applied.`,
		Args: cobra.NoArgs,
	}

	format := addOutputFlag(cmd, "yaml", "json", "yaml")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return writeStructured(cmd.OutOrStdout(), format.String(), cfg, nil)
	}
	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and the component bag file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			bags, err := config.BuildComponentConfig(cfg.Components)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if used := viper.ConfigFileUsed(); used != "" {
				fmt.Fprintf(out, "Config file: %s\n", used)
			}
			fmt.Fprintf(out, "Component bags: %d\n", len(bags.Names()))
			if info, err := os.Stat(cfg.Search.ContentRoot); err != nil || !info.IsDir() {
				fmt.Fprintf(out, "Warning: content root %s is not a directory; templates will not be indexed\n", cfg.Search.ContentRoot)
			}
			fmt.Fprintln(out, "Configuration is valid")
			return nil
		},
	}
}
