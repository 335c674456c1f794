package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/bsui/internal/version"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// Version needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	}

	format := addOutputFlag(cmd, "text", "text", "json", "yaml")
	cmd.Flags().BoolVar(&short, "short", false, "Show short version only")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if short {
			_, err := fmt.Fprintln(out, version.GetShortVersion())
			return err
		}

		info := version.GetBuildInfo()
		return writeStructured(out, format.String(), info, func() error {
			fmt.Fprintf(out, "bsui %s\n", version.GetShortVersion())
			if !info.BuildTime.IsZero() {
				fmt.Fprintf(out, "Built: %s\n", info.BuildTime.Format(time.RFC3339))
			}
			fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
			_, err := fmt.Fprintf(out, "Platform: %s\n", info.Platform)
			return err
		})
	}
	return cmd
}
