package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newComponentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "components",
		Aliases: []string{"c"},
		Short:   "Inspect the component catalogue",
	}
	cmd.AddCommand(newComponentsListCmd(), newComponentsRenderCmd())
	return cmd
}

type componentInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Configured  bool   `json:"configured" yaml:"configured"`
}

func newComponentsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "List the available components",
		Long: `List every component with its description. CONFIGURED marks components
that have a configuration bag.

Examples:
  bsui components list
  bsui components list -o json`,
		Args: cobra.NoArgs,
	}

	format := addOutputFlag(cmd, "table", "table", "json", "yaml")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		configured := make(map[string]bool)
		for _, name := range a.components.Names() {
			configured[name] = true
		}

		var infos []componentInfo
		for _, name := range a.engine.Names() {
			def, ok := a.engine.Definition(name)
			if !ok {
				continue
			}
			infos = append(infos, componentInfo{
				Name:        def.Name,
				Description: def.Description,
				Configured:  configured[def.Name],
			})
		}

		out := cmd.OutOrStdout()
		return writeStructured(out, format.String(), infos, func() error {
			t := &table{header: []string{"NAME", "CONFIGURED", "DESCRIPTION"}}
			for _, info := range infos {
				mark := ""
				if info.Configured {
					mark = "yes"
				}
				t.add(info.Name, mark, info.Description)
			}
			return t.write(out)
		})
	}
	return cmd
}

func newComponentsRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render NAME",
		Short: "Resolve a component and print its markup or options",
		Long: `Resolve a component from the given props, its configuration bag and its
defaults. The default output is the rendered element; json and yaml print the
resolved options map.

Examples:
  bsui components render button --set label=Save --set variant=success
  bsui components render alert --props '{"message":"Saved","dismissible":true}' -o json
  bsui components render button --set tooltip.text=Hi --set tooltip.placement=bottom
  bsui components render pagination --props @pagination.json`,
		Args: cobra.ExactArgs(1),
	}

	format := addOutputFlag(cmd, "html", "html", "json", "yaml")
	props := addPropsFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		p, err := props.Parse()
		if err != nil {
			return err
		}
		a, err := newApp()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if format.String() == "html" {
			html, err := a.renderer.RenderComponent(cmd.Context(), args[0], p)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, html)
			return err
		}

		opts, err := a.renderer.Resolve(args[0], p)
		if err != nil {
			return err
		}
		return writeStructured(out, format.String(), opts, nil)
	}
	return cmd
}
