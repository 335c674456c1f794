package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/conneroisu/bsui/internal/options"
)

// outputFormat is a pflag.Value restricted to a fixed set of formats.
type outputFormat struct {
	value   string
	allowed []string
}

var _ pflag.Value = (*outputFormat)(nil)

func newOutputFormat(def string, allowed ...string) *outputFormat {
	return &outputFormat{value: def, allowed: allowed}
}

func (f *outputFormat) String() string { return f.value }

func (f *outputFormat) Type() string { return "format" }

func (f *outputFormat) Set(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, allowed := range f.allowed {
		if v == allowed {
			f.value = v
			return nil
		}
	}
	return fmt.Errorf("invalid output format %q, must be one of: %s", v, strings.Join(f.allowed, ", "))
}

// addOutputFlag registers -o/--output on cmd.
func addOutputFlag(cmd *cobra.Command, def string, allowed ...string) *outputFormat {
	format := newOutputFormat(def, allowed...)
	cmd.Flags().VarP(format, "output", "o", "Output format ("+strings.Join(allowed, "|")+")")
	return format
}

// propsFlags collects component props from --props and --set.
type propsFlags struct {
	JSON string
	Set  []string
}

func addPropsFlags(cmd *cobra.Command) *propsFlags {
	flags := &propsFlags{}
	cmd.Flags().StringVar(&flags.JSON, "props", "", "Component props as a JSON object (or @file.json)")
	cmd.Flags().StringArrayVar(&flags.Set, "set", nil, "Set a prop, dotted keys allowed (key=value, repeatable)")
	return flags
}

// Parse merges the JSON props with the --set assignments, which win.
func (f *propsFlags) Parse() (options.Props, error) {
	props := options.Props{}

	raw := f.JSON
	if strings.HasPrefix(raw, "@") {
		filename := strings.TrimPrefix(raw, "@")
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read props file %s: %w", filename, err)
		}
		raw = string(data)
	}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &props); err != nil {
			return nil, fmt.Errorf("invalid JSON in props: %w", err)
		}
		if props == nil {
			props = options.Props{}
		}
	}

	for _, assignment := range f.Set {
		key, value, ok := strings.Cut(assignment, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q, expected key=value", assignment)
		}
		props.SetPath(key, parseValue(value))
	}
	return props, nil
}

// parseValue reads a --set value as JSON when it is a JSON literal and as a
// plain string otherwise, so --set items='[{"label":"A"}]' works.
func parseValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}
	switch trimmed[0] {
	case '[', '{', '"':
		var v any
		if err := json.Unmarshal([]byte(trimmed), &v); err == nil {
			return v
		}
	}
	return raw
}
