package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/unrss/envsync/internal/config"
)

// ConfigOutput is the JSON representation of envsync configuration.
type ConfigOutput struct {
	ConfigFile   string                        `json:"config_file,omitempty"`
	Platform     string                        `json:"platform"`
	Include      []string                      `json:"include,omitempty"`
	Exclude      []string                      `json:"exclude,omitempty"`
	Protected    []string                      `json:"protected,omitempty"`
	Environments map[string]config.Environment `json:"environments"`
}

func newConfigCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		Long: `Display the current envsync configuration including values from
the config file, environment variables, and defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd.OutOrStdout(), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runConfig(w io.Writer, jsonOutput bool) error {
	output := ConfigOutput{
		ConfigFile:   config.ConfigFile(),
		Platform:     cfg.Platform,
		Include:      cfg.Include,
		Exclude:      cfg.Exclude,
		Protected:    cfg.Protected,
		Environments: cfg.Environments,
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	outputConfigHuman(w, output)
	return nil
}

func outputConfigHuman(w io.Writer, output ConfigOutput) {
	c := newColorizer(w)

	fmt.Fprintf(w, "%s\n\n", c.bold("Envsync Configuration"))

	if output.ConfigFile != "" {
		fmt.Fprintf(w, "  %s %s\n", c.label("Config file:"), output.ConfigFile)
	} else {
		fmt.Fprintf(w, "  %s %s\n", c.label("Config file:"), c.dim("(none)"))
	}

	fmt.Fprintf(w, "  %s %s\n", c.label("Platform:"), output.Platform)

	printPatternList(w, c, "Include:", output.Include, "(everything)")
	printPatternList(w, c, "Exclude:", output.Exclude, "(none)")
	printPatternList(w, c, "Protected extras:", output.Protected, "(none)")

	names := make([]string, 0, len(output.Environments))
	for name := range output.Environments {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "  %s\n", c.label("Environments:"))
	for _, name := range names {
		env := output.Environments[name]
		fmt.Fprintf(w, "    %s %s %s %s\n", name, c.dim("->"), env.File, c.dim("("+env.Target+")"))
	}
}

func printPatternList(w io.Writer, c *colorizer, label string, patterns []string, empty string) {
	if len(patterns) == 0 {
		fmt.Fprintf(w, "  %s %s\n", c.label(label), c.dim(empty))
		return
	}
	fmt.Fprintf(w, "  %s %s\n", c.label(label), strings.Join(patterns, ", "))
}
