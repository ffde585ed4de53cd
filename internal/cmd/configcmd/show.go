package configcmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/texargs/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current texargs configuration with value source indicators.`,
		Example: `  # Show current config
  texargs config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(resolvePath(cmd), noColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runShow(configPath string, noColor bool, out io.Writer) error {
	if noColor {
		color.NoColor = true
	}

	// Load file config (may not exist)
	fileCfg, err := config.LoadOrEmpty(configPath)
	if err != nil {
		return err
	}
	_, statErr := os.Stat(configPath)
	fileMissing := os.IsNotExist(statErr)

	// Apply env overrides to a copy
	cfg := *fileCfg
	cfg.LoadFromEnv()

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar string) {
		_, _ = bold.Fprintf(out, "%-16s", label+":")
		if value == "" {
			_, _ = dim.Fprintln(out, "-")
			return
		}

		fmt.Fprint(out, value)

		source := "config"
		if v := os.Getenv(envVar); v != "" && value != fileValue {
			source = envVar
		} else if fileMissing || fileValue != value {
			source = "default"
		}

		_, _ = dim.Fprintf(out, "  (source: %s)\n", source)
	}

	printField("Output", cfg.OutputFormat, fileCfg.OutputFormat, "TEXARGS_OUTPUT")
	printField("Include unknown", strconv.FormatBool(cfg.IncludeUnknown),
		strconv.FormatBool(fileCfg.IncludeUnknown), "TEXARGS_INCLUDE_UNKNOWN")
	printField("Unknown arity", strconv.Itoa(cfg.UnknownArity),
		strconv.Itoa(fileCfg.UnknownArity), "TEXARGS_UNKNOWN_ARITY")

	_, _ = bold.Fprintf(out, "%-16s", "Arity overrides:")
	if len(cfg.Arity) == 0 {
		_, _ = dim.Fprintln(out, "-")
	} else {
		fmt.Fprintln(out)
		names := make([]string, 0, len(cfg.Arity))
		for name := range cfg.Arity {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "  \\%s = %d\n", name, cfg.Arity[name])
		}
	}

	fmt.Fprintln(out)
	_, _ = dim.Fprintf(out, "Config file: %s\n", configPath)
	if fileMissing {
		_, _ = dim.Fprintln(out, "(file not found)")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
