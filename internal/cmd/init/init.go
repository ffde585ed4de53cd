// Package init provides the init command for texargs.
package init

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/texargs/internal/config"
	"github.com/open-cli-collective/texargs/internal/view"
)

type initOptions struct {
	configPath     string
	output         string
	includeUnknown bool
	unknownArity   int
	noPrompt       bool
	force          bool
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize texargs configuration",
		Long: `Initialize texargs with your preferred defaults.

This command will guide you through choosing the default output format
and how macros missing from the arity table are treated. The
configuration will be saved to ~/.config/texargs/config.yml.`,
		Example: `  # Interactive setup
  texargs init

  # Non-interactive setup
  texargs init --no-prompt --format json --unknown --unknown-arity 1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			return runInit(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.output, "format", "table", "Default output format: "+fmt.Sprint(view.ValidFormats()))
	cmd.Flags().BoolVar(&opts.includeUnknown, "unknown", false, "Scan macros missing from the arity table")
	cmd.Flags().IntVar(&opts.unknownArity, "unknown-arity", 0, "Required argument count assumed for unknown macros")
	cmd.Flags().BoolVar(&opts.noPrompt, "no-prompt", false, "Use flag values without prompting")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing configuration without asking")

	return cmd
}

func runInit(opts *initOptions, out io.Writer) error {
	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	// Keep arity overrides from an existing file
	existing, loadErr := config.Load(configPath)
	if loadErr == nil && !opts.force {
		if opts.noPrompt {
			return fmt.Errorf("configuration already exists at %s (use --force to overwrite)", configPath)
		}
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(out, "Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{
		OutputFormat:   opts.output,
		IncludeUnknown: opts.includeUnknown,
		UnknownArity:   opts.unknownArity,
	}
	if existing != nil {
		cfg.Arity = existing.Arity
	}

	if !opts.noPrompt {
		arity := strconv.Itoa(cfg.UnknownArity)
		if err := buildForm(cfg, &arity).Run(); err != nil {
			return err
		}
		cfg.UnknownArity, _ = strconv.Atoi(arity)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nConfiguration saved to %s\n", configPath)
	fmt.Fprintln(out, "\nYou're all set! Try running:")
	fmt.Fprintln(out, "  texargs find paper.tex")
	fmt.Fprintln(out, "  texargs scan paper.tex --macro section")

	return nil
}

func buildForm(cfg *config.Config, arity *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(view.ValidFormats()))
	for _, f := range view.ValidFormats() {
		options = append(options, huh.NewOption(f, f))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Description("Default format for scan, find and arity output").
				Options(options...).
				Value(&cfg.OutputFormat),

			huh.NewConfirm().
				Title("Scan unknown macros?").
				Description("Macros missing from the arity table are skipped otherwise").
				Value(&cfg.IncludeUnknown),

			huh.NewInput().
				Title("Arity of unknown macros").
				Description("Required arguments assumed for macros missing from the table").
				Value(arity).
				Validate(func(s string) error {
					if n, err := strconv.Atoi(s); err != nil || n < 0 {
						return fmt.Errorf("must be a non-negative integer")
					}
					return nil
				}),
		),
	)
}
