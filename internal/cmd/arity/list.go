package arity

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/texargs/internal/config"
	"github.com/open-cli-collective/texargs/internal/view"
	"github.com/open-cli-collective/texargs/pkg/texargs"
)

type listOptions struct {
	overridesOnly bool
	configPath    string
	output        string
	noColor       bool
}

type entry struct {
	Name   string `json:"name"`
	Arity  int    `json:"arity"`
	Source string `json:"source"`
}

// NewCmdList creates the arity list command.
func NewCmdList() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List known macros and their arity",
		Example: `  # Show the full table
  texargs arity list

  # Show only your overrides
  texargs arity list --overrides`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.configPath = configPathFlag(cmd)
			return runList(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&opts.overridesOnly, "overrides", false, "Only show entries from the config file")

	return cmd
}

func runList(opts *listOptions, out io.Writer) error {
	cfg, err := config.Resolve(opts.configPath)
	if err != nil {
		return err
	}

	format, err := view.ResolveFormat(opts.output, cfg.OutputFormat)
	if err != nil {
		return err
	}

	builtin := texargs.DefaultArity()
	table := cfg.ArityTable()
	if opts.overridesOnly {
		table = texargs.ArityTable(cfg.Arity)
	}

	entries := make([]entry, 0, len(table))
	for _, name := range table.Names() {
		source := "builtin"
		if _, ok := cfg.Arity[name]; ok {
			source = "config"
			if _, shadowed := builtin[name]; shadowed {
				source = "config (overrides builtin)"
			}
		}
		entries = append(entries, entry{Name: name, Arity: table[name], Source: source})
	}

	renderer := view.NewRenderer(format, opts.noColor)
	renderer.SetWriter(out)

	if format == view.FormatJSON {
		return renderer.RenderJSON(entries)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{`\` + e.Name, strconv.Itoa(e.Arity), e.Source})
	}
	renderer.RenderTable([]string{"MACRO", "ARITY", "SOURCE"}, rows)
	return nil
}
