// Package find provides the find command.
package find

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/texargs/internal/config"
	"github.com/open-cli-collective/texargs/internal/input"
	"github.com/open-cli-collective/texargs/internal/view"
	"github.com/open-cli-collective/texargs/pkg/texargs"
)

type findOptions struct {
	macros         []string
	includeUnknown bool
	unknownArity   int
	unknownSet     bool
	arityFlagSet   bool
	incomplete     bool
	maxWidth       int
	configPath     string
	output         string
	noColor        bool
}

// NewCmdFind creates the find command.
func NewCmdFind() *cobra.Command {
	opts := &findOptions{}

	cmd := &cobra.Command{
		Use:     "find [file]",
		Aliases: []string{"ls"},
		Short:   "List macro invocations and their arguments",
		Long: `Walk a document and list every macro invocation with its arguments.

The number of required arguments per macro comes from the arity table
(see 'texargs arity list'). Macros missing from the table are skipped
unless --unknown is given. Arguments are consumed with their macro, so
macros nested inside an argument are not listed separately.

Reads standard input when no file is given.`,
		Example: `  # List all known macros
  texargs find paper.tex

  # Only labels and references, as JSON
  texargs find paper.tex --macro label --macro ref -o json

  # Include unknown macros, assuming one required argument each
  texargs find paper.tex --unknown --unknown-arity 1`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.unknownSet = cmd.Flags().Changed("unknown")
			opts.arityFlagSet = cmd.Flags().Changed("unknown-arity")

			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runFind(path, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringSliceVarP(&opts.macros, "macro", "m", nil, "Only list these macros (repeatable)")
	cmd.Flags().BoolVarP(&opts.includeUnknown, "unknown", "u", false, "Also scan macros missing from the arity table")
	cmd.Flags().IntVar(&opts.unknownArity, "unknown-arity", 0, "Required argument count assumed for unknown macros")
	cmd.Flags().BoolVar(&opts.incomplete, "incomplete", false, "Only list invocations missing required arguments")
	cmd.Flags().IntVar(&opts.maxWidth, "max-width", 60, "Truncate the arguments column in table output (0 = no limit)")

	return cmd
}

func runFind(path string, opts *findOptions, stdin io.Reader, out io.Writer) error {
	cfg, err := config.Resolve(opts.configPath)
	if err != nil {
		return err
	}

	format, err := view.ResolveFormat(opts.output, cfg.OutputFormat)
	if err != nil {
		return err
	}

	text, source, err := input.Read(path, stdin)
	if err != nil {
		return err
	}

	findOpts := texargs.FindOptions{
		Arity:          cfg.ArityTable(),
		IncludeUnknown: cfg.IncludeUnknown,
		UnknownArity:   cfg.UnknownArity,
		Only:           opts.macros,
	}
	if opts.unknownSet {
		findOpts.IncludeUnknown = opts.includeUnknown
	}
	if opts.arityFlagSet {
		if opts.unknownArity < 0 {
			return fmt.Errorf("--unknown-arity must not be negative")
		}
		findOpts.UnknownArity = opts.unknownArity
	}

	doc := texargs.FindInvocations(text, findOpts)
	if opts.incomplete {
		kept := doc.Invocations[:0]
		for _, inv := range doc.Invocations {
			if inv.Incomplete {
				kept = append(kept, inv)
			}
		}
		doc.Invocations = kept
	}

	renderer := view.NewRenderer(format, opts.noColor)
	renderer.SetWriter(out)

	if renderer.Format() == view.FormatJSON {
		if doc.Invocations == nil {
			doc.Invocations = []texargs.Invocation{}
		}
		return renderer.RenderJSON(doc)
	}

	if len(doc.Invocations) == 0 && renderer.Format() == view.FormatTable {
		renderer.RenderText(fmt.Sprintf("No macro invocations found in %s.", source))
		return nil
	}

	headers := []string{"LINE", "COL", "MACRO", "ARGS", "STATUS"}
	rows := make([][]string, 0, len(doc.Invocations))
	for _, inv := range doc.Invocations {
		line, col := texargs.LineCol(text, inv.Pos)
		argText := texargs.FormatArgs(inv.Args)
		if renderer.Format() == view.FormatTable && opts.maxWidth > 0 {
			argText = view.Truncate(argText, opts.maxWidth)
		}
		status := "ok"
		if inv.Incomplete {
			status = fmt.Sprintf("missing %d", inv.Arity-len(inv.Required()))
		}
		rows = append(rows, []string{
			strconv.Itoa(line),
			strconv.Itoa(col),
			`\` + inv.Name,
			argText,
			status,
		})
	}
	renderer.RenderTable(headers, rows)

	if renderer.Format() == view.FormatTable && len(doc.Warnings) > 0 {
		renderer.Warning(fmt.Sprintf("%d warnings (run with --verbose to see them)", len(doc.Warnings)))
	}

	return nil
}
