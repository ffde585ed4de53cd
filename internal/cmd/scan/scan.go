// Package scan provides the scan command.
package scan

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

type scanOptions struct {
	required    int
	requiredSet bool
	start       int
	macro       string
	occurrence  int
	configPath  string
	output      string
	noColor     bool
}

// report is the JSON shape of a scan.
type report struct {
	Source    string             `json:"source"`
	Macro     string             `json:"macro,omitempty"`
	Start     int                `json:"start"`
	Required  int                `json:"required"`
	Arguments []texargs.Argument `json:"arguments"`
	End       int                `json:"end"`
	Complete  bool               `json:"complete"`
}

// NewCmdScan creates the scan command.
func NewCmdScan() *cobra.Command {
	opts := &scanOptions{}

	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "Scan the arguments of one macro invocation",
		Long: `Scan the argument list that starts at a byte offset of a document.

Required arguments are bare commands (\foo), single characters, or {groups}.
Optional arguments are [groups] and never count against --required.
Scanning stops as soon as the required arguments are collected.

The reported end position is one past the last argument, or 0 when no
argument was collected. Reads standard input when no file is given.`,
		Example: `  # Scan two required arguments after "\frac" (5 bytes)
  echo '\frac{a}{b}' | texargs scan --start 5 --required 2

  # Scan the arguments of the first \section in a file
  texargs scan paper.tex --macro section

  # Scan the third \href, as JSON
  texargs scan paper.tex --macro href --occurrence 3 -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.requiredSet = cmd.Flags().Changed("required")

			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runScan(path, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&opts.required, "required", "r", 0, "Number of required arguments (default: arity of --macro, else 0)")
	cmd.Flags().IntVarP(&opts.start, "start", "s", 0, "Byte offset of the first character after the macro name")
	cmd.Flags().StringVarP(&opts.macro, "macro", "m", "", "Scan after an invocation of this macro instead of --start")
	cmd.Flags().IntVarP(&opts.occurrence, "occurrence", "n", 1, "Which invocation of --macro to scan (1-based)")

	return cmd
}

func runScan(path string, opts *scanOptions, stdin io.Reader, out io.Writer) error {
	cfg, err := config.Resolve(opts.configPath)
	if err != nil {
		return err
	}

	format, err := view.ResolveFormat(opts.output, cfg.OutputFormat)
	if err != nil {
		return err
	}

	if opts.required < 0 {
		return fmt.Errorf("--required must not be negative")
	}

	text, source, err := input.Read(path, stdin)
	if err != nil {
		return err
	}

	start := opts.start
	required := opts.required
	if opts.macro != "" {
		_, nameEnd, ok := texargs.LocateMacro(text, opts.macro, opts.occurrence)
		if !ok {
			return fmt.Errorf("invocation %d of \\%s not found in %s", opts.occurrence, opts.macro, source)
		}
		start = nameEnd

		if !opts.requiredSet {
			n, known := cfg.ArityTable().Lookup(opts.macro)
			if !known {
				return fmt.Errorf("unknown arity for \\%s: pass --required or add it with 'texargs arity set'", opts.macro)
			}
			required = n
		}
	}

	args, end := texargs.Scan(text, required, start)

	found := 0
	for _, a := range args {
		if a.Required {
			found++
		}
	}

	renderer := view.NewRenderer(format, opts.noColor)
	renderer.SetWriter(out)

	if renderer.Format() == view.FormatJSON {
		if args == nil {
			args = []texargs.Argument{}
		}
		return renderer.RenderJSON(report{
			Source:    source,
			Macro:     opts.macro,
			Start:     start,
			Required:  required,
			Arguments: args,
			End:       end,
			Complete:  found == required,
		})
	}

	headers := []string{"#", "KIND", "POS", "TEXT"}
	rows := make([][]string, 0, len(args))
	for i, a := range args {
		kind := "required"
		if !a.Required {
			kind = "optional"
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), kind, strconv.Itoa(a.Pos), a.Text})
	}
	renderer.RenderTable(headers, rows)
	renderer.RenderKeyValue("End", strconv.Itoa(end))

	if found < required {
		renderer.Warning(fmt.Sprintf("expected %d required arguments, found %d", required, found))
	}

	return nil
}
