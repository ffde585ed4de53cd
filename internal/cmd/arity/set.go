package arity

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/texargs/internal/config"
	"github.com/open-cli-collective/texargs/internal/view"
	"github.com/open-cli-collective/texargs/pkg/texargs"
)

// NewCmdSet creates the arity set command.
func NewCmdSet() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <macro> <count>",
		Short: "Set the required argument count of a macro",
		Example: `  # \vect takes one required argument
  texargs arity set vect 1

  # Treat \section as taking no arguments
  texargs arity set '\section' 0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runSet(configPathFlag(cmd), args[0], args[1], noColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

// NewCmdUnset creates the arity unset command.
func NewCmdUnset() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "unset <macro>",
		Aliases: []string{"rm"},
		Short:   "Remove an arity override",
		Long:    `Remove an override from the config file. Built-in entries remain in effect.`,
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return overrideNames(configPathFlag(cmd)), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runUnset(configPathFlag(cmd), args[0], noColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runSet(configPath, name, count string, noColor bool, out io.Writer) error {
	name = strings.TrimPrefix(name, `\`)
	if !isMacroName(name) {
		return fmt.Errorf("invalid macro name %q: use letters only", name)
	}

	n, err := strconv.Atoi(count)
	if err != nil || n < 0 {
		return fmt.Errorf("invalid count %q: must be a non-negative integer", count)
	}

	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	cfg, err := config.LoadOrEmpty(configPath)
	if err != nil {
		return err
	}

	cfg.SetArity(name, n)
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	renderer := view.NewRenderer(view.FormatTable, noColor)
	renderer.SetWriter(out)
	renderer.Success(fmt.Sprintf("\\%s takes %d required arguments", name, n))
	return nil
}

func runUnset(configPath, name string, noColor bool, out io.Writer) error {
	name = strings.TrimPrefix(name, `\`)

	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	cfg, err := config.LoadOrEmpty(configPath)
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.FormatTable, noColor)
	renderer.SetWriter(out)

	if !cfg.UnsetArity(name) {
		renderer.Warning(fmt.Sprintf("no override for \\%s", name))
		return nil
	}
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	renderer.Success(fmt.Sprintf("removed override for \\%s", name))
	return nil
}

// overrideNames lists the macros overridden in the config file, for completion.
func overrideNames(configPath string) []string {
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil
	}
	return texargs.ArityTable(cfg.Arity).Names()
}

func isMacroName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
